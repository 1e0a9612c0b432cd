package labels

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"labels-tracker/constants"
	"labels-tracker/internal/common"
	"labels-tracker/internal/pdf"
)

// Document is a downloadable artifact assembled from one or more labels.
type Document struct {
	PDF         []byte
	Filename    string
	LabelsCount int
	Errors      []string
}

// Printer assembles bulk download and bulk print documents.
type Printer struct {
	store  *Store
	merger *pdf.Merger
	logger *slog.Logger
	now    func() time.Time
}

func NewPrinter(store *Store, merger *pdf.Merger, logger *slog.Logger) *Printer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Printer{
		store:  store,
		merger: merger,
		logger: logger,
		now:    time.Now,
	}
}

// BulkDownload merges the files of the selected labels, and of every label
// belonging to the selected orders, into one attachment named
// shipping_labels_merged_<date>.pdf. Labels without a usable file become
// warnings; the whole operation fails only when none remain.
func (p *Printer) BulkDownload(ctx context.Context, labelIDs, orderIDs []int) (*Document, error) {
	ids := append([]int(nil), labelIDs...)
	if len(orderIDs) > 0 {
		fromOrders, err := p.store.LabelIDsForOrders(ctx, orderIDs)
		if err != nil {
			return nil, err
		}
		ids = append(ids, fromOrders...)
	}
	if len(ids) == 0 {
		return nil, common.ErrEmptyInput
	}

	files, failed := p.store.CollectFiles(ctx, ids)
	if len(files) == 0 {
		return nil, common.ErrNoLabelFiles
	}

	merged, err := p.merger.Merge(files)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		PDF:         merged,
		Filename:    constants.MergedFilenamePrefix + p.now().UTC().Format(constants.MergedDateFormat) + ".pdf",
		LabelsCount: len(files),
		Errors:      failedMessages(failed),
	}
	p.logger.Info("bulk download assembled", "labels", len(files), "skipped", len(failed))
	return doc, nil
}

// BulkPrint builds the print artifact for the selected labels. Exactly one
// usable file is handed back unmerged under its own name, matching the
// single-selection shortcut of the admin UI; more than one is a real merge
// named shipping_labels_<date_time>.pdf.
func (p *Printer) BulkPrint(ctx context.Context, labelIDs []int) (*Document, error) {
	if len(labelIDs) == 0 {
		return nil, common.ErrEmptyInput
	}

	files, failed := p.store.CollectFiles(ctx, labelIDs)
	if len(files) == 0 {
		return nil, common.ErrNoLabelFiles
	}

	if len(files) == 1 {
		raw, err := os.ReadFile(files[0])
		if err != nil {
			return nil, common.NewAppError("STORAGE_ERROR", "reading label file", common.ErrStorageIO)
		}
		return &Document{
			PDF:         raw,
			Filename:    filepath.Base(files[0]),
			LabelsCount: 1,
			Errors:      failedMessages(failed),
		}, nil
	}

	merged, err := p.merger.Merge(files)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		PDF:         merged,
		Filename:    constants.PrintFilenamePrefix + p.now().UTC().Format(constants.PrintTimestampFormat) + ".pdf",
		LabelsCount: len(files),
		Errors:      failedMessages(failed),
	}
	p.logger.Info("bulk print assembled", "labels", len(files), "skipped", len(failed))
	return doc, nil
}

func failedMessages(failed []int) []string {
	msgs := make([]string, 0, len(failed))
	for _, id := range failed {
		msgs = append(msgs, fmt.Sprintf("could not find label file for shipping label %d", id))
	}
	return msgs
}
