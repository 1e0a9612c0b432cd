package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"labels-tracker/internal/labels"
	"labels-tracker/internal/repository"
)

// Service is a tiny façade over the label store that produces XLSX bytes for
// admin exports.
type Service struct {
	store  *labels.Store
	logger *slog.Logger
}

func NewService(store *labels.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ExportLabelsXLSX returns an XLSX workbook (as bytes) for the labels
// matching the given filter.
func (s *Service) ExportLabelsXLSX(ctx context.Context, filter repository.ListFilter) ([]byte, error) {
	start := time.Now()

	recs, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query labels: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Shipping Labels"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"ID",
		"Order ID",
		"Tracking Number",
		"Module",
		"Stored Filename",
		"Created At",
		"Updated At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ID)
		write(2, r.OrderID)
		write(3, deref(r.TrackingNumber))
		write(4, r.ModuleName)
		write(5, deref(r.StoredFilename))
		write(6, r.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
		write(7, r.UpdatedAt.UTC().Format("2006-01-02 15:04:05"))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 10)
	_ = f.SetColWidth(sheet, "C", "C", 28) // tracking
	_ = f.SetColWidth(sheet, "D", "D", 20) // module
	_ = f.SetColWidth(sheet, "E", "E", 32) // filename
	_ = f.SetColWidth(sheet, "F", "G", 20) // dates

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
