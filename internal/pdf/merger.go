// Package pdf concatenates validated label PDFs into one downloadable
// document, preserving each source page's size and orientation.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"labels-tracker/internal/common"
)

// CorruptSourceError names the input file that broke a merge. It unwraps to
// common.ErrCorruptSource.
type CorruptSourceError struct {
	Path  string
	Cause error
}

func (e *CorruptSourceError) Error() string {
	return fmt.Sprintf("corrupt source %q: %v", e.Path, e.Cause)
}

func (e *CorruptSourceError) Unwrap() error {
	return common.ErrCorruptSource
}

// Merger merges ordered sequences of PDF files in memory. Inputs are expected
// to have passed the ingestion gate already; a parse failure still aborts the
// whole merge, since a partial artifact is useless to the caller.
type Merger struct {
	conf   *model.Configuration
	logger *slog.Logger
}

func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Merger{conf: conf, logger: logger}
}

// Merge concatenates the pages of the given files, strictly in order. Page
// geometry comes from each source page, so mixed portrait/landscape inputs
// stay as they are. Zero inputs is an error; a single input is passed through
// byte for byte.
func (m *Merger) Merge(paths []string) ([]byte, error) {
	if len(paths) == 0 {
		return nil, common.ErrEmptyInput
	}

	start := time.Now()

	// Validate inputs one by one so the failure names the offending file;
	// MergeRaw reports only an aggregate error.
	for _, p := range paths {
		if err := api.ValidateFile(p, m.conf); err != nil {
			return nil, &CorruptSourceError{Path: p, Cause: err}
		}
	}

	if len(paths) == 1 {
		out, err := os.ReadFile(paths[0])
		if err != nil {
			return nil, common.NewAppError("MERGE_ERROR", "reading single input", common.ErrStorageIO)
		}
		return out, nil
	}

	readers := make([]io.ReadSeeker, 0, len(paths))
	closers := make([]*os.File, 0, len(paths))
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, common.NewAppError("MERGE_ERROR", fmt.Sprintf("opening %s", p), common.ErrStorageIO)
		}
		closers = append(closers, f)
		readers = append(readers, f)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, m.conf); err != nil {
		return nil, &CorruptSourceError{Path: paths[0], Cause: err}
	}

	m.logger.Info("merge.ok",
		"files", len(paths),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
