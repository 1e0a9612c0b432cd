package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"labels-tracker/internal/common"
)

// makePDF writes a fixture with the given orientation and page count.
func makePDF(t *testing.T, dir, name, orientation string, pages int) string {
	t.Helper()
	doc := gofpdf.New(orientation, "mm", "A4", "")
	doc.SetFont("Helvetica", "", 14)
	for i := 0; i < pages; i++ {
		doc.AddPage()
		doc.Cell(40, 10, name)
	}
	path := filepath.Join(dir, name)
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestMergeEmptyInput(t *testing.T) {
	m := NewMerger(nil)
	_, err := m.Merge(nil)
	if !errors.Is(err, common.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestMergeSingleFilePassthrough(t *testing.T) {
	dir := t.TempDir()
	single := makePDF(t, dir, "single.pdf", "P", 1)

	m := NewMerger(nil)
	out, err := m.Merge([]string{single})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	orig, err := os.ReadFile(single)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(orig) {
		t.Fatalf("single input must pass through unchanged: got %d bytes, want %d", len(out), len(orig))
	}
}

func TestMergePreservesOrderAndOrientation(t *testing.T) {
	dir := t.TempDir()
	portrait := makePDF(t, dir, "portrait.pdf", "P", 1)
	landscape := makePDF(t, dir, "landscape.pdf", "L", 2)

	m := NewMerger(nil)
	out, err := m.Merge([]string{portrait, landscape})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	merged := filepath.Join(dir, "merged.pdf")
	if err := os.WriteFile(merged, out, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := api.ValidateFile(merged, nil); err != nil {
		t.Fatalf("merged output does not validate: %v", err)
	}
	count, err := api.PageCountFile(merged)
	if err != nil {
		t.Fatalf("PageCountFile: %v", err)
	}
	if count != 3 {
		t.Fatalf("merged page count = %d, want 3", count)
	}

	dims, err := api.PageDimsFile(merged)
	if err != nil {
		t.Fatalf("PageDimsFile: %v", err)
	}
	if len(dims) != 3 {
		t.Fatalf("got %d page dims, want 3", len(dims))
	}
	// Page 1 is the portrait source, pages 2 and 3 the landscape one.
	if dims[0].Width >= dims[0].Height {
		t.Errorf("page 1 should be portrait, got %.1fx%.1f", dims[0].Width, dims[0].Height)
	}
	for i := 1; i < 3; i++ {
		if dims[i].Width <= dims[i].Height {
			t.Errorf("page %d should be landscape, got %.1fx%.1f", i+1, dims[i].Width, dims[i].Height)
		}
	}
}

func TestMergeCorruptSource(t *testing.T) {
	dir := t.TempDir()
	good := makePDF(t, dir, "good.pdf", "P", 1)
	bad := filepath.Join(dir, "bad.pdf")
	if err := os.WriteFile(bad, []byte("%PDF-1.4 this is not really a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewMerger(nil)
	_, err := m.Merge([]string{good, bad})
	if err == nil {
		t.Fatal("expected an error for a corrupt input")
	}
	if !errors.Is(err, common.ErrCorruptSource) {
		t.Fatalf("error does not wrap ErrCorruptSource: %v", err)
	}
	var cerr *CorruptSourceError
	if !errors.As(err, &cerr) {
		t.Fatalf("error is not a CorruptSourceError: %v", err)
	}
	if cerr.Path != bad {
		t.Fatalf("error names %q, want %q", cerr.Path, bad)
	}
}
