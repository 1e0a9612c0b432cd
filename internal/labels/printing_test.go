package labels

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"

	"labels-tracker/constants"
	"labels-tracker/internal/common"
	"labels-tracker/internal/pdf"
	"labels-tracker/internal/storage"
)

func newTestPrinter(t *testing.T) (*Printer, *Store, *mockLabelRepo, *storage.Resolver) {
	t.Helper()
	store, repo, resolver := newTestStore(t)
	printer := NewPrinter(store, pdf.NewMerger(nil), nil)
	printer.now = func() time.Time {
		return time.Date(2026, 8, 30, 14, 30, 5, 0, time.UTC)
	}
	return printer, store, repo, resolver
}

// createLabelWithPDF persists a record backed by a real one-page PDF.
func createLabelWithPDF(t *testing.T, store *Store, orderID int) int {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 14)
	doc.Cell(40, 10, "label")
	path := t.TempDir() + "/label.pdf"
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}
	id, err := store.Create(context.Background(), CreateRequest{
		OrderID:           orderID,
		ModuleName:        "carrier_dhl",
		CandidateFilePath: path,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestBulkDownloadMergesSelection(t *testing.T) {
	printer, store, _, _ := newTestPrinter(t)
	id1 := createLabelWithPDF(t, store, 1)
	id2 := createLabelWithPDF(t, store, 2)

	doc, err := printer.BulkDownload(context.Background(), []int{id1, id2}, nil)
	if err != nil {
		t.Fatalf("BulkDownload: %v", err)
	}
	if doc.LabelsCount != 2 {
		t.Fatalf("LabelsCount = %d, want 2", doc.LabelsCount)
	}
	if doc.Filename != "shipping_labels_merged_2026-08-30.pdf" {
		t.Fatalf("filename = %q", doc.Filename)
	}
	if len(doc.PDF) == 0 {
		t.Fatal("empty document")
	}
	if len(doc.Errors) != 0 {
		t.Fatalf("unexpected errors %v", doc.Errors)
	}
}

func TestBulkDownloadExpandsOrders(t *testing.T) {
	printer, store, _, _ := newTestPrinter(t)
	createLabelWithPDF(t, store, 7)
	createLabelWithPDF(t, store, 7)

	doc, err := printer.BulkDownload(context.Background(), nil, []int{7})
	if err != nil {
		t.Fatalf("BulkDownload: %v", err)
	}
	if doc.LabelsCount != 2 {
		t.Fatalf("LabelsCount = %d, want 2", doc.LabelsCount)
	}
}

func TestBulkDownloadEmptySelection(t *testing.T) {
	printer, _, _, _ := newTestPrinter(t)
	if _, err := printer.BulkDownload(context.Background(), nil, nil); !errors.Is(err, common.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestBulkDownloadNoUsableFiles(t *testing.T) {
	printer, store, _, _ := newTestPrinter(t)
	id, err := store.Create(context.Background(), CreateRequest{OrderID: 1, ModuleName: "carrier_dhl"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := printer.BulkDownload(context.Background(), []int{id}, nil); !errors.Is(err, common.ErrNoLabelFiles) {
		t.Fatalf("expected ErrNoLabelFiles, got %v", err)
	}
}

func TestBulkPrintSingleFilePassthrough(t *testing.T) {
	printer, store, _, _ := newTestPrinter(t)
	id := createLabelWithPDF(t, store, 1)

	doc, err := printer.BulkPrint(context.Background(), []int{id})
	if err != nil {
		t.Fatalf("BulkPrint: %v", err)
	}
	if doc.LabelsCount != 1 {
		t.Fatalf("LabelsCount = %d, want 1", doc.LabelsCount)
	}
	if doc.Filename != constants.StoredFilename(id) {
		t.Fatalf("single selection keeps the file's own name, got %q", doc.Filename)
	}
}

func TestBulkPrintMerged(t *testing.T) {
	printer, store, _, _ := newTestPrinter(t)
	id1 := createLabelWithPDF(t, store, 1)
	id2 := createLabelWithPDF(t, store, 2)

	doc, err := printer.BulkPrint(context.Background(), []int{id1, id2})
	if err != nil {
		t.Fatalf("BulkPrint: %v", err)
	}
	if doc.Filename != "shipping_labels_2026-08-30_143005.pdf" {
		t.Fatalf("filename = %q", doc.Filename)
	}
	if doc.LabelsCount != 2 {
		t.Fatalf("LabelsCount = %d, want 2", doc.LabelsCount)
	}
}

func TestBulkPrintReportsUnusableLabels(t *testing.T) {
	printer, store, _, _ := newTestPrinter(t)
	id1 := createLabelWithPDF(t, store, 1)
	id2 := createLabelWithPDF(t, store, 2)
	noFile, err := store.Create(context.Background(), CreateRequest{OrderID: 3, ModuleName: "carrier_ups"})
	if err != nil {
		t.Fatal(err)
	}

	doc, err := printer.BulkPrint(context.Background(), []int{id1, noFile, id2})
	if err != nil {
		t.Fatalf("BulkPrint: %v", err)
	}
	if doc.LabelsCount != 2 {
		t.Fatalf("LabelsCount = %d, want 2", doc.LabelsCount)
	}
	if len(doc.Errors) != 1 || !strings.Contains(doc.Errors[0], "could not find label file") {
		t.Fatalf("unexpected errors %v", doc.Errors)
	}
}
