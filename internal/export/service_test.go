package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"labels-tracker/gen/ent"
	"labels-tracker/internal/labels"
	"labels-tracker/internal/repository"
	"labels-tracker/internal/storage"
)

type fixedRepo struct {
	rows []*ent.ShippingLabel
}

func (f *fixedRepo) Create(context.Context, int, string, *string, *string) (*ent.ShippingLabel, error) {
	return nil, nil
}

func (f *fixedRepo) GetByID(context.Context, int) (*ent.ShippingLabel, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fixedRepo) Update(context.Context, int, repository.UpdatePatch) (bool, error) {
	return false, nil
}

func (f *fixedRepo) Delete(context.Context, int) (bool, error) {
	return false, nil
}

func (f *fixedRepo) ListByOrder(context.Context, int) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (f *fixedRepo) ListByTracking(context.Context, string) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (f *fixedRepo) ListByModule(context.Context, string) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (f *fixedRepo) List(context.Context, repository.ListFilter) ([]*ent.ShippingLabel, error) {
	return f.rows, nil
}

func TestExportLabelsXLSX(t *testing.T) {
	tracking := "TRK-77"
	stored := "label_1.pdf"
	repo := &fixedRepo{rows: []*ent.ShippingLabel{
		{
			ID:             1,
			OrderID:        100,
			TrackingNumber: &tracking,
			ModuleName:     "carrier_dhl",
			StoredFilename: &stored,
			CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			OrderID:    200,
			ModuleName: "carrier_ups",
			CreatedAt:  time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC),
		},
	}}

	resolver, err := storage.NewResolver(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store := labels.NewStore(repo, resolver, storage.NewValidator(0), nil)
	svc := NewService(store, nil)

	out, err := svc.ExportLabelsXLSX(context.Background(), repository.ListFilter{})
	if err != nil {
		t.Fatalf("ExportLabelsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Shipping Labels")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][2] != "Tracking Number" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][2] != "TRK-77" || rows[1][4] != "label_1.pdf" {
		t.Fatalf("unexpected first data row %v", rows[1])
	}
	// Nil optionals render as empty cells.
	if len(rows[2]) > 2 && rows[2][2] != "" {
		t.Fatalf("expected empty tracking for row 2, got %q", rows[2][2])
	}
}
