package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"labels-tracker/gen/ent"
	"labels-tracker/gen/ent/enttest"
)

// newTestClient opens an in-memory SQLite database with the schema migrated.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(drv)))
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateAndGet(t *testing.T) {
	repo := NewLabelRepository(newTestClient(t), nil)
	ctx := context.Background()

	row, err := repo.Create(ctx, 42, "carrier_dhl", strPtr("TRK-42"), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row.ID == 0 {
		t.Fatal("expected a generated id")
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OrderID != 42 || got.ModuleName != "carrier_dhl" {
		t.Fatalf("unexpected row %+v", got)
	}
	if got.TrackingNumber == nil || *got.TrackingNumber != "TRK-42" {
		t.Fatalf("tracking = %v", got.TrackingNumber)
	}
	if got.StoredFilename != nil {
		t.Fatalf("stored filename should be unset, got %q", *got.StoredFilename)
	}

	_, err = repo.GetByID(ctx, row.ID+1000)
	if !ent.IsNotFound(err) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
}

func TestUpdateAppliesOnlyPatchedFields(t *testing.T) {
	repo := NewLabelRepository(newTestClient(t), nil)
	ctx := context.Background()

	row, err := repo.Create(ctx, 1, "carrier_dhl", strPtr("TRK-1"), nil)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := repo.Update(ctx, row.ID, UpdatePatch{StoredFilename: strPtr("label_1.pdf")})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.StoredFilename == nil || *got.StoredFilename != "label_1.pdf" {
		t.Fatalf("stored filename = %v", got.StoredFilename)
	}
	// Untouched fields keep their values.
	if got.TrackingNumber == nil || *got.TrackingNumber != "TRK-1" {
		t.Fatalf("tracking changed unexpectedly: %v", got.TrackingNumber)
	}
	if got.ModuleName != "carrier_dhl" {
		t.Fatalf("module changed unexpectedly: %q", got.ModuleName)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repo := NewLabelRepository(newTestClient(t), nil)

	ok, err := repo.Update(context.Background(), 12345, UpdatePatch{ModuleName: strPtr("carrier_ups")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ok {
		t.Fatal("update of a missing row must report false")
	}
}

func TestDelete(t *testing.T) {
	repo := NewLabelRepository(newTestClient(t), nil)
	ctx := context.Background()

	row, err := repo.Create(ctx, 1, "carrier_dhl", nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	removed, err := repo.Delete(ctx, row.ID)
	if err != nil || !removed {
		t.Fatalf("Delete: removed=%v err=%v", removed, err)
	}
	removed, err = repo.Delete(ctx, row.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if removed {
		t.Fatal("second delete of the same id must report false")
	}
}

func TestListFiltersAndOrdering(t *testing.T) {
	repo := NewLabelRepository(newTestClient(t), nil)
	ctx := context.Background()

	seed := []struct {
		orderID  int
		module   string
		tracking *string
	}{
		{100, "carrier_dhl", strPtr("DHL-0001")},
		{100, "carrier_ups", strPtr("1Z999AA1")},
		{200, "carrier_dhl", nil},
		{300, "carrier_colissimo", strPtr("8R00000001")},
	}
	var ids []int
	for _, s := range seed {
		row, err := repo.Create(ctx, s.orderID, s.module, s.tracking, nil)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, row.ID)
	}

	t.Run("by order", func(t *testing.T) {
		rows, err := repo.List(ctx, ListFilter{OrderID: intPtr(100)})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
	})

	t.Run("by exact id", func(t *testing.T) {
		rows, err := repo.List(ctx, ListFilter{ID: intPtr(ids[2])})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0].ID != ids[2] {
			t.Fatalf("unexpected rows %v", rows)
		}
	})

	t.Run("tracking substring", func(t *testing.T) {
		rows, err := repo.List(ctx, ListFilter{TrackingNumber: "999AA"})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0].OrderID != 100 {
			t.Fatalf("unexpected rows %v", rows)
		}
	})

	t.Run("module substring", func(t *testing.T) {
		rows, err := repo.List(ctx, ListFilter{ModuleName: "dhl"})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
	})

	t.Run("ordered by id ascending", func(t *testing.T) {
		rows, err := repo.List(ctx, ListFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != len(seed) {
			t.Fatalf("got %d rows, want %d", len(rows), len(seed))
		}
		for i := 1; i < len(rows); i++ {
			if rows[i].ID <= rows[i-1].ID {
				t.Fatalf("rows out of order at %d: %d after %d", i, rows[i].ID, rows[i-1].ID)
			}
		}
	})

	t.Run("limit and offset", func(t *testing.T) {
		rows, err := repo.List(ctx, ListFilter{Limit: 2, Offset: 1})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[0].ID != ids[1] {
			t.Fatalf("offset ignored: first row %d, want %d", rows[0].ID, ids[1])
		}
	})

	t.Run("created range excludes everything in the future", func(t *testing.T) {
		from := time.Now().Add(24 * time.Hour)
		rows, err := repo.List(ctx, ListFilter{CreatedFrom: &from})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 0 {
			t.Fatalf("got %d rows, want 0", len(rows))
		}
	})
}

func TestListByOrderAndModule(t *testing.T) {
	repo := NewLabelRepository(newTestClient(t), nil)
	ctx := context.Background()

	if _, err := repo.Create(ctx, 7, "carrier_dhl", strPtr("A"), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(ctx, 7, "carrier_ups", strPtr("B"), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(ctx, 8, "carrier_dhl", nil, nil); err != nil {
		t.Fatal(err)
	}

	rows, err := repo.ListByOrder(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListByOrder: got %d rows, want 2", len(rows))
	}

	rows, err = repo.ListByModule(ctx, "carrier_dhl")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListByModule: got %d rows, want 2", len(rows))
	}

	rows, err = repo.ListByTracking(ctx, "B")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].OrderID != 7 {
		t.Fatalf("ListByTracking: unexpected rows %v", rows)
	}
}
