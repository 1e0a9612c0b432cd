package labels

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"labels-tracker/constants"
	"labels-tracker/gen/ent"
	"labels-tracker/internal/common"
	"labels-tracker/internal/repository"
	"labels-tracker/internal/storage"
)

// mockLabelRepo is an in-memory LabelRepository for exercising the store
// without a database.
type mockLabelRepo struct {
	rows   map[int]*ent.ShippingLabel
	nextID int
}

func newMockLabelRepo() *mockLabelRepo {
	return &mockLabelRepo{rows: make(map[int]*ent.ShippingLabel), nextID: 1}
}

func (m *mockLabelRepo) Create(_ context.Context, orderID int, moduleName string, trackingNumber, storedFilename *string) (*ent.ShippingLabel, error) {
	row := &ent.ShippingLabel{
		ID:             m.nextID,
		OrderID:        orderID,
		ModuleName:     moduleName,
		TrackingNumber: trackingNumber,
		StoredFilename: storedFilename,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	m.rows[row.ID] = row
	m.nextID++
	return row, nil
}

func (m *mockLabelRepo) GetByID(_ context.Context, id int) (*ent.ShippingLabel, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (m *mockLabelRepo) Update(_ context.Context, id int, patch repository.UpdatePatch) (bool, error) {
	row, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	if patch.TrackingNumber != nil {
		row.TrackingNumber = patch.TrackingNumber
	}
	if patch.ModuleName != nil {
		row.ModuleName = *patch.ModuleName
	}
	if patch.StoredFilename != nil {
		row.StoredFilename = patch.StoredFilename
	}
	row.UpdatedAt = time.Now()
	return true, nil
}

func (m *mockLabelRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *mockLabelRepo) ListByOrder(_ context.Context, orderID int) ([]*ent.ShippingLabel, error) {
	var out []*ent.ShippingLabel
	for id := 1; id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok && row.OrderID == orderID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockLabelRepo) ListByTracking(_ context.Context, trackingNumber string) ([]*ent.ShippingLabel, error) {
	var out []*ent.ShippingLabel
	for id := 1; id < m.nextID; id++ {
		row, ok := m.rows[id]
		if !ok {
			continue
		}
		if row.TrackingNumber != nil && strings.Contains(*row.TrackingNumber, trackingNumber) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockLabelRepo) ListByModule(_ context.Context, moduleName string) ([]*ent.ShippingLabel, error) {
	var out []*ent.ShippingLabel
	for id := 1; id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok && strings.Contains(row.ModuleName, moduleName) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockLabelRepo) List(_ context.Context, filter repository.ListFilter) ([]*ent.ShippingLabel, error) {
	var out []*ent.ShippingLabel
	for id := 1; id < m.nextID; id++ {
		row, ok := m.rows[id]
		if !ok {
			continue
		}
		if filter.ID != nil && row.ID != *filter.ID {
			continue
		}
		if filter.OrderID != nil && row.OrderID != *filter.OrderID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

var pdfFixture = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func newTestStore(t *testing.T) (*Store, *mockLabelRepo, *storage.Resolver) {
	t.Helper()
	resolver, err := storage.NewResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	repo := newMockLabelRepo()
	store := NewStore(repo, resolver, storage.NewValidator(0), nil)
	return store, repo, resolver
}

func writeCandidate(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidate.pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateWithFile(t *testing.T) {
	store, repo, resolver := newTestStore(t)

	id, err := store.Create(context.Background(), CreateRequest{
		OrderID:           10,
		ModuleName:        "carrier_dhl",
		TrackingNumber:    "TRK-001",
		CandidateFilePath: writeCandidate(t, pdfFixture),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	row := repo.rows[id]
	if row == nil {
		t.Fatal("record not persisted")
	}
	if row.StoredFilename == nil || *row.StoredFilename != constants.StoredFilename(id) {
		t.Fatalf("stored filename not derived from id: %v", row.StoredFilename)
	}
	full := filepath.Join(resolver.Root(), constants.StoredFilename(id))
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("placed file missing: %v", err)
	}
}

func TestCreateWithoutFile(t *testing.T) {
	store, repo, _ := newTestStore(t)

	id, err := store.Create(context.Background(), CreateRequest{OrderID: 5, ModuleName: "carrier_ups"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row := repo.rows[id]; row.StoredFilename != nil {
		t.Fatalf("expected no stored filename, got %q", *row.StoredFilename)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	store, repo, _ := newTestStore(t)

	cases := []struct {
		name string
		req  CreateRequest
	}{
		{"zero order id", CreateRequest{OrderID: 0, ModuleName: "carrier_dhl"}},
		{"empty module", CreateRequest{OrderID: 1, ModuleName: ""}},
		{"module with spaces", CreateRequest{OrderID: 1, ModuleName: "bad module"}},
		{"module too long", CreateRequest{OrderID: 1, ModuleName: strings.Repeat("a", constants.MaxModuleNameLen+1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Create(context.Background(), tc.req)
			if !errors.Is(err, common.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if len(repo.rows) != 0 {
		t.Fatalf("rejected creates must not persist rows, found %d", len(repo.rows))
	}
}

func TestCreateRollsBackOnBadFile(t *testing.T) {
	store, repo, _ := newTestStore(t)

	_, err := store.Create(context.Background(), CreateRequest{
		OrderID:           3,
		ModuleName:        "carrier_dhl",
		CandidateFilePath: writeCandidate(t, []byte("GIF89a not a pdf")),
	})
	if !errors.Is(err, common.ErrInvalidPDF) {
		t.Fatalf("expected ErrInvalidPDF, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("no row may remain after a rejected file, found %d", len(repo.rows))
	}
}

func TestUpdatePatch(t *testing.T) {
	store, repo, _ := newTestStore(t)
	id, err := store.Create(context.Background(), CreateRequest{OrderID: 1, ModuleName: "carrier_dhl"})
	if err != nil {
		t.Fatal(err)
	}

	tracking := "TRK-UPDATED"
	ok, err := store.Update(context.Background(), id, repository.UpdatePatch{TrackingNumber: &tracking})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	if got := repo.rows[id].TrackingNumber; got == nil || *got != tracking {
		t.Fatalf("tracking not updated: %v", got)
	}

	// Empty patch is refused outright.
	if _, err := store.Update(context.Background(), id, repository.UpdatePatch{}); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("empty patch: expected ErrInvalidInput, got %v", err)
	}

	// A stored filename must survive the resolver.
	bad := ".sneaky.pdf"
	if _, err := store.Update(context.Background(), id, repository.UpdatePatch{StoredFilename: &bad}); !errors.Is(err, common.ErrPathRejected) {
		t.Fatalf("expected ErrPathRejected, got %v", err)
	}
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	store, repo, resolver := newTestStore(t)
	id, err := store.Create(context.Background(), CreateRequest{
		OrderID:           1,
		ModuleName:        "carrier_dhl",
		CandidateFilePath: writeCandidate(t, pdfFixture),
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := store.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !res.Removed || res.FileWarning != "" {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, ok := repo.rows[id]; ok {
		t.Fatal("row still present")
	}
	if _, err := os.Stat(filepath.Join(resolver.Root(), constants.StoredFilename(id))); !os.IsNotExist(err) {
		t.Fatal("file still present")
	}
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	store, repo, _ := newTestStore(t)
	name := "label_1.pdf"
	row, _ := repo.Create(context.Background(), 1, "carrier_dhl", nil, &name)

	res, err := store.Delete(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("Delete must not fail on a missing file: %v", err)
	}
	if !res.Removed {
		t.Fatal("row must be removed even when the file is gone")
	}
	if !strings.Contains(res.FileWarning, "already missing") {
		t.Fatalf("expected a missing-file warning, got %q", res.FileWarning)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	store, _, _ := newTestStore(t)
	res, err := store.Delete(context.Background(), 404)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if res.Removed {
		t.Fatal("nothing should be removed for an unknown id")
	}
}

func TestBulkDeleteIsIndependentPerID(t *testing.T) {
	store, repo, _ := newTestStore(t)
	id1, _ := store.Create(context.Background(), CreateRequest{OrderID: 1, ModuleName: "carrier_dhl"})
	id2, _ := store.Create(context.Background(), CreateRequest{OrderID: 2, ModuleName: "carrier_ups"})

	deleted, warnings := store.BulkDelete(context.Background(), []int{id1, 999, id2})
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}
	if len(warnings) != 0 {
		t.Fatalf("unknown ids are not warnings, got %v", warnings)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("%d rows left", len(repo.rows))
	}
}

func TestResolveFileForDownloadErrors(t *testing.T) {
	store, repo, _ := newTestStore(t)

	// No record at all.
	if _, err := store.ResolveFileForDownload(context.Background(), 404); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Record without a file.
	noFile, _ := repo.Create(context.Background(), 1, "carrier_dhl", nil, nil)
	if _, err := store.ResolveFileForDownload(context.Background(), noFile.ID); !errors.Is(err, common.ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}

	// Record whose file vanished from disk.
	gone := "label_99.pdf"
	vanished, _ := repo.Create(context.Background(), 2, "carrier_dhl", nil, &gone)
	if _, err := store.ResolveFileForDownload(context.Background(), vanished.ID); !errors.Is(err, common.ErrFileMissing) {
		t.Fatalf("expected ErrFileMissing, got %v", err)
	}
}

func TestResolveFileForDownloadHappyPath(t *testing.T) {
	store, _, resolver := newTestStore(t)
	id, err := store.Create(context.Background(), CreateRequest{
		OrderID:           1,
		ModuleName:        "carrier_dhl",
		CandidateFilePath: writeCandidate(t, pdfFixture),
	})
	if err != nil {
		t.Fatal(err)
	}

	path, err := store.ResolveFileForDownload(context.Background(), id)
	if err != nil {
		t.Fatalf("ResolveFileForDownload: %v", err)
	}
	if want := filepath.Join(resolver.Root(), constants.StoredFilename(id)); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}
