package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"labels-tracker/gen/ent"
	"labels-tracker/internal/common"
	"labels-tracker/internal/labels"
	"labels-tracker/internal/repository"
	"labels-tracker/internal/storage"
)

type stubRepo struct {
	rows   map[int]*ent.ShippingLabel
	nextID int
}

func newStubRepo() *stubRepo {
	return &stubRepo{rows: make(map[int]*ent.ShippingLabel), nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, orderID int, moduleName string, trackingNumber, storedFilename *string) (*ent.ShippingLabel, error) {
	row := &ent.ShippingLabel{
		ID:             s.nextID,
		OrderID:        orderID,
		ModuleName:     moduleName,
		TrackingNumber: trackingNumber,
		StoredFilename: storedFilename,
		CreatedAt:      time.Now(),
	}
	s.rows[row.ID] = row
	s.nextID++
	return row, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int) (*ent.ShippingLabel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (s *stubRepo) Update(context.Context, int, repository.UpdatePatch) (bool, error) {
	return true, nil
}

func (s *stubRepo) Delete(_ context.Context, id int) (bool, error) {
	delete(s.rows, id)
	return true, nil
}

func (s *stubRepo) ListByOrder(context.Context, int) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (s *stubRepo) ListByTracking(context.Context, string) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (s *stubRepo) ListByModule(context.Context, string) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (s *stubRepo) List(context.Context, repository.ListFilter) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

// stubGenerator handles a fixed set of order ids.
type stubGenerator struct {
	module   string
	handles  map[int]bool
	failFor  map[int]bool
	produced int
}

func (g *stubGenerator) CanGenerateLabel(_ context.Context, order Order) bool {
	return g.handles[order.ID]
}

func (g *stubGenerator) GenerateLabel(_ context.Context, order Order) (*LabelData, error) {
	if g.failFor[order.ID] {
		return nil, errors.New("carrier backend unavailable")
	}
	g.produced++
	return &LabelData{ModuleName: g.module, TrackingNumber: "STUB-1"}, nil
}

func newTestRegistry(t *testing.T) (*Registry, *stubRepo) {
	t.Helper()
	resolver, err := storage.NewResolver(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	repo := newStubRepo()
	store := labels.NewStore(repo, resolver, storage.NewValidator(0), nil)
	return NewRegistry(store, nil), repo
}

func TestGenerateForOrderDispatchesToMatchingGenerators(t *testing.T) {
	reg, repo := newTestRegistry(t)
	dhl := &stubGenerator{module: "carrier_dhl", handles: map[int]bool{10: true}}
	ups := &stubGenerator{module: "carrier_ups", handles: map[int]bool{20: true}}
	reg.Register(dhl)
	reg.Register(ups)

	ids, err := reg.GenerateForOrder(context.Background(), Order{ID: 10})
	if err != nil {
		t.Fatalf("GenerateForOrder: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("created %d labels, want 1", len(ids))
	}
	if dhl.produced != 1 || ups.produced != 0 {
		t.Fatalf("wrong generator ran: dhl=%d ups=%d", dhl.produced, ups.produced)
	}
	if row := repo.rows[ids[0]]; row == nil || row.ModuleName != "carrier_dhl" {
		t.Fatalf("persisted row mismatch: %+v", row)
	}
}

func TestGenerateForOrderNoMatchingGenerator(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Register(&stubGenerator{module: "carrier_dhl", handles: map[int]bool{}})

	ids, err := reg.GenerateForOrder(context.Background(), Order{ID: 99})
	if err != nil {
		t.Fatalf("GenerateForOrder: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("created %d labels, want 0", len(ids))
	}
}

func TestGenerateForOrderWrapsFailure(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Register(&stubGenerator{
		module:  "carrier_dhl",
		handles: map[int]bool{5: true},
		failFor: map[int]bool{5: true},
	})

	_, err := reg.GenerateForOrder(context.Background(), Order{ID: 5})
	if !errors.Is(err, common.ErrCantGenerate) {
		t.Fatalf("expected ErrCantGenerate, got %v", err)
	}
}

func TestGenerateForOrdersIsIndependentPerOrder(t *testing.T) {
	reg, repo := newTestRegistry(t)
	reg.Register(&stubGenerator{
		module:  "carrier_dhl",
		handles: map[int]bool{1: true, 2: true, 3: true},
		failFor: map[int]bool{2: true},
	})

	generated, errs := reg.GenerateForOrders(context.Background(), []int{1, 2, 3})
	if generated != 2 {
		t.Fatalf("generated = %d, want 2", generated)
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want one entry", errs)
	}
	if len(repo.rows) != 2 {
		t.Fatalf("%d rows persisted, want 2", len(repo.rows))
	}
}
