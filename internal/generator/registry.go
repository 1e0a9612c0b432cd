// Package generator dispatches label generation to registered carrier
// integrations and persists whatever they report. The core never produces
// labels itself.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"labels-tracker/internal/common"
	"labels-tracker/internal/labels"
)

// Order is the slice of the external order entity that carrier integrations
// need. Orders are owned elsewhere; only the id is authoritative here.
type Order struct {
	ID        int
	Reference string
}

// LabelData is what a carrier integration reports for a generated label.
type LabelData struct {
	ModuleName     string
	FilePath       string
	TrackingNumber string
}

// Generator is implemented by carrier/shipping integrations.
type Generator interface {
	// CanGenerateLabel reports whether this integration handles the order.
	CanGenerateLabel(ctx context.Context, order Order) bool
	// GenerateLabel produces a label for the order or fails with an error
	// wrapping common.ErrCantGenerate.
	GenerateLabel(ctx context.Context, order Order) (*LabelData, error)
}

// Registry fans an order out to every registered generator and records the
// results through the label store.
type Registry struct {
	mu         sync.RWMutex
	generators []Generator
	store      *labels.Store
	logger     *slog.Logger
}

func NewRegistry(store *labels.Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{store: store, logger: logger}
}

// Register adds a generator. Safe for concurrent use.
func (r *Registry) Register(g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators = append(r.generators, g)
}

func (r *Registry) snapshot() []Generator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Generator(nil), r.generators...)
}

// GenerateForOrder offers the order to every registered generator and
// persists each produced label. Returns the created label ids.
func (r *Registry) GenerateForOrder(ctx context.Context, order Order) ([]int, error) {
	var created []int
	for _, g := range r.snapshot() {
		if !g.CanGenerateLabel(ctx, order) {
			continue
		}
		data, err := g.GenerateLabel(ctx, order)
		if err != nil {
			r.logger.Warn("label generation failed", "order_id", order.ID, "error", err)
			return created, fmt.Errorf("%w: order %d: %v", common.ErrCantGenerate, order.ID, err)
		}
		id, err := r.store.Create(ctx, labels.CreateRequest{
			OrderID:           order.ID,
			ModuleName:        data.ModuleName,
			TrackingNumber:    data.TrackingNumber,
			CandidateFilePath: data.FilePath,
		})
		if err != nil {
			return created, err
		}
		created = append(created, id)
	}
	return created, nil
}

// GenerateForOrders triggers generation per order id, independently; one
// order's failure does not abort the rest. Returns the number of labels
// created and per-order error messages.
func (r *Registry) GenerateForOrders(ctx context.Context, orderIDs []int) (int, []string) {
	generated := 0
	var errs []string
	for _, orderID := range orderIDs {
		ids, err := r.GenerateForOrder(ctx, Order{ID: orderID})
		generated += len(ids)
		if err != nil {
			errs = append(errs, fmt.Sprintf("order %d: %v", orderID, err))
		}
	}
	return generated, errs
}
