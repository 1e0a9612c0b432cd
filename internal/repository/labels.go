package repository

import (
	"context"
	"log/slog"
	"time"

	"labels-tracker/gen/ent"
	entlabel "labels-tracker/gen/ent/shippinglabel"
)

// UpdatePatch enumerates the only fields a label update may touch. The id is
// deliberately not representable here; immutability holds at the type level
// instead of being enforced by a runtime check.
type UpdatePatch struct {
	TrackingNumber *string
	ModuleName     *string
	StoredFilename *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UpdatePatch) IsEmpty() bool {
	return p.TrackingNumber == nil && p.ModuleName == nil && p.StoredFilename == nil
}

// ListFilter mirrors the admin grid filters: exact match on id and order id,
// substring match on tracking number and module name, creation-time range.
// Results are always ordered by id ascending.
type ListFilter struct {
	ID             *int
	OrderID        *int
	TrackingNumber string
	ModuleName     string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	Limit          int
	Offset         int
}

type LabelRepository interface {
	Create(ctx context.Context, orderID int, moduleName string, trackingNumber, storedFilename *string) (*ent.ShippingLabel, error)
	GetByID(ctx context.Context, id int) (*ent.ShippingLabel, error)
	Update(ctx context.Context, id int, patch UpdatePatch) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListByOrder(ctx context.Context, orderID int) ([]*ent.ShippingLabel, error)
	ListByTracking(ctx context.Context, trackingNumber string) ([]*ent.ShippingLabel, error)
	ListByModule(ctx context.Context, moduleName string) ([]*ent.ShippingLabel, error)
	List(ctx context.Context, filter ListFilter) ([]*ent.ShippingLabel, error)
}

type labelRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewLabelRepository(entc *ent.Client, logger *slog.Logger) LabelRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &labelRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *labelRepo) Create(ctx context.Context, orderID int, moduleName string, trackingNumber, storedFilename *string) (*ent.ShippingLabel, error) {
	row, err := r.ent.ShippingLabel.Create().
		SetOrderID(orderID).
		SetModuleName(moduleName).
		SetNillableTrackingNumber(trackingNumber).
		SetNillableStoredFilename(storedFilename).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create shipping label", "order_id", orderID, "module_name", moduleName, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *labelRepo) GetByID(ctx context.Context, id int) (*ent.ShippingLabel, error) {
	return r.ent.ShippingLabel.Get(ctx, id)
}

func (r *labelRepo) Update(ctx context.Context, id int, patch UpdatePatch) (bool, error) {
	upd := r.ent.ShippingLabel.UpdateOneID(id)
	if patch.TrackingNumber != nil {
		upd = upd.SetTrackingNumber(*patch.TrackingNumber)
	}
	if patch.ModuleName != nil {
		upd = upd.SetModuleName(*patch.ModuleName)
	}
	if patch.StoredFilename != nil {
		upd = upd.SetStoredFilename(*patch.StoredFilename)
	}

	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		r.logger.Error("failed to update shipping label", "label_id", id, "error", err)
		return false, err
	}
	return true, nil
}

func (r *labelRepo) Delete(ctx context.Context, id int) (bool, error) {
	if err := r.ent.ShippingLabel.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		r.logger.Error("failed to delete shipping label", "label_id", id, "error", err)
		return false, err
	}
	return true, nil
}

func (r *labelRepo) ListByOrder(ctx context.Context, orderID int) ([]*ent.ShippingLabel, error) {
	rows, err := r.ent.ShippingLabel.Query().
		Where(entlabel.OrderID(orderID)).
		Order(ent.Asc(entlabel.FieldID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list labels by order", "order_id", orderID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *labelRepo) ListByTracking(ctx context.Context, trackingNumber string) ([]*ent.ShippingLabel, error) {
	rows, err := r.ent.ShippingLabel.Query().
		Where(entlabel.TrackingNumberContains(trackingNumber)).
		Order(ent.Asc(entlabel.FieldID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list labels by tracking number", "tracking_number", trackingNumber, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *labelRepo) ListByModule(ctx context.Context, moduleName string) ([]*ent.ShippingLabel, error) {
	rows, err := r.ent.ShippingLabel.Query().
		Where(entlabel.ModuleNameContains(moduleName)).
		Order(ent.Asc(entlabel.FieldID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list labels by module", "module_name", moduleName, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *labelRepo) List(ctx context.Context, filter ListFilter) ([]*ent.ShippingLabel, error) {
	q := r.ent.ShippingLabel.Query()
	if filter.ID != nil {
		q = q.Where(entlabel.ID(*filter.ID))
	}
	if filter.OrderID != nil {
		q = q.Where(entlabel.OrderID(*filter.OrderID))
	}
	if filter.TrackingNumber != "" {
		q = q.Where(entlabel.TrackingNumberContains(filter.TrackingNumber))
	}
	if filter.ModuleName != "" {
		q = q.Where(entlabel.ModuleNameContains(filter.ModuleName))
	}
	if filter.CreatedFrom != nil {
		q = q.Where(entlabel.CreatedAtGTE(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		q = q.Where(entlabel.CreatedAtLT(*filter.CreatedTo))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	rows, err := q.Order(ent.Asc(entlabel.FieldID)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list shipping labels", "error", err)
		return nil, err
	}
	return rows, nil
}
