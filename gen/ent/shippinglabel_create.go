// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"labels-tracker/gen/ent/shippinglabel"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ShippingLabelCreate is the builder for creating a ShippingLabel entity.
type ShippingLabelCreate struct {
	config
	mutation *ShippingLabelMutation
	hooks    []Hook
}

// SetOrderID sets the "order_id" field.
func (_c *ShippingLabelCreate) SetOrderID(v int) *ShippingLabelCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetTrackingNumber sets the "tracking_number" field.
func (_c *ShippingLabelCreate) SetTrackingNumber(v string) *ShippingLabelCreate {
	_c.mutation.SetTrackingNumber(v)
	return _c
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_c *ShippingLabelCreate) SetNillableTrackingNumber(v *string) *ShippingLabelCreate {
	if v != nil {
		_c.SetTrackingNumber(*v)
	}
	return _c
}

// SetModuleName sets the "module_name" field.
func (_c *ShippingLabelCreate) SetModuleName(v string) *ShippingLabelCreate {
	_c.mutation.SetModuleName(v)
	return _c
}

// SetStoredFilename sets the "stored_filename" field.
func (_c *ShippingLabelCreate) SetStoredFilename(v string) *ShippingLabelCreate {
	_c.mutation.SetStoredFilename(v)
	return _c
}

// SetNillableStoredFilename sets the "stored_filename" field if the given value is not nil.
func (_c *ShippingLabelCreate) SetNillableStoredFilename(v *string) *ShippingLabelCreate {
	if v != nil {
		_c.SetStoredFilename(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ShippingLabelCreate) SetCreatedAt(v time.Time) *ShippingLabelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ShippingLabelCreate) SetNillableCreatedAt(v *time.Time) *ShippingLabelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ShippingLabelCreate) SetUpdatedAt(v time.Time) *ShippingLabelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ShippingLabelCreate) SetNillableUpdatedAt(v *time.Time) *ShippingLabelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ShippingLabelMutation object of the builder.
func (_c *ShippingLabelCreate) Mutation() *ShippingLabelMutation {
	return _c.mutation
}

// Save creates the ShippingLabel in the database.
func (_c *ShippingLabelCreate) Save(ctx context.Context) (*ShippingLabel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShippingLabelCreate) SaveX(ctx context.Context) *ShippingLabel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShippingLabelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShippingLabelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShippingLabelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := shippinglabel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := shippinglabel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShippingLabelCreate) check() error {
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "ShippingLabel.order_id"`)}
	}
	if v, ok := _c.mutation.OrderID(); ok {
		if err := shippinglabel.OrderIDValidator(v); err != nil {
			return &ValidationError{Name: "order_id", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.order_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TrackingNumber(); ok {
		if err := shippinglabel.TrackingNumberValidator(v); err != nil {
			return &ValidationError{Name: "tracking_number", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.tracking_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleName(); !ok {
		return &ValidationError{Name: "module_name", err: errors.New(`ent: missing required field "ShippingLabel.module_name"`)}
	}
	if v, ok := _c.mutation.ModuleName(); ok {
		if err := shippinglabel.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.module_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.StoredFilename(); ok {
		if err := shippinglabel.StoredFilenameValidator(v); err != nil {
			return &ValidationError{Name: "stored_filename", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.stored_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ShippingLabel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ShippingLabel.updated_at"`)}
	}
	return nil
}

func (_c *ShippingLabelCreate) sqlSave(ctx context.Context) (*ShippingLabel, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ShippingLabelCreate) createSpec() (*ShippingLabel, *sqlgraph.CreateSpec) {
	var (
		_node = &ShippingLabel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(shippinglabel.Table, sqlgraph.NewFieldSpec(shippinglabel.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(shippinglabel.FieldOrderID, field.TypeInt, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.TrackingNumber(); ok {
		_spec.SetField(shippinglabel.FieldTrackingNumber, field.TypeString, value)
		_node.TrackingNumber = &value
	}
	if value, ok := _c.mutation.ModuleName(); ok {
		_spec.SetField(shippinglabel.FieldModuleName, field.TypeString, value)
		_node.ModuleName = value
	}
	if value, ok := _c.mutation.StoredFilename(); ok {
		_spec.SetField(shippinglabel.FieldStoredFilename, field.TypeString, value)
		_node.StoredFilename = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(shippinglabel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(shippinglabel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ShippingLabelCreateBulk is the builder for creating many ShippingLabel entities in bulk.
type ShippingLabelCreateBulk struct {
	config
	err      error
	builders []*ShippingLabelCreate
}

// Save creates the ShippingLabel entities in the database.
func (_c *ShippingLabelCreateBulk) Save(ctx context.Context) ([]*ShippingLabel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ShippingLabel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShippingLabelMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ShippingLabelCreateBulk) SaveX(ctx context.Context) []*ShippingLabel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShippingLabelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShippingLabelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
