// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"labels-tracker/gen/ent/predicate"
	"labels-tracker/gen/ent/shippinglabel"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ShippingLabelDelete is the builder for deleting a ShippingLabel entity.
type ShippingLabelDelete struct {
	config
	hooks    []Hook
	mutation *ShippingLabelMutation
}

// Where appends a list predicates to the ShippingLabelDelete builder.
func (_d *ShippingLabelDelete) Where(ps ...predicate.ShippingLabel) *ShippingLabelDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ShippingLabelDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ShippingLabelDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ShippingLabelDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(shippinglabel.Table, sqlgraph.NewFieldSpec(shippinglabel.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ShippingLabelDeleteOne is the builder for deleting a single ShippingLabel entity.
type ShippingLabelDeleteOne struct {
	_d *ShippingLabelDelete
}

// Where appends a list predicates to the ShippingLabelDelete builder.
func (_d *ShippingLabelDeleteOne) Where(ps ...predicate.ShippingLabel) *ShippingLabelDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ShippingLabelDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{shippinglabel.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ShippingLabelDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
