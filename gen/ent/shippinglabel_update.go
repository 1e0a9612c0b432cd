// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"labels-tracker/gen/ent/predicate"
	"labels-tracker/gen/ent/shippinglabel"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ShippingLabelUpdate is the builder for updating ShippingLabel entities.
type ShippingLabelUpdate struct {
	config
	hooks    []Hook
	mutation *ShippingLabelMutation
}

// Where appends a list predicates to the ShippingLabelUpdate builder.
func (_u *ShippingLabelUpdate) Where(ps ...predicate.ShippingLabel) *ShippingLabelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *ShippingLabelUpdate) SetOrderID(v int) *ShippingLabelUpdate {
	_u.mutation.ResetOrderID()
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *ShippingLabelUpdate) SetNillableOrderID(v *int) *ShippingLabelUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// AddOrderID adds value to the "order_id" field.
func (_u *ShippingLabelUpdate) AddOrderID(v int) *ShippingLabelUpdate {
	_u.mutation.AddOrderID(v)
	return _u
}

// SetTrackingNumber sets the "tracking_number" field.
func (_u *ShippingLabelUpdate) SetTrackingNumber(v string) *ShippingLabelUpdate {
	_u.mutation.SetTrackingNumber(v)
	return _u
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_u *ShippingLabelUpdate) SetNillableTrackingNumber(v *string) *ShippingLabelUpdate {
	if v != nil {
		_u.SetTrackingNumber(*v)
	}
	return _u
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (_u *ShippingLabelUpdate) ClearTrackingNumber() *ShippingLabelUpdate {
	_u.mutation.ClearTrackingNumber()
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *ShippingLabelUpdate) SetModuleName(v string) *ShippingLabelUpdate {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *ShippingLabelUpdate) SetNillableModuleName(v *string) *ShippingLabelUpdate {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetStoredFilename sets the "stored_filename" field.
func (_u *ShippingLabelUpdate) SetStoredFilename(v string) *ShippingLabelUpdate {
	_u.mutation.SetStoredFilename(v)
	return _u
}

// SetNillableStoredFilename sets the "stored_filename" field if the given value is not nil.
func (_u *ShippingLabelUpdate) SetNillableStoredFilename(v *string) *ShippingLabelUpdate {
	if v != nil {
		_u.SetStoredFilename(*v)
	}
	return _u
}

// ClearStoredFilename clears the value of the "stored_filename" field.
func (_u *ShippingLabelUpdate) ClearStoredFilename() *ShippingLabelUpdate {
	_u.mutation.ClearStoredFilename()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShippingLabelUpdate) SetUpdatedAt(v time.Time) *ShippingLabelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ShippingLabelMutation object of the builder.
func (_u *ShippingLabelUpdate) Mutation() *ShippingLabelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShippingLabelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShippingLabelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShippingLabelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShippingLabelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShippingLabelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shippinglabel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShippingLabelUpdate) check() error {
	if v, ok := _u.mutation.OrderID(); ok {
		if err := shippinglabel.OrderIDValidator(v); err != nil {
			return &ValidationError{Name: "order_id", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.order_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrackingNumber(); ok {
		if err := shippinglabel.TrackingNumberValidator(v); err != nil {
			return &ValidationError{Name: "tracking_number", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.tracking_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleName(); ok {
		if err := shippinglabel.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.module_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredFilename(); ok {
		if err := shippinglabel.StoredFilenameValidator(v); err != nil {
			return &ValidationError{Name: "stored_filename", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.stored_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *ShippingLabelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shippinglabel.Table, shippinglabel.Columns, sqlgraph.NewFieldSpec(shippinglabel.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(shippinglabel.FieldOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderID(); ok {
		_spec.AddField(shippinglabel.FieldOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrackingNumber(); ok {
		_spec.SetField(shippinglabel.FieldTrackingNumber, field.TypeString, value)
	}
	if _u.mutation.TrackingNumberCleared() {
		_spec.ClearField(shippinglabel.FieldTrackingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(shippinglabel.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredFilename(); ok {
		_spec.SetField(shippinglabel.FieldStoredFilename, field.TypeString, value)
	}
	if _u.mutation.StoredFilenameCleared() {
		_spec.ClearField(shippinglabel.FieldStoredFilename, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shippinglabel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shippinglabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShippingLabelUpdateOne is the builder for updating a single ShippingLabel entity.
type ShippingLabelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShippingLabelMutation
}

// SetOrderID sets the "order_id" field.
func (_u *ShippingLabelUpdateOne) SetOrderID(v int) *ShippingLabelUpdateOne {
	_u.mutation.ResetOrderID()
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *ShippingLabelUpdateOne) SetNillableOrderID(v *int) *ShippingLabelUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// AddOrderID adds value to the "order_id" field.
func (_u *ShippingLabelUpdateOne) AddOrderID(v int) *ShippingLabelUpdateOne {
	_u.mutation.AddOrderID(v)
	return _u
}

// SetTrackingNumber sets the "tracking_number" field.
func (_u *ShippingLabelUpdateOne) SetTrackingNumber(v string) *ShippingLabelUpdateOne {
	_u.mutation.SetTrackingNumber(v)
	return _u
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_u *ShippingLabelUpdateOne) SetNillableTrackingNumber(v *string) *ShippingLabelUpdateOne {
	if v != nil {
		_u.SetTrackingNumber(*v)
	}
	return _u
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (_u *ShippingLabelUpdateOne) ClearTrackingNumber() *ShippingLabelUpdateOne {
	_u.mutation.ClearTrackingNumber()
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *ShippingLabelUpdateOne) SetModuleName(v string) *ShippingLabelUpdateOne {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *ShippingLabelUpdateOne) SetNillableModuleName(v *string) *ShippingLabelUpdateOne {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetStoredFilename sets the "stored_filename" field.
func (_u *ShippingLabelUpdateOne) SetStoredFilename(v string) *ShippingLabelUpdateOne {
	_u.mutation.SetStoredFilename(v)
	return _u
}

// SetNillableStoredFilename sets the "stored_filename" field if the given value is not nil.
func (_u *ShippingLabelUpdateOne) SetNillableStoredFilename(v *string) *ShippingLabelUpdateOne {
	if v != nil {
		_u.SetStoredFilename(*v)
	}
	return _u
}

// ClearStoredFilename clears the value of the "stored_filename" field.
func (_u *ShippingLabelUpdateOne) ClearStoredFilename() *ShippingLabelUpdateOne {
	_u.mutation.ClearStoredFilename()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShippingLabelUpdateOne) SetUpdatedAt(v time.Time) *ShippingLabelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ShippingLabelMutation object of the builder.
func (_u *ShippingLabelUpdateOne) Mutation() *ShippingLabelMutation {
	return _u.mutation
}

// Where appends a list predicates to the ShippingLabelUpdate builder.
func (_u *ShippingLabelUpdateOne) Where(ps ...predicate.ShippingLabel) *ShippingLabelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShippingLabelUpdateOne) Select(field string, fields ...string) *ShippingLabelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ShippingLabel entity.
func (_u *ShippingLabelUpdateOne) Save(ctx context.Context) (*ShippingLabel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShippingLabelUpdateOne) SaveX(ctx context.Context) *ShippingLabel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShippingLabelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShippingLabelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShippingLabelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shippinglabel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShippingLabelUpdateOne) check() error {
	if v, ok := _u.mutation.OrderID(); ok {
		if err := shippinglabel.OrderIDValidator(v); err != nil {
			return &ValidationError{Name: "order_id", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.order_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrackingNumber(); ok {
		if err := shippinglabel.TrackingNumberValidator(v); err != nil {
			return &ValidationError{Name: "tracking_number", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.tracking_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleName(); ok {
		if err := shippinglabel.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.module_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredFilename(); ok {
		if err := shippinglabel.StoredFilenameValidator(v); err != nil {
			return &ValidationError{Name: "stored_filename", err: fmt.Errorf(`ent: validator failed for field "ShippingLabel.stored_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *ShippingLabelUpdateOne) sqlSave(ctx context.Context) (_node *ShippingLabel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shippinglabel.Table, shippinglabel.Columns, sqlgraph.NewFieldSpec(shippinglabel.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShippingLabel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shippinglabel.FieldID)
		for _, f := range fields {
			if !shippinglabel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shippinglabel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(shippinglabel.FieldOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderID(); ok {
		_spec.AddField(shippinglabel.FieldOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrackingNumber(); ok {
		_spec.SetField(shippinglabel.FieldTrackingNumber, field.TypeString, value)
	}
	if _u.mutation.TrackingNumberCleared() {
		_spec.ClearField(shippinglabel.FieldTrackingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(shippinglabel.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredFilename(); ok {
		_spec.SetField(shippinglabel.FieldStoredFilename, field.TypeString, value)
	}
	if _u.mutation.StoredFilenameCleared() {
		_spec.ClearField(shippinglabel.FieldStoredFilename, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shippinglabel.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ShippingLabel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shippinglabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
