// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"labels-tracker/gen/ent/predicate"
	"labels-tracker/gen/ent/shippinglabel"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeShippingLabel = "ShippingLabel"
)

// ShippingLabelMutation represents an operation that mutates the ShippingLabel nodes in the graph.
type ShippingLabelMutation struct {
	config
	op              Op
	typ             string
	id              *int
	order_id        *int
	addorder_id     *int
	tracking_number *string
	module_name     *string
	stored_filename *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ShippingLabel, error)
	predicates      []predicate.ShippingLabel
}

var _ ent.Mutation = (*ShippingLabelMutation)(nil)

// shippinglabelOption allows management of the mutation configuration using functional options.
type shippinglabelOption func(*ShippingLabelMutation)

// newShippingLabelMutation creates new mutation for the ShippingLabel entity.
func newShippingLabelMutation(c config, op Op, opts ...shippinglabelOption) *ShippingLabelMutation {
	m := &ShippingLabelMutation{
		config:        c,
		op:            op,
		typ:           TypeShippingLabel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShippingLabelID sets the ID field of the mutation.
func withShippingLabelID(id int) shippinglabelOption {
	return func(m *ShippingLabelMutation) {
		var (
			err   error
			once  sync.Once
			value *ShippingLabel
		)
		m.oldValue = func(ctx context.Context) (*ShippingLabel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ShippingLabel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShippingLabel sets the old ShippingLabel of the mutation.
func withShippingLabel(node *ShippingLabel) shippinglabelOption {
	return func(m *ShippingLabelMutation) {
		m.oldValue = func(context.Context) (*ShippingLabel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShippingLabelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShippingLabelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShippingLabelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShippingLabelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ShippingLabel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *ShippingLabelMutation) SetOrderID(i int) {
	m.order_id = &i
	m.addorder_id = nil
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *ShippingLabelMutation) OrderID() (r int, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the ShippingLabel entity.
// If the ShippingLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingLabelMutation) OldOrderID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// AddOrderID adds i to the "order_id" field.
func (m *ShippingLabelMutation) AddOrderID(i int) {
	if m.addorder_id != nil {
		*m.addorder_id += i
	} else {
		m.addorder_id = &i
	}
}

// AddedOrderID returns the value that was added to the "order_id" field in this mutation.
func (m *ShippingLabelMutation) AddedOrderID() (r int, exists bool) {
	v := m.addorder_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *ShippingLabelMutation) ResetOrderID() {
	m.order_id = nil
	m.addorder_id = nil
}

// SetTrackingNumber sets the "tracking_number" field.
func (m *ShippingLabelMutation) SetTrackingNumber(s string) {
	m.tracking_number = &s
}

// TrackingNumber returns the value of the "tracking_number" field in the mutation.
func (m *ShippingLabelMutation) TrackingNumber() (r string, exists bool) {
	v := m.tracking_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackingNumber returns the old "tracking_number" field's value of the ShippingLabel entity.
// If the ShippingLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingLabelMutation) OldTrackingNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackingNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackingNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackingNumber: %w", err)
	}
	return oldValue.TrackingNumber, nil
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (m *ShippingLabelMutation) ClearTrackingNumber() {
	m.tracking_number = nil
	m.clearedFields[shippinglabel.FieldTrackingNumber] = struct{}{}
}

// TrackingNumberCleared returns if the "tracking_number" field was cleared in this mutation.
func (m *ShippingLabelMutation) TrackingNumberCleared() bool {
	_, ok := m.clearedFields[shippinglabel.FieldTrackingNumber]
	return ok
}

// ResetTrackingNumber resets all changes to the "tracking_number" field.
func (m *ShippingLabelMutation) ResetTrackingNumber() {
	m.tracking_number = nil
	delete(m.clearedFields, shippinglabel.FieldTrackingNumber)
}

// SetModuleName sets the "module_name" field.
func (m *ShippingLabelMutation) SetModuleName(s string) {
	m.module_name = &s
}

// ModuleName returns the value of the "module_name" field in the mutation.
func (m *ShippingLabelMutation) ModuleName() (r string, exists bool) {
	v := m.module_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleName returns the old "module_name" field's value of the ShippingLabel entity.
// If the ShippingLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingLabelMutation) OldModuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleName: %w", err)
	}
	return oldValue.ModuleName, nil
}

// ResetModuleName resets all changes to the "module_name" field.
func (m *ShippingLabelMutation) ResetModuleName() {
	m.module_name = nil
}

// SetStoredFilename sets the "stored_filename" field.
func (m *ShippingLabelMutation) SetStoredFilename(s string) {
	m.stored_filename = &s
}

// StoredFilename returns the value of the "stored_filename" field in the mutation.
func (m *ShippingLabelMutation) StoredFilename() (r string, exists bool) {
	v := m.stored_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredFilename returns the old "stored_filename" field's value of the ShippingLabel entity.
// If the ShippingLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingLabelMutation) OldStoredFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredFilename: %w", err)
	}
	return oldValue.StoredFilename, nil
}

// ClearStoredFilename clears the value of the "stored_filename" field.
func (m *ShippingLabelMutation) ClearStoredFilename() {
	m.stored_filename = nil
	m.clearedFields[shippinglabel.FieldStoredFilename] = struct{}{}
}

// StoredFilenameCleared returns if the "stored_filename" field was cleared in this mutation.
func (m *ShippingLabelMutation) StoredFilenameCleared() bool {
	_, ok := m.clearedFields[shippinglabel.FieldStoredFilename]
	return ok
}

// ResetStoredFilename resets all changes to the "stored_filename" field.
func (m *ShippingLabelMutation) ResetStoredFilename() {
	m.stored_filename = nil
	delete(m.clearedFields, shippinglabel.FieldStoredFilename)
}

// SetCreatedAt sets the "created_at" field.
func (m *ShippingLabelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShippingLabelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ShippingLabel entity.
// If the ShippingLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingLabelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShippingLabelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShippingLabelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShippingLabelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ShippingLabel entity.
// If the ShippingLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingLabelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShippingLabelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ShippingLabelMutation builder.
func (m *ShippingLabelMutation) Where(ps ...predicate.ShippingLabel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShippingLabelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShippingLabelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ShippingLabel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShippingLabelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShippingLabelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ShippingLabel).
func (m *ShippingLabelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShippingLabelMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.order_id != nil {
		fields = append(fields, shippinglabel.FieldOrderID)
	}
	if m.tracking_number != nil {
		fields = append(fields, shippinglabel.FieldTrackingNumber)
	}
	if m.module_name != nil {
		fields = append(fields, shippinglabel.FieldModuleName)
	}
	if m.stored_filename != nil {
		fields = append(fields, shippinglabel.FieldStoredFilename)
	}
	if m.created_at != nil {
		fields = append(fields, shippinglabel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shippinglabel.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShippingLabelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shippinglabel.FieldOrderID:
		return m.OrderID()
	case shippinglabel.FieldTrackingNumber:
		return m.TrackingNumber()
	case shippinglabel.FieldModuleName:
		return m.ModuleName()
	case shippinglabel.FieldStoredFilename:
		return m.StoredFilename()
	case shippinglabel.FieldCreatedAt:
		return m.CreatedAt()
	case shippinglabel.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShippingLabelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shippinglabel.FieldOrderID:
		return m.OldOrderID(ctx)
	case shippinglabel.FieldTrackingNumber:
		return m.OldTrackingNumber(ctx)
	case shippinglabel.FieldModuleName:
		return m.OldModuleName(ctx)
	case shippinglabel.FieldStoredFilename:
		return m.OldStoredFilename(ctx)
	case shippinglabel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shippinglabel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ShippingLabel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShippingLabelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shippinglabel.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case shippinglabel.FieldTrackingNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackingNumber(v)
		return nil
	case shippinglabel.FieldModuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleName(v)
		return nil
	case shippinglabel.FieldStoredFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredFilename(v)
		return nil
	case shippinglabel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shippinglabel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ShippingLabel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShippingLabelMutation) AddedFields() []string {
	var fields []string
	if m.addorder_id != nil {
		fields = append(fields, shippinglabel.FieldOrderID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShippingLabelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case shippinglabel.FieldOrderID:
		return m.AddedOrderID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShippingLabelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case shippinglabel.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderID(v)
		return nil
	}
	return fmt.Errorf("unknown ShippingLabel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShippingLabelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shippinglabel.FieldTrackingNumber) {
		fields = append(fields, shippinglabel.FieldTrackingNumber)
	}
	if m.FieldCleared(shippinglabel.FieldStoredFilename) {
		fields = append(fields, shippinglabel.FieldStoredFilename)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShippingLabelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShippingLabelMutation) ClearField(name string) error {
	switch name {
	case shippinglabel.FieldTrackingNumber:
		m.ClearTrackingNumber()
		return nil
	case shippinglabel.FieldStoredFilename:
		m.ClearStoredFilename()
		return nil
	}
	return fmt.Errorf("unknown ShippingLabel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShippingLabelMutation) ResetField(name string) error {
	switch name {
	case shippinglabel.FieldOrderID:
		m.ResetOrderID()
		return nil
	case shippinglabel.FieldTrackingNumber:
		m.ResetTrackingNumber()
		return nil
	case shippinglabel.FieldModuleName:
		m.ResetModuleName()
		return nil
	case shippinglabel.FieldStoredFilename:
		m.ResetStoredFilename()
		return nil
	case shippinglabel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shippinglabel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ShippingLabel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShippingLabelMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShippingLabelMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShippingLabelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShippingLabelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShippingLabelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShippingLabelMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShippingLabelMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ShippingLabel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShippingLabelMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ShippingLabel edge %s", name)
}
