// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"labels-tracker/gen/ent/shippinglabel"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// ShippingLabel is the model entity for the ShippingLabel schema.
type ShippingLabel struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID int `json:"order_id,omitempty"`
	// TrackingNumber holds the value of the "tracking_number" field.
	TrackingNumber *string `json:"tracking_number,omitempty"`
	// ModuleName holds the value of the "module_name" field.
	ModuleName string `json:"module_name,omitempty"`
	// StoredFilename holds the value of the "stored_filename" field.
	StoredFilename *string `json:"stored_filename,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShippingLabel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shippinglabel.FieldID, shippinglabel.FieldOrderID:
			values[i] = new(sql.NullInt64)
		case shippinglabel.FieldTrackingNumber, shippinglabel.FieldModuleName, shippinglabel.FieldStoredFilename:
			values[i] = new(sql.NullString)
		case shippinglabel.FieldCreatedAt, shippinglabel.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShippingLabel fields.
func (_m *ShippingLabel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shippinglabel.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case shippinglabel.FieldOrderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = int(value.Int64)
			}
		case shippinglabel.FieldTrackingNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tracking_number", values[i])
			} else if value.Valid {
				_m.TrackingNumber = new(string)
				*_m.TrackingNumber = value.String
			}
		case shippinglabel.FieldModuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_name", values[i])
			} else if value.Valid {
				_m.ModuleName = value.String
			}
		case shippinglabel.FieldStoredFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stored_filename", values[i])
			} else if value.Valid {
				_m.StoredFilename = new(string)
				*_m.StoredFilename = value.String
			}
		case shippinglabel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case shippinglabel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShippingLabel.
// This includes values selected through modifiers, order, etc.
func (_m *ShippingLabel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ShippingLabel.
// Note that you need to call ShippingLabel.Unwrap() before calling this method if this ShippingLabel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ShippingLabel) Update() *ShippingLabelUpdateOne {
	return NewShippingLabelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ShippingLabel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ShippingLabel) Unwrap() *ShippingLabel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShippingLabel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ShippingLabel) String() string {
	var builder strings.Builder
	builder.WriteString("ShippingLabel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderID))
	builder.WriteString(", ")
	if v := _m.TrackingNumber; v != nil {
		builder.WriteString("tracking_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("module_name=")
	builder.WriteString(_m.ModuleName)
	builder.WriteString(", ")
	if v := _m.StoredFilename; v != nil {
		builder.WriteString("stored_filename=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ShippingLabels is a parsable slice of ShippingLabel.
type ShippingLabels []*ShippingLabel
