// Code generated by ent, DO NOT EDIT.

package shippinglabel

import (
	"labels-tracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLTE(FieldID, id))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldOrderID, v))
}

// TrackingNumber applies equality check predicate on the "tracking_number" field. It's identical to TrackingNumberEQ.
func TrackingNumber(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldTrackingNumber, v))
}

// ModuleName applies equality check predicate on the "module_name" field. It's identical to ModuleNameEQ.
func ModuleName(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldModuleName, v))
}

// StoredFilename applies equality check predicate on the "stored_filename" field. It's identical to StoredFilenameEQ.
func StoredFilename(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldStoredFilename, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v int) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLTE(FieldOrderID, v))
}

// TrackingNumberEQ applies the EQ predicate on the "tracking_number" field.
func TrackingNumberEQ(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldTrackingNumber, v))
}

// TrackingNumberNEQ applies the NEQ predicate on the "tracking_number" field.
func TrackingNumberNEQ(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNEQ(FieldTrackingNumber, v))
}

// TrackingNumberIn applies the In predicate on the "tracking_number" field.
func TrackingNumberIn(vs ...string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIn(FieldTrackingNumber, vs...))
}

// TrackingNumberNotIn applies the NotIn predicate on the "tracking_number" field.
func TrackingNumberNotIn(vs ...string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotIn(FieldTrackingNumber, vs...))
}

// TrackingNumberGT applies the GT predicate on the "tracking_number" field.
func TrackingNumberGT(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGT(FieldTrackingNumber, v))
}

// TrackingNumberGTE applies the GTE predicate on the "tracking_number" field.
func TrackingNumberGTE(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGTE(FieldTrackingNumber, v))
}

// TrackingNumberLT applies the LT predicate on the "tracking_number" field.
func TrackingNumberLT(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLT(FieldTrackingNumber, v))
}

// TrackingNumberLTE applies the LTE predicate on the "tracking_number" field.
func TrackingNumberLTE(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLTE(FieldTrackingNumber, v))
}

// TrackingNumberContains applies the Contains predicate on the "tracking_number" field.
func TrackingNumberContains(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldContains(FieldTrackingNumber, v))
}

// TrackingNumberHasPrefix applies the HasPrefix predicate on the "tracking_number" field.
func TrackingNumberHasPrefix(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldHasPrefix(FieldTrackingNumber, v))
}

// TrackingNumberHasSuffix applies the HasSuffix predicate on the "tracking_number" field.
func TrackingNumberHasSuffix(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldHasSuffix(FieldTrackingNumber, v))
}

// TrackingNumberIsNil applies the IsNil predicate on the "tracking_number" field.
func TrackingNumberIsNil() predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIsNull(FieldTrackingNumber))
}

// TrackingNumberNotNil applies the NotNil predicate on the "tracking_number" field.
func TrackingNumberNotNil() predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotNull(FieldTrackingNumber))
}

// TrackingNumberEqualFold applies the EqualFold predicate on the "tracking_number" field.
func TrackingNumberEqualFold(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEqualFold(FieldTrackingNumber, v))
}

// TrackingNumberContainsFold applies the ContainsFold predicate on the "tracking_number" field.
func TrackingNumberContainsFold(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldContainsFold(FieldTrackingNumber, v))
}

// ModuleNameEQ applies the EQ predicate on the "module_name" field.
func ModuleNameEQ(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldModuleName, v))
}

// ModuleNameNEQ applies the NEQ predicate on the "module_name" field.
func ModuleNameNEQ(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNEQ(FieldModuleName, v))
}

// ModuleNameIn applies the In predicate on the "module_name" field.
func ModuleNameIn(vs ...string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIn(FieldModuleName, vs...))
}

// ModuleNameNotIn applies the NotIn predicate on the "module_name" field.
func ModuleNameNotIn(vs ...string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotIn(FieldModuleName, vs...))
}

// ModuleNameGT applies the GT predicate on the "module_name" field.
func ModuleNameGT(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGT(FieldModuleName, v))
}

// ModuleNameGTE applies the GTE predicate on the "module_name" field.
func ModuleNameGTE(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGTE(FieldModuleName, v))
}

// ModuleNameLT applies the LT predicate on the "module_name" field.
func ModuleNameLT(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLT(FieldModuleName, v))
}

// ModuleNameLTE applies the LTE predicate on the "module_name" field.
func ModuleNameLTE(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLTE(FieldModuleName, v))
}

// ModuleNameContains applies the Contains predicate on the "module_name" field.
func ModuleNameContains(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldContains(FieldModuleName, v))
}

// ModuleNameHasPrefix applies the HasPrefix predicate on the "module_name" field.
func ModuleNameHasPrefix(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldHasPrefix(FieldModuleName, v))
}

// ModuleNameHasSuffix applies the HasSuffix predicate on the "module_name" field.
func ModuleNameHasSuffix(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldHasSuffix(FieldModuleName, v))
}

// ModuleNameEqualFold applies the EqualFold predicate on the "module_name" field.
func ModuleNameEqualFold(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEqualFold(FieldModuleName, v))
}

// ModuleNameContainsFold applies the ContainsFold predicate on the "module_name" field.
func ModuleNameContainsFold(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldContainsFold(FieldModuleName, v))
}

// StoredFilenameEQ applies the EQ predicate on the "stored_filename" field.
func StoredFilenameEQ(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldStoredFilename, v))
}

// StoredFilenameNEQ applies the NEQ predicate on the "stored_filename" field.
func StoredFilenameNEQ(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNEQ(FieldStoredFilename, v))
}

// StoredFilenameIn applies the In predicate on the "stored_filename" field.
func StoredFilenameIn(vs ...string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIn(FieldStoredFilename, vs...))
}

// StoredFilenameNotIn applies the NotIn predicate on the "stored_filename" field.
func StoredFilenameNotIn(vs ...string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotIn(FieldStoredFilename, vs...))
}

// StoredFilenameGT applies the GT predicate on the "stored_filename" field.
func StoredFilenameGT(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGT(FieldStoredFilename, v))
}

// StoredFilenameGTE applies the GTE predicate on the "stored_filename" field.
func StoredFilenameGTE(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGTE(FieldStoredFilename, v))
}

// StoredFilenameLT applies the LT predicate on the "stored_filename" field.
func StoredFilenameLT(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLT(FieldStoredFilename, v))
}

// StoredFilenameLTE applies the LTE predicate on the "stored_filename" field.
func StoredFilenameLTE(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLTE(FieldStoredFilename, v))
}

// StoredFilenameContains applies the Contains predicate on the "stored_filename" field.
func StoredFilenameContains(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldContains(FieldStoredFilename, v))
}

// StoredFilenameHasPrefix applies the HasPrefix predicate on the "stored_filename" field.
func StoredFilenameHasPrefix(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldHasPrefix(FieldStoredFilename, v))
}

// StoredFilenameHasSuffix applies the HasSuffix predicate on the "stored_filename" field.
func StoredFilenameHasSuffix(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldHasSuffix(FieldStoredFilename, v))
}

// StoredFilenameIsNil applies the IsNil predicate on the "stored_filename" field.
func StoredFilenameIsNil() predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIsNull(FieldStoredFilename))
}

// StoredFilenameNotNil applies the NotNil predicate on the "stored_filename" field.
func StoredFilenameNotNil() predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotNull(FieldStoredFilename))
}

// StoredFilenameEqualFold applies the EqualFold predicate on the "stored_filename" field.
func StoredFilenameEqualFold(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEqualFold(FieldStoredFilename, v))
}

// StoredFilenameContainsFold applies the ContainsFold predicate on the "stored_filename" field.
func StoredFilenameContainsFold(v string) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldContainsFold(FieldStoredFilename, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShippingLabel) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShippingLabel) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShippingLabel) predicate.ShippingLabel {
	return predicate.ShippingLabel(sql.NotPredicates(p))
}
