// Code generated by ent, DO NOT EDIT.

package ent

import (
	"labels-tracker/db/ent/schema"
	"labels-tracker/gen/ent/shippinglabel"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	shippinglabelFields := schema.ShippingLabel{}.Fields()
	_ = shippinglabelFields
	// shippinglabelDescOrderID is the schema descriptor for order_id field.
	shippinglabelDescOrderID := shippinglabelFields[0].Descriptor()
	// shippinglabel.OrderIDValidator is a validator for the "order_id" field. It is called by the builders before save.
	shippinglabel.OrderIDValidator = shippinglabelDescOrderID.Validators[0].(func(int) error)
	// shippinglabelDescTrackingNumber is the schema descriptor for tracking_number field.
	shippinglabelDescTrackingNumber := shippinglabelFields[1].Descriptor()
	// shippinglabel.TrackingNumberValidator is a validator for the "tracking_number" field. It is called by the builders before save.
	shippinglabel.TrackingNumberValidator = shippinglabelDescTrackingNumber.Validators[0].(func(string) error)
	// shippinglabelDescModuleName is the schema descriptor for module_name field.
	shippinglabelDescModuleName := shippinglabelFields[2].Descriptor()
	// shippinglabel.ModuleNameValidator is a validator for the "module_name" field. It is called by the builders before save.
	shippinglabel.ModuleNameValidator = func() func(string) error {
		validators := shippinglabelDescModuleName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(module_name string) error {
			for _, fn := range fns {
				if err := fn(module_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shippinglabelDescStoredFilename is the schema descriptor for stored_filename field.
	shippinglabelDescStoredFilename := shippinglabelFields[3].Descriptor()
	// shippinglabel.StoredFilenameValidator is a validator for the "stored_filename" field. It is called by the builders before save.
	shippinglabel.StoredFilenameValidator = shippinglabelDescStoredFilename.Validators[0].(func(string) error)
	// shippinglabelDescCreatedAt is the schema descriptor for created_at field.
	shippinglabelDescCreatedAt := shippinglabelFields[4].Descriptor()
	// shippinglabel.DefaultCreatedAt holds the default value on creation for the created_at field.
	shippinglabel.DefaultCreatedAt = shippinglabelDescCreatedAt.Default.(func() time.Time)
	// shippinglabelDescUpdatedAt is the schema descriptor for updated_at field.
	shippinglabelDescUpdatedAt := shippinglabelFields[5].Descriptor()
	// shippinglabel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shippinglabel.DefaultUpdatedAt = shippinglabelDescUpdatedAt.Default.(func() time.Time)
	// shippinglabel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shippinglabel.UpdateDefaultUpdatedAt = shippinglabelDescUpdatedAt.UpdateDefault.(func() time.Time)
}
