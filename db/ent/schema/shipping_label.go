package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"labels-tracker/constants"
)

type ShippingLabel struct {
	ent.Schema
}

func (ShippingLabel) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "shipping_labels"},
	}
}

func (ShippingLabel) Fields() []ent.Field {
	return []ent.Field{
		// references the external Order entity; not a FK, orders live elsewhere
		field.Int("order_id").Positive(),
		field.String("tracking_number").
			Optional().
			Nillable().
			MaxLen(constants.MaxTrackingNumberLen),
		field.String("module_name").
			NotEmpty().
			MaxLen(constants.MaxModuleNameLen),
		// basename only; resolved against the labels root at read time
		field.String("stored_filename").
			Optional().
			Nillable().
			MaxLen(constants.MaxStoredFilenameLen),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ShippingLabel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id"),
		index.Fields("tracking_number"),
		index.Fields("module_name"),
	}
}
