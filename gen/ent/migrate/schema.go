// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ShippingLabelsColumns holds the columns for the "shipping_labels" table.
	ShippingLabelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "order_id", Type: field.TypeInt},
		{Name: "tracking_number", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "module_name", Type: field.TypeString, Size: 64},
		{Name: "stored_filename", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ShippingLabelsTable holds the schema information for the "shipping_labels" table.
	ShippingLabelsTable = &schema.Table{
		Name:       "shipping_labels",
		Columns:    ShippingLabelsColumns,
		PrimaryKey: []*schema.Column{ShippingLabelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "shippinglabel_order_id",
				Unique:  false,
				Columns: []*schema.Column{ShippingLabelsColumns[1]},
			},
			{
				Name:    "shippinglabel_tracking_number",
				Unique:  false,
				Columns: []*schema.Column{ShippingLabelsColumns[2]},
			},
			{
				Name:    "shippinglabel_module_name",
				Unique:  false,
				Columns: []*schema.Column{ShippingLabelsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ShippingLabelsTable,
	}
)

func init() {
	ShippingLabelsTable.Annotation = &entsql.Annotation{
		Table: "shipping_labels",
	}
}
