// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ShippingLabel is the predicate function for shippinglabel builders.
type ShippingLabel func(*sql.Selector)
