package entity

import (
	"time"
)

// ShippingLabel represents a shipping label record for data transfer between layers.
type ShippingLabel struct {
	ID             int       `json:"id"`
	OrderID        int       `json:"order_id"`
	TrackingNumber *string   `json:"tracking_number,omitempty"`
	ModuleName     string    `json:"module_name"`
	StoredFilename *string   `json:"stored_filename,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasFile reports whether a physical file is attached to the record.
func (l *ShippingLabel) HasFile() bool {
	return l.StoredFilename != nil && *l.StoredFilename != ""
}
