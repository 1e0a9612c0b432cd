package utils

import (
	"time"

	"labels-tracker/gen/ent"
	labelspb "labels-tracker/gen/proto/labels/v1"
	"labels-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToShippingLabel(e *ent.ShippingLabel) *entity.ShippingLabel {
	return &entity.ShippingLabel{
		ID:             e.ID,
		OrderID:        e.OrderID,
		TrackingNumber: e.TrackingNumber,
		ModuleName:     e.ModuleName,
		StoredFilename: e.StoredFilename,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToShippingLabels(rows []*ent.ShippingLabel) []*entity.ShippingLabel {
	out := make([]*entity.ShippingLabel, len(rows))
	for i, row := range rows {
		out[i] = ToShippingLabel(row)
	}
	return out
}

func ToPBShippingLabel(l *entity.ShippingLabel) *labelspb.ShippingLabel {
	return &labelspb.ShippingLabel{
		Id:             int64(l.ID),
		OrderId:        int64(l.OrderID),
		TrackingNumber: strOrEmpty(l.TrackingNumber),
		ModuleName:     l.ModuleName,
		StoredFilename: strOrEmpty(l.StoredFilename),
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
