package model

import "hostconnect/shared/model"

const (
	TableName  = "addon_services"
	EntityName = "addon_service"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldName       = "name"
	FieldPrice      = "price"
	FieldStatus     = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// AddonService is an optional per-booking extra (airport pickup, breakfast,
// late checkout). Price is charged once per booking, not per night.
type AddonService struct {
	ID         string  `db:"id"`
	PropertyID string  `db:"property_id"`
	Name       string  `db:"name"`
	Price      float64 `db:"price"`
	Status     string  `db:"status"`
	model.Metadata
}
