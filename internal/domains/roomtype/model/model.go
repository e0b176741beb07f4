package model

import "hostconnect/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldName       = "name"
	FieldCapacity   = "capacity"
	FieldBasePrice  = "base_price"
	FieldStatus     = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// RoomType is a bookable category of rooms within a property.
// Capacity is the maximum guest count a single room of this type sleeps.
type RoomType struct {
	ID         string  `db:"id"`
	PropertyID string  `db:"property_id"`
	Name       string  `db:"name"`
	Capacity   int     `db:"capacity"`
	BasePrice  float64 `db:"base_price"`
	Status     string  `db:"status"`
	model.Metadata
}
