package model

import "hostconnect/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldRoomNumber = "room_number"
	FieldStatus     = "status"
)

// Only available rooms count toward the sellable inventory that
// availability checks against; occupied and maintenance rooms do not.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         string `db:"id"`
	RoomTypeID string `db:"room_type_id"`
	RoomNumber string `db:"room_number"`
	Status     string `db:"status"`
	model.Metadata
}
