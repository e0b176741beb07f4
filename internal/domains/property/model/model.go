package model

import "hostconnect/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID        = "id"
	FieldName      = "name"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldCountry   = "country"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldRoomCount = "room_count"
	FieldStatus    = "status"
)

const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// Property is a tenant-owned lodging unit. Properties are never hard-deleted
// in the normal flow; delete soft-disables via status.
type Property struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Address   string `db:"address"`
	City      string `db:"city"`
	Country   string `db:"country"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
	RoomCount int    `db:"room_count"`
	Status    string `db:"status"`
	model.Metadata
}
