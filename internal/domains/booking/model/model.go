package model

import (
	"time"

	"github.com/lib/pq"

	"hostconnect/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldPropertyID        = "property_id"
	FieldRoomTypeID        = "room_type_id"
	FieldCheckIn           = "check_in"
	FieldCheckOut          = "check_out"
	FieldTotalGuests       = "total_guests"
	FieldGuestName         = "guest_name"
	FieldGuestEmail        = "guest_email"
	FieldTotalAmount       = "total_amount"
	FieldStatus            = "status"
	FieldCheckoutSessionID = "checkout_session_id"
)

// A pending booking holds inventory until it is paid or swept. Only pending
// and confirmed bookings block availability.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Booking struct {
	ID                string         `db:"id"`
	PropertyID        string         `db:"property_id"`
	RoomTypeID        string         `db:"room_type_id"`
	CheckIn           time.Time      `db:"check_in"`
	CheckOut          time.Time      `db:"check_out"`
	TotalGuests       int            `db:"total_guests"`
	GuestName         string         `db:"guest_name"`
	GuestEmail        string         `db:"guest_email"`
	GuestPhone        string         `db:"guest_phone"`
	AddonIDs          pq.StringArray `db:"addon_ids"`
	TotalAmount       float64        `db:"total_amount"`
	Currency          string         `db:"currency"`
	Status            string         `db:"status"`
	CheckoutSessionID *string        `db:"checkout_session_id"`
	model.Metadata
}

// Nights is the number of nights between check-in and check-out. Both dates
// are date-only values, so the division is exact.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn) / (24 * time.Hour))
}

// ActiveStatuses are the booking statuses that count against inventory.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}
