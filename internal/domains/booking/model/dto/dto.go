package dto

import (
	"time"

	"github.com/google/uuid"

	"hostconnect/internal/domains/booking/model"
	"hostconnect/shared"
	"hostconnect/shared/constant"
	gDto "hostconnect/shared/dto"
	"hostconnect/shared/failure"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

// StayRange is the parsed half-open [check-in, check-out) interval shared by
// the availability, quote and create requests.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (s *StayRange) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn) / (24 * time.Hour))
}

// ParseStayRange validates the date strings and the ordering of the stay.
func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	var stay StayRange

	ci, err := time.Parse(constant.DateOnlyLayout, checkIn)
	if err != nil {
		return stay, failure.BadRequestFromString("check_in must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	co, err := time.Parse(constant.DateOnlyLayout, checkOut)
	if err != nil {
		return stay, failure.BadRequestFromString("check_out must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !co.After(ci) {
		return stay, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	stay.CheckIn = ci
	stay.CheckOut = co

	return stay, nil
}

type AvailabilityRequest struct {
	PropertyID  string `json:"property_id"  validate:"required"`
	RoomTypeID  string `json:"room_type_id" validate:"required"`
	CheckIn     string `json:"check_in"     validate:"required"`
	CheckOut    string `json:"check_out"    validate:"required"`
	TotalGuests int    `json:"total_guests" validate:"required,min=1"`
}

type AvailabilityResponse struct {
	Available      bool   `json:"available"`
	RemainingRooms int    `json:"remaining_available_rooms"`
	Message        string `json:"message,omitempty"`
}

type QuoteRequest struct {
	PropertyID  string   `json:"property_id"  validate:"required"`
	RoomTypeID  string   `json:"room_type_id" validate:"required"`
	CheckIn     string   `json:"check_in"     validate:"required"`
	CheckOut    string   `json:"check_out"    validate:"required"`
	TotalGuests int      `json:"total_guests" validate:"required,min=1"`
	AddonIDs    []string `json:"addon_ids"    validate:"omitempty,dive,required"`
}

type QuoteAddon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type QuoteResponse struct {
	Nights        int          `json:"number_of_nights"`
	PricePerNight float64      `json:"price_per_night"`
	RoomSubtotal  float64      `json:"room_subtotal"`
	Addons        []QuoteAddon `json:"addons"`
	AddonTotal    float64      `json:"addon_total"`
	TotalAmount   float64      `json:"total_amount"`
	Currency      string       `json:"currency"`
}

type CreateBookingRequest struct {
	PropertyID  string   `json:"property_id"  validate:"required"`
	RoomTypeID  string   `json:"room_type_id" validate:"required"`
	CheckIn     string   `json:"check_in"     validate:"required"`
	CheckOut    string   `json:"check_out"    validate:"required"`
	TotalGuests int      `json:"total_guests" validate:"required,min=1"`
	GuestName   string   `json:"guest_name"   validate:"required,max=100"`
	GuestEmail  string   `json:"guest_email"  validate:"required,email"`
	GuestPhone  string   `json:"guest_phone"  validate:"omitempty,max=30"`
	AddonIDs    []string `json:"addon_ids"    validate:"omitempty,dive,required"`
}

func (c *CreateBookingRequest) ToModel(stay StayRange, totalAmount float64, currency string) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		PropertyID:  c.PropertyID,
		RoomTypeID:  c.RoomTypeID,
		CheckIn:     stay.CheckIn,
		CheckOut:    stay.CheckOut,
		TotalGuests: c.TotalGuests,
		GuestName:   c.GuestName,
		GuestEmail:  c.GuestEmail,
		GuestPhone:  c.GuestPhone,
		AddonIDs:    c.AddonIDs,
		TotalAmount: totalAmount,
		Currency:    currency,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ActorGuest,
			ModifiedBy: constant.ActorGuest,
		},
	}
}

type UpdateBookingRequest struct {
	Status string `db:"status" json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

type UpdateSessionRequest struct {
	CheckoutSessionID string `db:"checkout_session_id" json:"checkout_session_id" validate:"required"`
}

type BookingResponse struct {
	ID                string   `json:"id"`
	PropertyID        string   `json:"property_id"`
	RoomTypeID        string   `json:"room_type_id"`
	CheckIn           string   `json:"check_in"`
	CheckOut          string   `json:"check_out"`
	Nights            int      `json:"nights"`
	TotalGuests       int      `json:"total_guests"`
	GuestName         string   `json:"guest_name"`
	GuestEmail        string   `json:"guest_email"`
	GuestPhone        string   `json:"guest_phone,omitempty"`
	AddonIDs          []string `json:"addon_ids,omitempty"`
	TotalAmount       float64  `json:"total_amount"`
	Currency          string   `json:"currency"`
	Status            string   `json:"status"`
	CheckoutSessionID *string  `json:"checkout_session_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.RoomTypeID = mod.RoomTypeID
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyLayout)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyLayout)
	r.Nights = mod.Nights()
	r.TotalGuests = mod.TotalGuests
	r.GuestName = mod.GuestName
	r.GuestEmail = mod.GuestEmail
	r.GuestPhone = mod.GuestPhone
	r.AddonIDs = mod.AddonIDs
	r.TotalAmount = mod.TotalAmount
	r.Currency = mod.Currency
	r.Status = mod.Status
	r.CheckoutSessionID = mod.CheckoutSessionID
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CheckoutRequest struct {
	BookingID  string `json:"booking_id"  validate:"required"`
	SuccessURL string `json:"success_url" validate:"required,url"`
	CancelURL  string `json:"cancel_url"  validate:"required,url"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"url"`
}

type VerifyPaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

type VerifyPaymentResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Status  string           `json:"status,omitempty"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

// BookingConfirmedEvent is published once a payment has been verified.
type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	PropertyID  string    `json:"property_id"`
	RoomTypeID  string    `json:"room_type_id"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	GuestEmail  string    `json:"guest_email"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

func NewBookingConfirmedEvent(mod model.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:   mod.ID,
		PropertyID:  mod.PropertyID,
		RoomTypeID:  mod.RoomTypeID,
		CheckIn:     mod.CheckIn.Format(constant.DateOnlyLayout),
		CheckOut:    mod.CheckOut.Format(constant.DateOnlyLayout),
		GuestEmail:  mod.GuestEmail,
		TotalAmount: mod.TotalAmount,
		Currency:    mod.Currency,
		ConfirmedAt: timezone.Now(),
	}
}
