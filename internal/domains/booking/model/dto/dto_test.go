package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostconnect/internal/domains/booking/model"
	"hostconnect/internal/domains/booking/model/dto"
	"hostconnect/shared/failure"
)

func TestParseStayRange(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantNights int
		wantErr    bool
	}{
		{
			name:       "one night",
			checkIn:    "2026-09-10",
			checkOut:   "2026-09-11",
			wantNights: 1,
		},
		{
			name:       "multi night",
			checkIn:    "2026-09-10",
			checkOut:   "2026-09-13",
			wantNights: 3,
		},
		{
			name:       "across month boundary",
			checkIn:    "2026-09-29",
			checkOut:   "2026-10-02",
			wantNights: 3,
		},
		{
			name:     "check_out equals check_in",
			checkIn:  "2026-09-10",
			checkOut: "2026-09-10",
			wantErr:  true,
		},
		{
			name:     "check_out before check_in",
			checkIn:  "2026-09-13",
			checkOut: "2026-09-10",
			wantErr:  true,
		},
		{
			name:     "malformed check_in",
			checkIn:  "10/09/2026",
			checkOut: "2026-09-13",
			wantErr:  true,
		},
		{
			name:     "malformed check_out",
			checkIn:  "2026-09-10",
			checkOut: "September 13",
			wantErr:  true,
		},
		{
			name:     "empty dates",
			checkIn:  "",
			checkOut: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := dto.ParseStayRange(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNights, stay.Nights())
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	stay, err := dto.ParseStayRange("2026-09-10", "2026-09-12")
	assert.NoError(t, err)

	req := dto.CreateBookingRequest{
		PropertyID:  "property-1",
		RoomTypeID:  "roomtype-1",
		CheckIn:     "2026-09-10",
		CheckOut:    "2026-09-12",
		TotalGuests: 2,
		GuestName:   "Jordan Guest",
		GuestEmail:  "jordan@example.com",
		AddonIDs:    []string{"addon-spa"},
	}

	booking := req.ToModel(stay, 475.00, "usd")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, 475.00, booking.TotalAmount)
	assert.Equal(t, "usd", booking.Currency)
	assert.Equal(t, 2, booking.Nights())
	assert.Len(t, booking.AddonIDs, 1)
	assert.Nil(t, booking.CheckoutSessionID)
}

func TestBookingResponse_FromModel(t *testing.T) {
	stay, err := dto.ParseStayRange("2026-09-10", "2026-09-13")
	assert.NoError(t, err)

	sessionID := "cs_123"
	booking := model.Booking{
		ID:                "booking-1",
		PropertyID:        "property-1",
		RoomTypeID:        "roomtype-1",
		CheckIn:           stay.CheckIn,
		CheckOut:          stay.CheckOut,
		TotalGuests:       2,
		GuestName:         "Jordan Guest",
		GuestEmail:        "jordan@example.com",
		TotalAmount:       600.00,
		Currency:          "usd",
		Status:            model.StatusConfirmed,
		CheckoutSessionID: &sessionID,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "2026-09-10", res.CheckIn)
	assert.Equal(t, "2026-09-13", res.CheckOut)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	assert.Equal(t, &sessionID, res.CheckoutSessionID)
}

func TestNewBookingConfirmedEvent(t *testing.T) {
	stay, err := dto.ParseStayRange("2026-09-10", "2026-09-13")
	assert.NoError(t, err)

	booking := model.Booking{
		ID:          "booking-1",
		PropertyID:  "property-1",
		RoomTypeID:  "roomtype-1",
		CheckIn:     stay.CheckIn,
		CheckOut:    stay.CheckOut,
		GuestEmail:  "jordan@example.com",
		TotalAmount: 600.00,
		Currency:    "usd",
	}

	event := dto.NewBookingConfirmedEvent(booking)

	assert.Equal(t, "booking-1", event.BookingID)
	assert.Equal(t, "2026-09-10", event.CheckIn)
	assert.Equal(t, "2026-09-13", event.CheckOut)
	assert.False(t, event.ConfirmedAt.IsZero())
}
