package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostconnect/config"
	kafkaMocks "hostconnect/infras/kafka/mocks"
	"hostconnect/infras/otel/mocks"
	"hostconnect/infras/payment"
	paymentMocks "hostconnect/infras/payment/mocks"
	addonMocks "hostconnect/internal/domains/addon/mocks"
	addonModel "hostconnect/internal/domains/addon/model"
	bookingMocks "hostconnect/internal/domains/booking/mocks"
	"hostconnect/internal/domains/booking/model"
	"hostconnect/internal/domains/booking/model/dto"
	"hostconnect/internal/domains/booking/repository"
	"hostconnect/internal/domains/booking/service"
	propertyMocks "hostconnect/internal/domains/property/mocks"
	propertyModel "hostconnect/internal/domains/property/model"
	roomMocks "hostconnect/internal/domains/room/mocks"
	roomtypeMocks "hostconnect/internal/domains/roomtype/mocks"
	roomtypeModel "hostconnect/internal/domains/roomtype/model"
	cacheMocks "hostconnect/shared/cache/mocks"
	"hostconnect/shared/constant"
	"hostconnect/shared/failure"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	roomType *roomtypeMocks.MockRoomType
	room     *roomMocks.MockRoom
	addon    *addonMocks.MockAddon
	property *propertyMocks.MockProperty
	cache    *cacheMocks.MockRedisCache
	gateway  *paymentMocks.MockGateway
	broker   *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomType: roomtypeMocks.NewMockRoomType(ctrl),
		room:     roomMocks.NewMockRoom(ctrl),
		addon:    addonMocks.NewMockAddon(ctrl),
		property: propertyMocks.NewMockProperty(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		gateway:  paymentMocks.NewMockGateway(ctrl),
		broker:   kafkaMocks.NewMockClient(ctrl),
	}

	// Cache invalidation and event publishing run on background goroutines,
	// so their calls may or may not land before the test finishes.
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.broker.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.DefaultCurrency = "usd"
	cfg.Booking.PendingTTLMinutes = 30
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"

	svc := service.New(m.repo, m.roomType, m.room, m.addon, m.property, cfg, m.cache, mocks.NewOtel(), m.gateway, m.broker)

	return svc, m
}

func activeRoomType() roomtypeModel.RoomType {
	return roomtypeModel.RoomType{
		ID:         "roomtype-1",
		PropertyID: "property-1",
		Name:       "Deluxe",
		Capacity:   2,
		BasePrice:  200.00,
		Status:     roomtypeModel.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	baseReq := dto.AvailabilityRequest{
		PropertyID:  "property-1",
		RoomTypeID:  "roomtype-1",
		CheckIn:     "2026-09-10",
		CheckOut:    "2026-09-12",
		TotalGuests: 2,
	}

	tests := []struct {
		name      string
		req       dto.AvailabilityRequest
		setupMock func()
		want      dto.AvailabilityResponse
		wantErr   bool
		wantCode  int
	}{
		{
			name: "rooms remain",
			req:  baseReq,
			setupMock: func() {
				m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
				m.room.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
				m.repo.EXPECT().CountOverlapping(gomock.Any(), "roomtype-1", gomock.Any(), gomock.Any()).Return(3, nil)
			},
			want: dto.AvailabilityResponse{Available: true, RemainingRooms: 2},
		},
		{
			name: "fully booked",
			req:  baseReq,
			setupMock: func() {
				m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
				m.room.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				m.repo.EXPECT().CountOverlapping(gomock.Any(), "roomtype-1", gomock.Any(), gomock.Any()).Return(2, nil)
			},
			want: dto.AvailabilityResponse{Available: false, RemainingRooms: 0, Message: "no rooms available for the selected dates"},
		},
		{
			name: "inventory shrank below active bookings",
			req:  baseReq,
			setupMock: func() {
				m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
				m.room.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				m.repo.EXPECT().CountOverlapping(gomock.Any(), "roomtype-1", gomock.Any(), gomock.Any()).Return(2, nil)
			},
			want: dto.AvailabilityResponse{Available: false, RemainingRooms: -1, Message: "no rooms available for the selected dates"},
		},
		{
			name: "party exceeds capacity short-circuits inventory",
			req: dto.AvailabilityRequest{
				PropertyID:  "property-1",
				RoomTypeID:  "roomtype-1",
				CheckIn:     "2026-09-10",
				CheckOut:    "2026-09-12",
				TotalGuests: 3,
			},
			setupMock: func() {
				m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
			},
			want: dto.AvailabilityResponse{Available: false, Message: "party size exceeds room capacity"},
		},
		{
			name: "room type belongs to another property",
			req: dto.AvailabilityRequest{
				PropertyID:  "property-2",
				RoomTypeID:  "roomtype-1",
				CheckIn:     "2026-09-10",
				CheckOut:    "2026-09-12",
				TotalGuests: 2,
			},
			setupMock: func() {
				m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "check_out not after check_in",
			req: dto.AvailabilityRequest{
				PropertyID:  "property-1",
				RoomTypeID:  "roomtype-1",
				CheckIn:     "2026-09-10",
				CheckOut:    "2026-09-10",
				TotalGuests: 2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "malformed date",
			req: dto.AvailabilityRequest{
				PropertyID:  "property-1",
				RoomTypeID:  "roomtype-1",
				CheckIn:     "10-09-2026",
				CheckOut:    "2026-09-12",
				TotalGuests: 2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckAvailability(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestBookingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	spaAddon := addonModel.AddonService{
		ID:         "addon-spa",
		PropertyID: "property-1",
		Name:       "Spa Access",
		Price:      50.00,
		Status:     addonModel.StatusActive,
	}
	breakfastAddon := addonModel.AddonService{
		ID:         "addon-breakfast",
		PropertyID: "property-1",
		Name:       "Breakfast",
		Price:      25.00,
		Status:     addonModel.StatusActive,
	}

	t.Run("room charge is base price times nights", func(t *testing.T) {
		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)

		res, err := svc.Quote(context.Background(), dto.QuoteRequest{
			PropertyID:  "property-1",
			RoomTypeID:  "roomtype-1",
			CheckIn:     "2026-09-10",
			CheckOut:    "2026-09-13",
			TotalGuests: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, 200.00, res.PricePerNight)
		assert.Equal(t, 600.00, res.RoomSubtotal)
		assert.Equal(t, 600.00, res.TotalAmount)
		assert.Equal(t, "usd", res.Currency)
		assert.Empty(t, res.Addons)
	})

	t.Run("addons are charged once per booking", func(t *testing.T) {
		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
		m.addon.EXPECT().Get(gomock.Any(), gomock.Any()).Return(spaAddon, nil)
		m.addon.EXPECT().Get(gomock.Any(), gomock.Any()).Return(breakfastAddon, nil)

		res, err := svc.Quote(context.Background(), dto.QuoteRequest{
			PropertyID:  "property-1",
			RoomTypeID:  "roomtype-1",
			CheckIn:     "2026-09-10",
			CheckOut:    "2026-09-13",
			TotalGuests: 2,
			AddonIDs:    []string{"addon-spa", "addon-breakfast"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 75.00, res.AddonTotal)
		assert.Equal(t, 675.00, res.TotalAmount)
		assert.Len(t, res.Addons, 2)
	})

	t.Run("inactive addon is rejected", func(t *testing.T) {
		inactive := spaAddon
		inactive.Status = addonModel.StatusInactive

		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
		m.addon.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			PropertyID:  "property-1",
			RoomTypeID:  "roomtype-1",
			CheckIn:     "2026-09-10",
			CheckOut:    "2026-09-13",
			TotalGuests: 2,
			AddonIDs:    []string{"addon-spa"},
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("addon of another property is rejected", func(t *testing.T) {
		foreign := spaAddon
		foreign.PropertyID = "property-2"

		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
		m.addon.EXPECT().Get(gomock.Any(), gomock.Any()).Return(foreign, nil)

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			PropertyID:  "property-1",
			RoomTypeID:  "roomtype-1",
			CheckIn:     "2026-09-10",
			CheckOut:    "2026-09-13",
			TotalGuests: 2,
			AddonIDs:    []string{"addon-spa"},
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("room type of another property is not found", func(t *testing.T) {
		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			PropertyID:  "property-2",
			RoomTypeID:  "roomtype-1",
			CheckIn:     "2026-09-10",
			CheckOut:    "2026-09-13",
			TotalGuests: 2,
		})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("party larger than capacity is rejected", func(t *testing.T) {
		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			PropertyID:  "property-1",
			RoomTypeID:  "roomtype-1",
			CheckIn:     "2026-09-10",
			CheckOut:    "2026-09-13",
			TotalGuests: 5,
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("inactive room type is rejected", func(t *testing.T) {
		closed := activeRoomType()
		closed.Status = roomtypeModel.StatusInactive

		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			PropertyID:  "property-1",
			RoomTypeID:  "roomtype-1",
			CheckIn:     "2026-09-10",
			CheckOut:    "2026-09-13",
			TotalGuests: 2,
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	baseReq := dto.CreateBookingRequest{
		PropertyID:  "property-1",
		RoomTypeID:  "roomtype-1",
		CheckIn:     "2026-09-10",
		CheckOut:    "2026-09-13",
		TotalGuests: 2,
		GuestName:   "Jordan Guest",
		GuestEmail:  "jordan@example.com",
	}

	t.Run("successful reservation", func(t *testing.T) {
		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)

		var reserved model.Booking

		m.repo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				reserved = booking

				return nil
			})

		res, err := svc.Create(context.Background(), baseReq)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, 600.00, res.TotalAmount)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, constant.ActorGuest, reserved.CreatedBy)
		assert.NotEmpty(t, reserved.ID)
	})

	t.Run("no rooms left maps to conflict", func(t *testing.T) {
		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
		m.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(repository.ErrNoRoomsAvailable)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("party exceeds capacity", func(t *testing.T) {
		req := baseReq
		req.TotalGuests = 5

		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("room type of another property", func(t *testing.T) {
		req := baseReq
		req.PropertyID = "property-2"

		m.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func pendingBooking() model.Booking {
	checkIn, _ := dto.ParseStayRange("2026-09-10", "2026-09-13")

	return model.Booking{
		ID:          "booking-1",
		PropertyID:  "property-1",
		RoomTypeID:  "roomtype-1",
		CheckIn:     checkIn.CheckIn,
		CheckOut:    checkIn.CheckOut,
		TotalGuests: 2,
		GuestName:   "Jordan Guest",
		GuestEmail:  "jordan@example.com",
		TotalAmount: 150.5,
		Currency:    "usd",
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestBookingService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	req := dto.CheckoutRequest{
		BookingID:  "booking-1",
		SuccessURL: "https://example.com/success",
		CancelURL:  "https://example.com/cancel",
	}

	property := propertyModel.Property{
		ID:   "property-1",
		Name: "Seaside Hotel",
	}

	t.Run("opens session with rounded minor units", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		m.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(property, nil)

		m.gateway.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in payment.CreateSessionInput) (payment.CheckoutSession, error) {
				assert.Equal(t, int64(15050), in.AmountMinorUnits)
				assert.Equal(t, "usd", in.Currency)
				assert.Equal(t, "booking-1", in.Metadata["booking_id"])
				assert.Equal(t, "property-1", in.Metadata["property_id"])

				return payment.CheckoutSession{ID: "cs_123", URL: "https://pay.example.com/cs_123"}, nil
			})

		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Checkout(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "cs_123", res.SessionID)
		assert.Equal(t, "https://pay.example.com/cs_123", res.CheckoutURL)
	})

	t.Run("booking is not pending", func(t *testing.T) {
		confirmed := pendingBooking()
		confirmed.Status = model.StatusConfirmed

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)

		_, err := svc.Checkout(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("provider not configured", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		m.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(property, nil)
		m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(payment.CheckoutSession{}, payment.ErrNotConfigured)

		_, err := svc.Checkout(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("provider rejects session", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		m.property.EXPECT().Get(gomock.Any(), gomock.Any()).Return(property, nil)
		m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(payment.CheckoutSession{}, errors.New("provider down"))

		_, err := svc.Checkout(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 502, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Checkout(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_VerifyPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	req := dto.VerifyPaymentRequest{
		BookingID: "booking-1",
		SessionID: "cs_123",
	}

	withSession := func(status string) model.Booking {
		booking := pendingBooking()
		booking.Status = status
		booking.CheckoutSessionID = stringPtr("cs_123")

		return booking
	}

	t.Run("paid session confirms booking", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withSession(model.StatusPending), nil)
		m.gateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").Return(payment.CheckoutSession{
			ID:            "cs_123",
			PaymentStatus: payment.PaymentStatusPaid,
			Metadata:      map[string]string{"booking_id": "booking-1"},
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.VerifyPayment(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		if assert.NotNil(t, res.Booking) {
			assert.Equal(t, model.StatusConfirmed, res.Booking.Status)
		}
	})

	t.Run("session id does not match", func(t *testing.T) {
		booking := withSession(model.StatusPending)
		booking.CheckoutSessionID = stringPtr("cs_other")

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		res, err := svc.VerifyPayment(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "checkout session does not match booking", res.Message)
	})

	t.Run("no session stored", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)

		res, err := svc.VerifyPayment(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("re-verifying a confirmed booking is a no-op success", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withSession(model.StatusConfirmed), nil)

		res, err := svc.VerifyPayment(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "payment already verified", res.Message)
	})

	t.Run("cancelled booking cannot be verified", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withSession(model.StatusCancelled), nil)

		res, err := svc.VerifyPayment(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "booking is not awaiting payment", res.Message)
	})

	t.Run("session metadata names another booking", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withSession(model.StatusPending), nil)
		m.gateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").Return(payment.CheckoutSession{
			ID:            "cs_123",
			PaymentStatus: payment.PaymentStatusPaid,
			Metadata:      map[string]string{"booking_id": "booking-2"},
		}, nil)

		res, err := svc.VerifyPayment(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "checkout session does not match booking", res.Message)
	})

	t.Run("unpaid session leaves booking untouched", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withSession(model.StatusPending), nil)
		m.gateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").Return(payment.CheckoutSession{
			ID:            "cs_123",
			PaymentStatus: "unpaid",
			Metadata:      map[string]string{"booking_id": "booking-1"},
		}, nil)

		res, err := svc.VerifyPayment(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "payment has not been completed", res.Message)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("provider unavailable", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withSession(model.StatusPending), nil)
		m.gateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").Return(payment.CheckoutSession{}, errors.New("provider down"))

		_, err := svc.VerifyPayment(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 502, failure.GetCode(err))
	})
}

func TestBookingService_SweepStalePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	t.Run("stale bookings are cancelled", func(t *testing.T) {
		m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		count, err := svc.SweepStalePending(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("nothing stale skips the update", func(t *testing.T) {
		m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		count, err := svc.SweepStalePending(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	t.Run("pending booking is cancelled", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Cancel(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("completed booking can no longer be cancelled", func(t *testing.T) {
		completed := pendingBooking()
		completed.Status = model.StatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completed, nil)

		err := svc.Cancel(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)

		res, err := svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "2026-09-10", res.CheckIn)
		assert.Equal(t, "2026-09-13", res.CheckOut)
		assert.Equal(t, 3, res.Nights)
	})

	t.Run("missing booking", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func stringPtr(s string) *string {
	return &s
}
