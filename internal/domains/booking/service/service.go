package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"hostconnect/config"
	"hostconnect/infras/kafka"
	"hostconnect/infras/otel"
	"hostconnect/infras/payment"
	addonModel "hostconnect/internal/domains/addon/model"
	addonRepo "hostconnect/internal/domains/addon/repository"
	"hostconnect/internal/domains/booking/model"
	"hostconnect/internal/domains/booking/model/dto"
	"hostconnect/internal/domains/booking/repository"
	propertyModel "hostconnect/internal/domains/property/model"
	propertyRepo "hostconnect/internal/domains/property/repository"
	roomModel "hostconnect/internal/domains/room/model"
	roomRepo "hostconnect/internal/domains/room/repository"
	roomtypeModel "hostconnect/internal/domains/roomtype/model"
	roomtypeRepo "hostconnect/internal/domains/roomtype/repository"
	"hostconnect/shared"
	"hostconnect/shared/cache"
	"hostconnect/shared/constant"
	gDto "hostconnect/shared/dto"
	"hostconnect/shared/failure"
	"hostconnect/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	metadataKeyBookingID  = "booking_id"
	metadataKeyPropertyID = "property_id"
)

type Booking interface {
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Checkout(ctx context.Context, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
	VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (dto.VerifyPaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Invoice(ctx context.Context, id string) ([]byte, error)
	SweepStalePending(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomTypeRepo roomtypeRepo.RoomType
	roomRepo     roomRepo.Room
	addonRepo    addonRepo.Addon
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	gateway      payment.Gateway
	broker       kafka.Client
}

func New(
	repo repository.Booking,
	roomTypeRepo roomtypeRepo.RoomType,
	roomRepo roomRepo.Room,
	addonRepo addonRepo.Addon,
	propertyRepo propertyRepo.Property,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	gateway payment.Gateway,
	broker kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		roomRepo:     roomRepo,
		addonRepo:    addonRepo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		gateway:      gateway,
		broker:       broker,
	}
}

// CheckAvailability reports whether at least one room of the requested type
// is free for every night of the stay. A party larger than the room capacity
// short-circuits before any inventory query. RemainingRooms is reported as
// counted, it can go negative when inventory shrank after bookings were made.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := dto.ParseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	roomType, err := s.getActiveRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	if roomType.PropertyID != req.PropertyID {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if req.TotalGuests > roomType.Capacity {
		res.Message = "party size exceeds room capacity"

		return res, nil
	}

	totalRooms, err := s.countSellableRooms(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	overlapping, err := s.repo.CountOverlapping(ctx, req.RoomTypeID, stay.CheckIn, stay.CheckOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return res, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	res.RemainingRooms = totalRooms - overlapping
	res.Available = res.RemainingRooms > 0

	if !res.Available {
		res.Message = "no rooms available for the selected dates"
	}

	return res, nil
}

// Quote prices a stay without touching inventory. The room charge is
// base price times nights, each addon is charged once per booking.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := dto.ParseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	roomType, err := s.getActiveRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	if roomType.PropertyID != req.PropertyID {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if req.TotalGuests > roomType.Capacity {
		return res, failure.BadRequestFromString("total_guests exceeds room capacity") // nolint:wrapcheck
	}

	return s.quote(ctx, roomType, stay, req.AddonIDs)
}

func (s *serviceImpl) quote(ctx context.Context, roomType roomtypeModel.RoomType, stay dto.StayRange, addonIDs []string) (res dto.QuoteResponse, err error) {
	res.Nights = stay.Nights()
	res.PricePerNight = roomType.BasePrice
	res.RoomSubtotal = roomType.BasePrice * float64(res.Nights)
	res.Addons = []dto.QuoteAddon{}
	res.Currency = s.cfg.Booking.DefaultCurrency

	for _, addonID := range addonIDs {
		addon, err := s.addonRepo.Get(ctx, shared.FilterByID(addonID, addonModel.FieldID, addonModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("addonID", addonID).Msg("failed to get addon service")

			return res, fmt.Errorf("failed to get addon service: %w", err)
		}

		if addon.ID == constant.Empty || addon.Status != addonModel.StatusActive || addon.PropertyID != roomType.PropertyID {
			return res, failure.BadRequestFromString("addon service " + addonID + " is not available") // nolint:wrapcheck
		}

		res.Addons = append(res.Addons, dto.QuoteAddon{ID: addon.ID, Name: addon.Name, Price: addon.Price})
		res.AddonTotal += addon.Price
	}

	res.TotalAmount = res.RoomSubtotal + res.AddonTotal

	return res, nil
}

// Create prices the stay and reserves a room in one transaction. The
// reservation re-checks availability under a per-room-type lock, so passing
// an earlier availability check guarantees nothing here.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := dto.ParseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	roomType, err := s.getActiveRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	if roomType.PropertyID != req.PropertyID {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if req.TotalGuests > roomType.Capacity {
		return res, failure.BadRequestFromString("total_guests exceeds room capacity") // nolint:wrapcheck
	}

	quote, err := s.quote(ctx, roomType, stay, req.AddonIDs)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(stay, quote.TotalAmount, quote.Currency)

	if err = s.repo.Reserve(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrNoRoomsAvailable) {
			return res, failure.Conflict("no rooms available for the requested dates") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to reserve booking")

		return res, fmt.Errorf("failed to reserve booking: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(booking)

	return res, nil
}

// Checkout opens a hosted payment session for a pending booking and stores
// the session id so verification can match it later. Provider errors are
// logged in full but never echoed to the caller.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusPending {
		return res, failure.BadRequestFromString("booking is not awaiting payment") // nolint:wrapcheck
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for checkout")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CreateSessionInput{
		AmountMinorUnits: toMinorUnits(booking.TotalAmount),
		Currency:         booking.Currency,
		ProductName:      fmt.Sprintf("Booking at %s", property.Name),
		ProductDescription: fmt.Sprintf(
			"%s to %s, %d nights",
			booking.CheckIn.Format(constant.DateOnlyLayout),
			booking.CheckOut.Format(constant.DateOnlyLayout),
			booking.Nights(),
		),
		CustomerEmail: booking.GuestEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata: map[string]string{
			metadataKeyBookingID:  booking.ID,
			metadataKeyPropertyID: booking.PropertyID,
		},
	})
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return res, failure.Unconfigured("payment provider is not configured") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("bookingID", booking.ID).Msg("payment provider rejected checkout session")

		return res, failure.Upstream("failed to create checkout session") // nolint:wrapcheck
	}

	sessionReq := dto.UpdateSessionRequest{CheckoutSessionID: session.ID}
	updatedFields := shared.TransformFields(sessionReq, constant.ActorGuest)

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to store checkout session id")

		return res, fmt.Errorf("failed to store checkout session id: %w", err)
	}

	s.invalidate(ctx, booking.ID)

	res.SessionID = session.ID
	res.CheckoutURL = session.URL

	return res, nil
}

// VerifyPayment confirms a booking once its checkout session is paid and the
// session provably belongs to the booking. A mismatch or an unpaid session
// leaves the booking untouched and is reported as a business negative, not
// an error. Re-verifying a confirmed booking is a no-op success.
func (s *serviceImpl) VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.CheckoutSessionID == nil || *booking.CheckoutSessionID != req.SessionID {
		res.Message = "checkout session does not match booking"

		return res, nil
	}

	if booking.Status == model.StatusConfirmed {
		res.Success = true
		res.Message = "payment already verified"
		res.Status = booking.Status
		res.Booking = bookingPayload(booking)

		return res, nil
	}

	if booking.Status != model.StatusPending {
		res.Message = "booking is not awaiting payment"
		res.Status = booking.Status

		return res, nil
	}

	session, err := s.gateway.GetCheckoutSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return res, failure.Unconfigured("payment provider is not configured") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("failed to retrieve checkout session")

		return res, failure.Upstream("failed to verify payment") // nolint:wrapcheck
	}

	if session.Metadata[metadataKeyBookingID] != booking.ID {
		res.Message = "checkout session does not match booking"

		return res, nil
	}

	if session.PaymentStatus != payment.PaymentStatusPaid {
		res.Message = "payment has not been completed"
		res.Status = booking.Status

		return res, nil
	}

	statusReq := dto.UpdateBookingRequest{Status: model.StatusConfirmed}
	updatedFields := shared.TransformFields(statusReq, constant.ActorSystem)

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to confirm booking")

		return res, fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.invalidate(ctx, booking.ID)
	s.publishConfirmed(ctx, booking)

	booking.Status = model.StatusConfirmed

	res.Success = true
	res.Message = "payment verified"
	res.Status = model.StatusConfirmed
	res.Booking = bookingPayload(booking)

	return res, nil
}

func bookingPayload(booking model.Booking) *dto.BookingResponse {
	var res dto.BookingResponse
	res.FromModel(booking)

	return &res
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusCompleted || booking.Status == model.StatusCancelled {
		return failure.BadRequestFromString("booking can no longer be cancelled") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	statusReq := dto.UpdateBookingRequest{Status: model.StatusCancelled}
	updatedFields := shared.TransformFields(statusReq, user)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// SweepStalePending cancels pending bookings older than the configured TTL,
// releasing the inventory they hold. Returns how many were cancelled.
func (s *serviceImpl) SweepStalePending(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepStalePending")
	defer scope.End()
	defer scope.TraceIfError(err)

	cutoff := timezone.Now().Add(-time.Duration(s.cfg.Booking.PendingTTLMinutes) * time.Minute)
	filter := staleFilter(cutoff)

	count, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stale pending bookings")

		return 0, fmt.Errorf("failed to count stale pending bookings: %w", err)
	}

	if count == 0 {
		return 0, nil
	}

	statusReq := dto.UpdateBookingRequest{Status: model.StatusCancelled}
	updatedFields := shared.TransformFields(statusReq, constant.ActorSystem)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel stale pending bookings")

		return 0, fmt.Errorf("failed to cancel stale pending bookings: %w", err)
	}

	s.invalidateLists(ctx)

	log.Info().Int("count", count).Msg("swept stale pending bookings")

	return count, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getActiveRoomType(ctx context.Context, id string) (roomtypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(id, roomtypeModel.FieldID, roomtypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if roomType.Status != roomtypeModel.StatusActive {
		return roomType, failure.BadRequestFromString("room type is not open for booking") // nolint:wrapcheck
	}

	return roomType, nil
}

func (s *serviceImpl) countSellableRooms(ctx context.Context, roomTypeID string) (int, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldRoomTypeID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomTypeID,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    roomModel.StatusAvailable,
				Table:    roomModel.TableName,
			},
		},
	}

	count, err := s.roomRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return count, nil
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking) {
	event := dto.NewBookingConfirmedEvent(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: booking.ID, Value: event}
		if err := s.broker.SendMessages(c, s.cfg.Kafka.Topics.BookingConfirmed, message); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func staleFilter(cutoff time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "stale_cutoff",
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorLess,
				Value:    cutoff,
				Table:    model.TableName,
			},
		},
	}
}

// toMinorUnits converts a decimal amount to integer minor units, rounding to
// the nearest cent so 150.5 becomes 15050 rather than 15049.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
