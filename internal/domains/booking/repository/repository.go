package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hostconnect/infras/otel"
	"hostconnect/infras/postgres"
	"hostconnect/internal/domains/booking/model"
	"hostconnect/shared/constant"
	gDto "hostconnect/shared/dto"
	gRepo "hostconnect/shared/repository"
)

// ErrNoRoomsAvailable is returned by Reserve when every room of the requested
// type is already taken for some night of the stay.
var ErrNoRoomsAvailable = errors.New("no rooms available for the requested dates")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Reserve(ctx context.Context, booking model.Booking) error
	CountOverlapping(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const (
	advisoryLockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

	countRoomsQuery = `SELECT COUNT(id) FROM rooms WHERE room_type_id = $1 AND status = 'available'`

	countOverlappingQuery = `SELECT COUNT(id) FROM bookings
		WHERE room_type_id = $1
		AND status IN ('pending', 'confirmed')
		AND check_in < $3
		AND check_out > $2`
)

// Reserve inserts a pending booking while holding a transaction-scoped
// advisory lock on the room type, so two concurrent requests for the last
// room serialize and the second one sees the first one's insert. The
// overlap test treats the stay as a half-open interval, checkout day and
// check-in day of adjacent stays do not collide.
func (repo *repositoryImpl) Reserve(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback reservation transaction")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, advisoryLockQuery, booking.RoomTypeID); err != nil {
		return fmt.Errorf("failed to acquire reservation lock: %w", err)
	}

	var totalRooms int
	if err = tx.GetContext(ctx, &totalRooms, countRoomsQuery, booking.RoomTypeID); err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}

	var overlapping int

	err = tx.GetContext(ctx, &overlapping, countOverlappingQuery, booking.RoomTypeID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	if overlapping >= totalRooms {
		err = ErrNoRoomsAvailable

		return err
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reservation transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.GetContext(ctx, &count, countOverlappingQuery, roomTypeID, checkIn, checkOut)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}
