package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	otelMocks "hostconnect/infras/otel/mocks"
	"hostconnect/infras/postgres"
	"hostconnect/internal/domains/booking/model"
	"hostconnect/internal/domains/booking/repository"
)

const (
	lockQueryPattern  = `SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`
	roomsQueryPattern = `SELECT COUNT\(id\) FROM rooms WHERE room_type_id = \$1 AND status = 'available'`

	// The strict inequalities are the half-open stay interval: a stay ending
	// on a given day never collides with one starting that same day.
	overlapQueryPattern = `SELECT COUNT\(id\) FROM bookings\s+WHERE room_type_id = \$1\s+AND status IN \('pending', 'confirmed'\)\s+AND check_in < \$3\s+AND check_out > \$2`
)

func newBookingRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, otelMocks.NewOtel()), mock
}

func reservedBooking() model.Booking {
	return model.Booking{
		ID:          "booking-1",
		PropertyID:  "property-1",
		RoomTypeID:  "roomtype-1",
		CheckIn:     time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC),
		TotalGuests: 2,
		GuestName:   "Jamie Doe",
		GuestEmail:  "jamie@example.com",
		AddonIDs:    pq.StringArray{},
		TotalAmount: 600.00,
		Currency:    "usd",
		Status:      model.StatusPending,
	}
}

func TestBookingRepository_CountOverlapping(t *testing.T) {
	t.Run("binds the stay boundaries to the strict overlap predicate", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		booking := reservedBooking()

		mock.ExpectQuery(overlapQueryPattern).
			WithArgs(booking.RoomTypeID, booking.CheckIn, booking.CheckOut).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountOverlapping(context.Background(), booking.RoomTypeID, booking.CheckIn, booking.CheckOut)

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a stay starting on another stay's checkout day queries the same boundary", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		// Check-in 2026-06-05 is bound to $2; an existing booking with
		// check_out = 2026-06-05 fails check_out > $2 and is not counted.
		checkIn := time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, time.June, 9, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(overlapQueryPattern).
			WithArgs("roomtype-1", checkIn, checkOut).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountOverlapping(context.Background(), "roomtype-1", checkIn, checkOut)

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates query failures", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		booking := reservedBooking()

		mock.ExpectQuery(overlapQueryPattern).
			WithArgs(booking.RoomTypeID, booking.CheckIn, booking.CheckOut).
			WillReturnError(assert.AnError)

		_, err := repo.CountOverlapping(context.Background(), booking.RoomTypeID, booking.CheckIn, booking.CheckOut)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Reserve(t *testing.T) {
	t.Run("locks, recounts and inserts in one transaction", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		booking := reservedBooking()

		mock.ExpectBegin()
		mock.ExpectExec(lockQueryPattern).
			WithArgs(booking.RoomTypeID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(roomsQueryPattern).
			WithArgs(booking.RoomTypeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectQuery(overlapQueryPattern).
			WithArgs(booking.RoomTypeID, booking.CheckIn, booking.CheckOut).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Reserve(context.Background(), booking)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when every room is already taken", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		booking := reservedBooking()

		mock.ExpectBegin()
		mock.ExpectExec(lockQueryPattern).
			WithArgs(booking.RoomTypeID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(roomsQueryPattern).
			WithArgs(booking.RoomTypeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(overlapQueryPattern).
			WithArgs(booking.RoomTypeID, booking.CheckIn, booking.CheckOut).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectRollback()

		err := repo.Reserve(context.Background(), booking)

		assert.ErrorIs(t, err, repository.ErrNoRoomsAvailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the insert fails", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		booking := reservedBooking()

		mock.ExpectBegin()
		mock.ExpectExec(lockQueryPattern).
			WithArgs(booking.RoomTypeID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(roomsQueryPattern).
			WithArgs(booking.RoomTypeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectQuery(overlapQueryPattern).
			WithArgs(booking.RoomTypeID, booking.CheckIn, booking.CheckOut).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Reserve(context.Background(), booking)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNoRoomsAvailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
