package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/smartstay/internal/domain"
)

// BookingRepo defines the persistence operations for bookings.
type BookingRepo interface {
	// Create inserts a booking. An empty Reference is generated.
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// CountOverlapping counts the pending or confirmed bookings of roomID
	// that share at least one night with [checkIn, checkOut).
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

func (r *pgBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (reference, room_id, hotel_id, check_in_date, check_out_date,
		                      number_of_guests, total_price, status)
		VALUES (@reference, @room_id, @hotel_id, @check_in::date, @check_out::date,
		        @guests, @total_price, @status)
		RETURNING id, reference, room_id, hotel_id, check_in_date, check_out_date,
		          number_of_guests, total_price::float8, status, created_at`

	if b.Reference == "" {
		b.Reference = domain.NewBookingReference(time.Now())
	}
	if b.Status == "" {
		b.Status = domain.BookingConfirmed
	}

	args := pgx.NamedArgs{
		"reference":   b.Reference,
		"room_id":     b.RoomID,
		"hotel_id":    b.HotelID,
		"check_in":    b.CheckIn,
		"check_out":   b.CheckOut,
		"guests":      b.Guests,
		"total_price": b.TotalPrice,
		"status":      string(b.Status),
	}

	var (
		out      domain.Booking
		id       pgtype.UUID
		checkIn  pgtype.Date
		checkOut pgtype.Date
		status   string
	)
	err := r.db.QueryRow(ctx, q, args).Scan(&id, &out.Reference, &out.RoomID, &out.HotelID,
		&checkIn, &checkOut, &out.Guests, &out.TotalPrice, &status, &out.CreatedAt)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	out.ID = uuid.UUID(id.Bytes)
	out.CheckIn = checkIn.Time
	out.CheckOut = checkOut.Time
	out.Status = domain.BookingStatus(status)
	return out, nil
}

func (r *pgBookingRepo) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int, error) {
	const q = `
		SELECT count(*)
		FROM bookings
		WHERE room_id = @room_id
		  AND status = ANY(@held_statuses::text[])
		  AND check_in_date < @check_out::date
		  AND check_out_date > @check_in::date`

	args := pgx.NamedArgs{
		"room_id":       roomID,
		"check_in":      checkIn,
		"check_out":     checkOut,
		"held_statuses": domain.HoldingStatuses(),
	}

	var n int
	if err := r.db.QueryRow(ctx, q, args).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.BookingRepo.CountOverlapping: %w", err)
	}
	return n, nil
}
