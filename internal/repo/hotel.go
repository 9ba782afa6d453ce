package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/smartstay/internal/domain"
)

// HotelRepo defines the persistence operations for hotels and hotel search.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type HotelRepo interface {
	// Create inserts a new hotel and returns the persisted record.
	Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error)

	// GetByID retrieves a single hotel. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error)

	// SearchRooms returns every available room matching c that has no
	// pending or confirmed booking overlapping [c.CheckIn, c.CheckOut),
	// ordered by hotel rating (best first), hotel name, then room price.
	SearchRooms(ctx context.Context, c domain.SearchCriteria) ([]domain.RoomListing, error)
}

// pgHotelRepo is the Postgres implementation of HotelRepo.
type pgHotelRepo struct {
	db db
}

// NewHotelRepo constructs a HotelRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewHotelRepo(db db) HotelRepo {
	return &pgHotelRepo{db: db}
}

const hotelColumns = `h.id, h.name, h.description, h.city, h.address, h.phone, h.email,
	h.rating::float8, h.image, h.created_at`

func (r *pgHotelRepo) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	const q = `
		INSERT INTO hotels AS h (name, description, city, address, phone, email, rating, image)
		VALUES (@name, @description, @city, @address, @phone, @email, @rating, @image)
		RETURNING ` + hotelColumns

	args := pgx.NamedArgs{
		"name":        h.Name,
		"description": h.Description,
		"city":        h.City,
		"address":     h.Address,
		"phone":       h.Phone,
		"email":       h.Email,
		"rating":      h.Rating,
		"image":       h.Image,
	}

	result, err := scanHotel(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgHotelRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	const q = `SELECT ` + hotelColumns + ` FROM hotels h WHERE h.id = @id`

	result, err := scanHotel(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgHotelRepo) SearchRooms(ctx context.Context, c domain.SearchCriteria) ([]domain.RoomListing, error) {
	const q = `
		SELECT ` + roomColumns + `, ` + hotelColumns + `
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE r.status = 'available'
		  AND r.price_per_night BETWEEN @min_price AND @max_price
		  AND r.capacity >= @guests
		  AND (@city::text = '' OR h.city ILIKE @city_pattern::text)
		  AND (@room_type::text = '' OR r.room_type = @room_type::text)
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status = ANY(@held_statuses::text[])
			  AND b.check_in_date < @check_out::date
			  AND b.check_out_date > @check_in::date
		  )
		ORDER BY h.rating DESC, h.name, h.id, r.price_per_night, r.room_number`

	args := pgx.NamedArgs{
		"min_price":     c.MinPrice,
		"max_price":     c.MaxPrice,
		"guests":        c.Guests,
		"city":          c.City,
		"city_pattern":  containsPattern(c.City),
		"room_type":     c.RoomType,
		"check_in":      c.CheckIn,
		"check_out":     c.CheckOut,
		"held_statuses": domain.HoldingStatuses(),
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.HotelRepo.SearchRooms: %w", err)
	}
	defer rows.Close()

	listings := []domain.RoomListing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HotelRepo.SearchRooms: scan: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HotelRepo.SearchRooms: rows: %w", err)
	}
	return listings, nil
}

// hotelDest returns scan destinations for hotelColumns.
func hotelDest(h *domain.Hotel, id *pgtype.UUID) []any {
	return []any{id, &h.Name, &h.Description, &h.City, &h.Address, &h.Phone, &h.Email,
		&h.Rating, &h.Image, &h.CreatedAt}
}

func scanHotel(s scanner) (domain.Hotel, error) {
	var (
		h  domain.Hotel
		id pgtype.UUID
	)
	if err := s.Scan(hotelDest(&h, &id)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	h.ID = uuid.UUID(id.Bytes)
	return h, nil
}

func scanListing(s scanner) (domain.RoomListing, error) {
	var (
		l       domain.RoomListing
		roomID  pgtype.UUID
		hotelID pgtype.UUID
		status  string
	)
	dest := append(roomDest(&l.Room, &roomID, &status), hotelDest(&l.Hotel, &hotelID)...)
	if err := s.Scan(dest...); err != nil {
		return domain.RoomListing{}, err
	}
	l.Room.ID = uuid.UUID(roomID.Bytes)
	l.Room.Status = domain.RoomStatus(status)
	l.Hotel.ID = uuid.UUID(hotelID.Bytes)
	return l, nil
}
