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

// RoomRepo defines the persistence operations for rooms.
type RoomRepo interface {
	// Create inserts a new room and returns the persisted record.
	Create(ctx context.Context, room domain.Room) (domain.Room, error)

	// GetByID retrieves a single room. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error)

	// ListAvailableByHotel returns the available rooms of hotelID, cheapest
	// first. Returns an empty slice when there are none.
	ListAvailableByHotel(ctx context.Context, hotelID uuid.UUID) ([]domain.Room, error)
}

// pgRoomRepo is the Postgres implementation of RoomRepo.
type pgRoomRepo struct {
	db db
}

// NewRoomRepo constructs a RoomRepo backed by the provided db connection.
func NewRoomRepo(db db) RoomRepo {
	return &pgRoomRepo{db: db}
}

const roomColumns = `r.id, r.hotel_id, r.room_number, r.room_type, r.capacity,
	r.price_per_night::float8, r.description, r.amenities, r.status, r.created_at, r.updated_at`

func (r *pgRoomRepo) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	const q = `
		INSERT INTO rooms AS r (hotel_id, room_number, room_type, capacity, price_per_night,
		                        description, amenities, status)
		VALUES (@hotel_id, @room_number, @room_type, @capacity, @price_per_night,
		        @description, @amenities, @status)
		RETURNING ` + roomColumns

	status := room.Status
	if status == "" {
		status = domain.RoomAvailable
	}
	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	args := pgx.NamedArgs{
		"hotel_id":        room.HotelID,
		"room_number":     room.RoomNumber,
		"room_type":       room.RoomType,
		"capacity":        room.Capacity,
		"price_per_night": room.PricePerNight,
		"description":     room.Description,
		"amenities":       amenities,
		"status":          string(status),
	}

	result, err := scanRoom(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms r WHERE r.id = @id`

	result, err := scanRoom(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgRoomRepo) ListAvailableByHotel(ctx context.Context, hotelID uuid.UUID) ([]domain.Room, error) {
	const q = `SELECT ` + roomColumns + `
		FROM rooms r
		WHERE r.hotel_id = @hotel_id AND r.status = @status
		ORDER BY r.price_per_night, r.room_number`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"hotel_id": hotelID,
		"status":   string(domain.RoomAvailable),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.ListAvailableByHotel: %w", err)
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RoomRepo.ListAvailableByHotel: scan: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.ListAvailableByHotel: rows: %w", err)
	}
	return rooms, nil
}

// roomDest returns scan destinations for roomColumns.
func roomDest(room *domain.Room, id *pgtype.UUID, status *string) []any {
	return []any{id, &room.HotelID, &room.RoomNumber, &room.RoomType, &room.Capacity,
		&room.PricePerNight, &room.Description, &room.Amenities, status,
		&room.CreatedAt, &room.UpdatedAt}
}

func scanRoom(s scanner) (domain.Room, error) {
	var (
		room   domain.Room
		id     pgtype.UUID
		status string
	)
	if err := s.Scan(roomDest(&room, &id, &status)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Room{}, domain.ErrNotFound
		}
		return domain.Room{}, err
	}
	room.ID = uuid.UUID(id.Bytes)
	room.Status = domain.RoomStatus(status)
	return room, nil
}
