package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/smartstay/internal/domain"
	"github.com/pkordes/smartstay/internal/repo"
)

// mockHotelRepo is a hand-written test double for repo.HotelRepo.
// Each method is a function field; set only the ones your test needs.
type mockHotelRepo struct {
	create      func(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	searchRooms func(ctx context.Context, c domain.SearchCriteria) ([]domain.RoomListing, error)
}

func (m *mockHotelRepo) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return m.create(ctx, h)
}
func (m *mockHotelRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	return m.getByID(ctx, id)
}
func (m *mockHotelRepo) SearchRooms(ctx context.Context, c domain.SearchCriteria) ([]domain.RoomListing, error) {
	return m.searchRooms(ctx, c)
}

type mockRoomRepo struct {
	create               func(ctx context.Context, room domain.Room) (domain.Room, error)
	getByID              func(ctx context.Context, id uuid.UUID) (domain.Room, error)
	listAvailableByHotel func(ctx context.Context, hotelID uuid.UUID) ([]domain.Room, error)
}

func (m *mockRoomRepo) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	return m.create(ctx, room)
}
func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	return m.getByID(ctx, id)
}
func (m *mockRoomRepo) ListAvailableByHotel(ctx context.Context, hotelID uuid.UUID) ([]domain.Room, error) {
	return m.listAvailableByHotel(ctx, hotelID)
}

type mockBookingRepo struct {
	create           func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	countOverlapping func(ctx context.Context, roomID uuid.UUID, in, out time.Time) (int, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.create(ctx, b)
}
func (m *mockBookingRepo) CountOverlapping(ctx context.Context, roomID uuid.UUID, in, out time.Time) (int, error) {
	return m.countOverlapping(ctx, roomID, in, out)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.HotelRepo   = (*mockHotelRepo)(nil)
	_ repo.RoomRepo    = (*mockRoomRepo)(nil)
	_ repo.BookingRepo = (*mockBookingRepo)(nil)
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
