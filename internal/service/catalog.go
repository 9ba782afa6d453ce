package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/smartstay/internal/domain"
	"github.com/pkordes/smartstay/internal/repo"
)

// CatalogService looks up single hotels and rooms.
type CatalogService struct {
	hotels repo.HotelRepo
	rooms  repo.RoomRepo
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(hotels repo.HotelRepo, rooms repo.RoomRepo) *CatalogService {
	return &CatalogService{hotels: hotels, rooms: rooms}
}

// GetHotel returns the hotel with its available rooms. Returns domain.ErrNotFound for
// an unknown hotel.
func (s *CatalogService) GetHotel(ctx context.Context, id uuid.UUID) (domain.HotelDetail, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return domain.HotelDetail{}, fmt.Errorf("service.CatalogService.GetHotel: %w", err)
	}
	rooms, err := s.rooms.ListAvailableByHotel(ctx, id)
	if err != nil {
		return domain.HotelDetail{}, fmt.Errorf("service.CatalogService.GetHotel: %w", err)
	}
	return domain.HotelDetail{Hotel: h, Rooms: rooms}, nil
}

// GetRoom returns the room with its hotel. Returns domain.ErrNotFound for an
// unknown room.
func (s *CatalogService) GetRoom(ctx context.Context, id uuid.UUID) (domain.RoomDetail, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return domain.RoomDetail{}, fmt.Errorf("service.CatalogService.GetRoom: %w", err)
	}
	h, err := s.hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		return domain.RoomDetail{}, fmt.Errorf("service.CatalogService.GetRoom: %w", err)
	}
	return domain.RoomDetail{Room: room, Hotel: h}, nil
}
