package service

import (
	"context"
	"fmt"

	"github.com/pkordes/smartstay/internal/domain"
	"github.com/pkordes/smartstay/internal/repo"
)

// AvailabilityService answers whether a room is free for a stay.
type AvailabilityService struct {
	rooms    repo.RoomRepo
	bookings repo.BookingRepo
	limits   StayLimits
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(rooms repo.RoomRepo, bookings repo.BookingRepo, limits StayLimits) *AvailabilityService {
	return &AvailabilityService{rooms: rooms, bookings: bookings, limits: limits}
}

// Check reports whether q.RoomID has no pending or confirmed booking sharing a
// night with the stay. Returns domain.ErrNotFound for an unknown room.
func (s *AvailabilityService) Check(ctx context.Context, q domain.AvailabilityQuery) (bool, error) {
	if err := s.limits.validate(q.CheckIn, q.CheckOut, domain.Nights(q.CheckIn, q.CheckOut)); err != nil {
		return false, fmt.Errorf("service.AvailabilityService.Check: %w", err)
	}

	if _, err := s.rooms.GetByID(ctx, q.RoomID); err != nil {
		return false, fmt.Errorf("service.AvailabilityService.Check: %w", err)
	}

	n, err := s.bookings.CountOverlapping(ctx, q.RoomID, q.CheckIn, q.CheckOut)
	if err != nil {
		return false, fmt.Errorf("service.AvailabilityService.Check: %w", err)
	}
	return n == 0, nil
}
