// Package service contains the business logic for the SmartStay API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/smartstay/internal/domain"
	"github.com/pkordes/smartstay/internal/repo"
)

// StayLimits bounds the number of nights a search or availability check may
// cover.
type StayLimits struct {
	MinNights int
	MaxNights int
}

// DefaultStayLimits allows stays of one night up to a year.
var DefaultStayLimits = StayLimits{MinNights: 1, MaxNights: 365}

// validate checks that [checkIn, checkOut), nights long, is a stay within l.
func (l StayLimits) validate(checkIn, checkOut time.Time, nights int) error {
	switch {
	case checkIn.IsZero():
		return fmt.Errorf("%w: check-in date is required", domain.ErrValidation)
	case checkOut.IsZero():
		return fmt.Errorf("%w: check-out date is required", domain.ErrValidation)
	case nights <= 0:
		return fmt.Errorf("%w: check-out date must be after check-in date", domain.ErrValidation)
	case nights < l.MinNights:
		return fmt.Errorf("%w: stay must be at least %d nights", domain.ErrValidation, l.MinNights)
	case l.MaxNights > 0 && nights > l.MaxNights:
		return fmt.Errorf("%w: stay cannot exceed %d nights", domain.ErrValidation, l.MaxNights)
	}
	return nil
}

// SearchService implements hotel search.
type SearchService struct {
	hotels repo.HotelRepo
	limits StayLimits
}

// NewSearchService constructs a SearchService backed by the provided HotelRepo.
func NewSearchService(r repo.HotelRepo, limits StayLimits) *SearchService {
	return &SearchService{hotels: r, limits: limits}
}

// Search validates c and returns the matching rooms grouped by hotel. Hotels
// keep the order the repo returned them in, and so do their rooms.
func (s *SearchService) Search(ctx context.Context, c domain.SearchCriteria) (domain.SearchResult, error) {
	c.City = strings.TrimSpace(c.City)
	c.RoomType = strings.TrimSpace(c.RoomType)
	nights := domain.Nights(c.CheckIn, c.CheckOut)

	if err := validateCriteria(c, nights, s.limits); err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	listings, err := s.hotels.SearchRooms(ctx, c)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	return domain.SearchResult{
		Destination: c.City,
		CheckIn:     c.CheckIn,
		CheckOut:    c.CheckOut,
		Nights:      nights,
		Hotels:      groupByHotel(listings, nights),
	}, nil
}

func validateCriteria(c domain.SearchCriteria, nights int, limits StayLimits) error {
	if c.City == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if err := limits.validate(c.CheckIn, c.CheckOut, nights); err != nil {
		return err
	}
	if c.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", domain.ErrValidation)
	}
	if c.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice cannot be negative", domain.ErrValidation)
	}
	if c.MaxPrice < c.MinPrice {
		return fmt.Errorf("%w: maxPrice cannot be less than minPrice", domain.ErrValidation)
	}
	return nil
}

func groupByHotel(listings []domain.RoomListing, nights int) []domain.HotelResult {
	hotels := []domain.HotelResult{}
	index := make(map[uuid.UUID]int)
	for _, l := range listings {
		i, ok := index[l.Hotel.ID]
		if !ok {
			i = len(hotels)
			index[l.Hotel.ID] = i
			hotels = append(hotels, domain.HotelResult{Hotel: l.Hotel, Rooms: []domain.RoomResult{}})
		}
		hotels[i].Rooms = append(hotels[i].Rooms, domain.RoomResult{
			Room:       l.Room,
			Nights:     nights,
			TotalPrice: totalPrice(l.Room.PricePerNight, nights),
		})
	}
	return hotels
}

// totalPrice rounds to whole cents.
func totalPrice(perNight float64, nights int) float64 {
	return math.Round(perNight*float64(nights)*100) / 100
}
