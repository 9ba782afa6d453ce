package domain

import (
	"time"

	"github.com/google/uuid"
)

// Search defaults applied when the caller leaves a filter out.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000
	DefaultGuests   = 1
)

// SearchCriteria are the filters of one hotel search.
// City matches case-insensitively anywhere in the hotel's city.
type SearchCriteria struct {
	City     string
	CheckIn  time.Time
	CheckOut time.Time
	RoomType string
	MinPrice float64
	MaxPrice float64
	Guests   int
}

// NewSearchCriteria builds criteria for city and the stay with every
// optional filter at its default.
func NewSearchCriteria(city string, checkIn, checkOut time.Time) SearchCriteria {
	return SearchCriteria{
		City:     city,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		Guests:   DefaultGuests,
	}
}

// RoomListing is a room together with the hotel it belongs to, as returned
// by a search query.
type RoomListing struct {
	Room  Room
	Hotel Hotel
}

// RoomResult is a room offered for a specific stay.
type RoomResult struct {
	Room
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

// HotelResult groups the matching rooms of one hotel, cheapest first.
type HotelResult struct {
	Hotel
	Rooms []RoomResult `json:"rooms"`
}

// HotelDetail is a hotel with the rooms it currently offers.
type HotelDetail struct {
	Hotel
	Rooms []Room `json:"rooms"`
}

// RoomDetail is a room together with its hotel.
type RoomDetail struct {
	Room
	Hotel Hotel `json:"hotel"`
}

// SearchResult is the response to a hotel search.
type SearchResult struct {
	Destination string        `json:"destination"`
	CheckIn     time.Time     `json:"-"`
	CheckOut    time.Time     `json:"-"`
	Nights      int           `json:"nights"`
	Hotels      []HotelResult `json:"hotels"`
}

// AvailabilityQuery asks whether one room is free for a stay.
type AvailabilityQuery struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights counts the nights between two calendar dates. Only the year, month,
// and day of each value are used, so time zones and clock times never add
// or lose a night.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}
