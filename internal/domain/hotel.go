// Package domain contains the core data types for the SmartStay hotel search API.
// This package has no dependencies on other internal packages and is imported
// by repo, service, and handler.
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Hotel is a property that owns rooms.
type Hotel struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Rating      float64   `json:"rating"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RoomStatus is the housekeeping state of a room. Only available rooms are
// offered in search results.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomBooked      RoomStatus = "booked"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room is a bookable unit inside a hotel.
type Room struct {
	ID            uuid.UUID  `json:"id"`
	HotelID       uuid.UUID  `json:"hotel_id"`
	RoomNumber    string     `json:"room_number"`
	RoomType      string     `json:"room_type"`
	Capacity      int        `json:"capacity"`
	PricePerNight float64    `json:"price_per_night"`
	Description   string     `json:"description,omitempty"`
	Amenities     []string   `json:"amenities"`
	Status        RoomStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// BookingStatuses lists every status a booking can be in.
var BookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}

// Holds reports whether a booking in status s keeps its room occupied.
func (s BookingStatus) Holds() bool {
	return s == BookingPending || s == BookingConfirmed
}

// HoldingStatuses returns the statuses for which Holds is true, in the form
// the repositories pass to SQL.
func HoldingStatuses() []string {
	var out []string
	for _, s := range BookingStatuses {
		if s.Holds() {
			out = append(out, string(s))
		}
	}
	return out
}

// Booking reserves a room for [CheckIn, CheckOut). The API only reads
// bookings to decide availability.
type Booking struct {
	ID         uuid.UUID     `json:"id"`
	Reference  string        `json:"reference"`
	RoomID     uuid.UUID     `json:"room_id"`
	HotelID    uuid.UUID     `json:"hotel_id"`
	CheckIn    time.Time     `json:"check_in_date"`
	CheckOut   time.Time     `json:"check_out_date"`
	Guests     int           `json:"number_of_guests"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewBookingReference returns a human-readable booking reference of the form
// BK<yyyymmddhhmmss><6 upper-case hex digits>.
func NewBookingReference(now time.Time) string {
	var b [3]byte
	_, _ = rand.Read(b[:])
	return "BK" + now.Format("20060102150405") + strings.ToUpper(hex.EncodeToString(b[:]))
}
