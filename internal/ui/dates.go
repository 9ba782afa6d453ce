// Package ui adapts the hotel search client to a page: date input limits,
// transient notifications, and the search form flow. It holds no DOM or
// rendering types; callers render the returned values however they like.
package ui

import (
	"time"

	"github.com/pkordes/smartstay/internal/hotelsearch"
)

// MobileBreakpoint is the widest viewport, in CSS pixels, that gets the
// collapsed navigation menu.
const MobileBreakpoint = 768

// DateConstraints are the min attributes of the check-in and check-out inputs.
type DateConstraints struct {
	CheckInMin  string `json:"checkInMin"`
	CheckOutMin string `json:"checkOutMin"`
}

// NewDateConstraints returns the limits for a form opened on today.
// selectedCheckIn is the current value of the check-in input and may be empty.
func NewDateConstraints(today time.Time, selectedCheckIn string) DateConstraints {
	c := DateConstraints{CheckInMin: MinCheckIn(today)}
	c.CheckOutMin = MinCheckOut(selectedCheckIn)
	if c.CheckOutMin == "" {
		c.CheckOutMin = c.CheckInMin
	}
	return c
}

// MinCheckIn is the earliest selectable check-in: today.
func MinCheckIn(today time.Time) string {
	return hotelsearch.FormatDate(today)
}

// MinCheckOut follows the selected check-in. The input value is passed
// through untouched, matching what the browser reports.
func MinCheckOut(checkIn string) string {
	return checkIn
}

// MobileMenuEnabled reports whether a viewport of width pixels uses the
// mobile menu.
func MobileMenuEnabled(width int) bool {
	return width <= MobileBreakpoint
}
