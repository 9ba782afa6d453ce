package domain_test

import (
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/smartstay/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name    string
		in, out time.Time
		want    int
	}{
		{"one night", date(2024, 6, 1), date(2024, 6, 2), 1},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"across year end", date(2024, 12, 30), date(2025, 1, 2), 3},
		{"same day", date(2024, 6, 1), date(2024, 6, 1), 0},
		{"inverted", date(2024, 6, 10), date(2024, 6, 1), -9},
		// DST in New York starts 2024-03-10; the day is 23 hours long.
		{"across DST change", time.Date(2024, 3, 9, 0, 0, 0, 0, mustLoad(t, "America/New_York")),
			time.Date(2024, 3, 11, 0, 0, 0, 0, mustLoad(t, "America/New_York")), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Nights(tt.in, tt.out))
		})
	}
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("time zone %s unavailable: %v", name, err)
	}
	return loc
}

func TestBookingStatus_Holds(t *testing.T) {
	assert.True(t, domain.BookingPending.Holds())
	assert.True(t, domain.BookingConfirmed.Holds())
	assert.False(t, domain.BookingCancelled.Holds())
	assert.False(t, domain.BookingCompleted.Holds())
}

func TestNewBookingReference(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 4, 5, 0, time.UTC)

	ref := domain.NewBookingReference(now)

	assert.Regexp(t, regexp.MustCompile(`^BK20240601130405[0-9A-F]{6}$`), ref)
}

func TestNewSearchCriteria_defaults(t *testing.T) {
	c := domain.NewSearchCriteria("Paris", date(2024, 6, 1), date(2024, 6, 3))

	assert.Equal(t, float64(0), c.MinPrice)
	assert.Equal(t, float64(10000), c.MaxPrice)
	assert.Equal(t, 1, c.Guests)
	assert.Empty(t, c.RoomType)
}

func TestHoldingStatuses(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, domain.HoldingStatuses())

	for _, s := range domain.BookingStatuses {
		assert.Equal(t, s.Holds(), slices.Contains(domain.HoldingStatuses(), string(s)), "status %s", s)
	}
}
