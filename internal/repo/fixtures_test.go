package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smartstay/internal/domain"
	"github.com/pkordes/smartstay/internal/repo"
	"github.com/pkordes/smartstay/testutil"
)

// repos bundles every repo over one transaction that is rolled back when the
// test finishes, giving free per-test isolation.
type repos struct {
	hotels   repo.HotelRepo
	rooms    repo.RoomRepo
	bookings repo.BookingRepo
}

func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		hotels:   repo.NewHotelRepo(tx),
		rooms:    repo.NewRoomRepo(tx),
		bookings: repo.NewBookingRepo(tx),
	}
}

// uniqueCity returns a city name no seed row or other test uses, so searches
// only see the rows the test created.
func uniqueCity() string {
	return "Testville " + uuid.NewString()
}

func hotelFixture(city string) domain.Hotel {
	return domain.Hotel{
		Name:        "Test Hotel",
		Description: "For tests",
		City:        city,
		Address:     "1 Test Way",
		Rating:      4.2,
	}
}

func roomFixture(hotelID uuid.UUID, number string, price float64, capacity int) domain.Room {
	return domain.Room{
		HotelID:       hotelID,
		RoomNumber:    number,
		RoomType:      "Double",
		Capacity:      capacity,
		PricePerNight: price,
		Amenities:     []string{"WiFi", "TV"},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustCreateHotel(t *testing.T, r repos, h domain.Hotel) domain.Hotel {
	t.Helper()
	got, err := r.hotels.Create(context.Background(), h)
	require.NoError(t, err)
	return got
}

func mustCreateRoom(t *testing.T, r repos, room domain.Room) domain.Room {
	t.Helper()
	got, err := r.rooms.Create(context.Background(), room)
	require.NoError(t, err)
	return got
}

func mustBook(t *testing.T, r repos, room domain.Room, in, out time.Time, status domain.BookingStatus) domain.Booking {
	t.Helper()
	got, err := r.bookings.Create(context.Background(), domain.Booking{
		RoomID:     room.ID,
		HotelID:    room.HotelID,
		CheckIn:    in,
		CheckOut:   out,
		Guests:     1,
		TotalPrice: room.PricePerNight * float64(domain.Nights(in, out)),
		Status:     status,
	})
	require.NoError(t, err)
	return got
}
