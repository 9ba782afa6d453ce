package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smartstay/internal/domain"
)

func TestGetHotel_200(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	h := newCatalogHandler(&mockCatalog{
		getHotel: func(_ context.Context, hotelID uuid.UUID) (domain.HotelDetail, error) {
			got = hotelID
			return domain.HotelDetail{
				Hotel: domain.Hotel{ID: hotelID, Name: "Grand Plaza Hotel", City: "New York"},
				Rooms: []domain.Room{{ID: uuid.New(), HotelID: hotelID, RoomNumber: "101", Status: domain.RoomAvailable}},
			}, nil
		},
	})

	rec := serve(h, http.MethodGet, "/api/hotels/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, got)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, id.String(), body["id"])
	assert.Equal(t, "Grand Plaza Hotel", body["name"])
	rooms, ok := body["rooms"].([]any)
	require.True(t, ok)
	require.Len(t, rooms, 1)
	assert.Equal(t, "available", rooms[0].(map[string]any)["status"])
}

func TestGetHotel_404(t *testing.T) {
	h := newCatalogHandler(&mockCatalog{
		getHotel: func(context.Context, uuid.UUID) (domain.HotelDetail, error) {
			return domain.HotelDetail{}, fmt.Errorf("service.CatalogService.GetHotel: %w", domain.ErrNotFound)
		},
	})

	rec := serve(h, http.MethodGet, "/api/hotels/"+uuid.NewString(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Equal(t, "hotel not found", resp.Error.Message)
}

func TestGetHotel_422_badID(t *testing.T) {
	// getHotel is nil: a malformed id must not reach the catalog.
	h := newCatalogHandler(&mockCatalog{})

	rec := serve(h, http.MethodGet, "/api/hotels/not-a-uuid", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
}

func TestGetRoom_200(t *testing.T) {
	id := uuid.New()
	h := newCatalogHandler(&mockCatalog{
		getRoom: func(_ context.Context, roomID uuid.UUID) (domain.RoomDetail, error) {
			return domain.RoomDetail{
				Room:  domain.Room{ID: roomID, RoomNumber: "201", PricePerNight: 249},
				Hotel: domain.Hotel{Name: "Seaside Resort"},
			}, nil
		},
	})

	rec := serve(h, http.MethodGet, "/api/rooms/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		ID         uuid.UUID `json:"id"`
		RoomNumber string    `json:"room_number"`
		Hotel      struct {
			Name string `json:"name"`
		} `json:"hotel"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, id, body.ID)
	assert.Equal(t, "201", body.RoomNumber)
	assert.Equal(t, "Seaside Resort", body.Hotel.Name)
}

func TestGetRoom_404(t *testing.T) {
	h := newCatalogHandler(&mockCatalog{
		getRoom: func(context.Context, uuid.UUID) (domain.RoomDetail, error) {
			return domain.RoomDetail{}, domain.ErrNotFound
		},
	})

	rec := serve(h, http.MethodGet, "/api/rooms/"+uuid.NewString(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "room not found", decodeError(t, rec).Error.Message)
}

func TestGetRoom_500(t *testing.T) {
	h := newCatalogHandler(&mockCatalog{
		getRoom: func(context.Context, uuid.UUID) (domain.RoomDetail, error) {
			return domain.RoomDetail{}, errors.New("db is down")
		},
	})

	rec := serve(h, http.MethodGet, "/api/rooms/"+uuid.NewString(), "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db is down")
	assert.Equal(t, "internal_error", decodeError(t, rec).Error.Code)
}
