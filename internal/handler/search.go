package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/smartstay/internal/domain"
)

// SearchResponse is the JSON body of GET /api/hotels.
type SearchResponse struct {
	Destination string               `json:"destination"`
	CheckIn     openapi_types.Date   `json:"checkIn"`
	CheckOut    openapi_types.Date   `json:"checkOut"`
	Nights      int                  `json:"nights"`
	Hotels      []domain.HotelResult `json:"hotels"`
}

// searchParams are the query parameters of GET /api/hotels.
// Optional parameters are nil when absent.
type searchParams struct {
	Destination string
	CheckIn     openapi_types.Date
	CheckOut    openapi_types.Date
	RoomType    *string
	MinPrice    *float64
	MaxPrice    *float64
	Guests      *int
	Format      *string
}

// csvHeaders defines the column names written as the first row of a CSV search result.
var csvHeaders = []string{
	"hotel_id", "hotel_name", "city", "rating",
	"room_id", "room_number", "room_type", "capacity",
	"price_per_night", "nights", "total_price", "amenities",
}

// SearchHotels handles GET /api/hotels.
// Use ?format=csv to receive one CSV row per room; default is JSON.
func (s *Server) SearchHotels(w http.ResponseWriter, r *http.Request) {
	p, err := bindSearchParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	wantCSV := p.Format != nil && *p.Format == "csv"
	if p.Format != nil && *p.Format != "csv" && *p.Format != "json" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("format must be json or csv"))
		return
	}

	result, err := s.hotels.Search(r.Context(), paramsToCriteria(p))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.serverError(w, r, err)
		return
	}

	if wantCSV {
		writeCSV(w, result)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{
		Destination: result.Destination,
		CheckIn:     openapi_types.Date{Time: result.CheckIn},
		CheckOut:    openapi_types.Date{Time: result.CheckOut},
		Nights:      result.Nights,
		Hotels:      result.Hotels,
	})
}

// --- mapping helpers --------------------------------------------------------

func bindSearchParams(r *http.Request) (searchParams, error) {
	var p searchParams
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, true, "destination", q, &p.Destination); err != nil {
		return p, err
	}
	// Date binds as an object, which skips the binder's required check.
	for _, name := range []string{"checkIn", "checkOut"} {
		if !q.Has(name) {
			return p, fmt.Errorf("query parameter '%s' is required", name)
		}
	}
	if err := runtime.BindQueryParameter("form", true, true, "checkIn", q, &p.CheckIn); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, true, "checkOut", q, &p.CheckOut); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "roomType", q, &p.RoomType); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "minPrice", q, &p.MinPrice); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "maxPrice", q, &p.MaxPrice); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "guests", q, &p.Guests); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "format", q, &p.Format); err != nil {
		return p, err
	}
	return p, nil
}

// paramsToCriteria applies the optional filters on top of the defaults.
func paramsToCriteria(p searchParams) domain.SearchCriteria {
	c := domain.NewSearchCriteria(p.Destination, p.CheckIn.Time, p.CheckOut.Time)
	if p.RoomType != nil {
		c.RoomType = *p.RoomType
	}
	if p.MinPrice != nil {
		c.MinPrice = *p.MinPrice
	}
	if p.MaxPrice != nil {
		c.MaxPrice = *p.MaxPrice
	}
	if p.Guests != nil {
		c.Guests = *p.Guests
	}
	return c
}

// writeCSV encodes one row per room. Amenities within a row are
// pipe-separated ("|") to keep each room on a single CSV line.
func writeCSV(w http.ResponseWriter, result domain.SearchResult) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, h := range result.Hotels {
		for _, room := range h.Rooms {
			//nolint:errcheck
			cw.Write(roomToCSVRecord(h, room))
		}
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func roomToCSVRecord(h domain.HotelResult, room domain.RoomResult) []string {
	return []string{
		h.ID.String(),
		h.Name,
		h.City,
		strconv.FormatFloat(h.Rating, 'f', 1, 64),
		room.ID.String(),
		room.RoomNumber,
		room.RoomType,
		strconv.Itoa(room.Capacity),
		strconv.FormatFloat(room.PricePerNight, 'f', 2, 64),
		strconv.Itoa(room.Nights),
		strconv.FormatFloat(room.TotalPrice, 'f', 2, 64),
		strings.Join(room.Amenities, "|"),
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, internalBody())
}
