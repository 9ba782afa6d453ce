package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/smartstay/internal/domain"
)

// AvailabilityRequest is the body of POST /api/check-availability.
type AvailabilityRequest struct {
	RoomID   *openapi_types.UUID `json:"room_id"`
	CheckIn  *openapi_types.Date `json:"check_in_date"`
	CheckOut *openapi_types.Date `json:"check_out_date"`
}

// AvailabilityResponse is the body of a successful availability check.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// CheckAvailability handles POST /api/check-availability.
func (s *Server) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q, err := decodeAvailability(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("request_too_large", "request body too large"))
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	ok, err := s.availability.Check(r.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeJSON(w, http.StatusNotFound, notFoundBody("room not found"))
		case errors.Is(err, domain.ErrValidation):
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		default:
			s.serverError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, AvailabilityResponse{Available: ok})
}

// decodeAvailability converts the request body into a domain.AvailabilityQuery.
// Returns an error if the body is malformed or a required field is missing.
func decodeAvailability(r *http.Request) (domain.AvailabilityQuery, error) {
	var body AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.AvailabilityQuery{}, err
		}
		return domain.AvailabilityQuery{}, errors.New("request body must be a JSON object")
	}
	switch {
	case body.RoomID == nil:
		return domain.AvailabilityQuery{}, errors.New("room_id is required")
	case body.CheckIn == nil:
		return domain.AvailabilityQuery{}, errors.New("check_in_date is required")
	case body.CheckOut == nil:
		return domain.AvailabilityQuery{}, errors.New("check_out_date is required")
	}
	return domain.AvailabilityQuery{
		RoomID:   *body.RoomID,
		CheckIn:  body.CheckIn.Time,
		CheckOut: body.CheckOut.Time,
	}, nil
}
