package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/smartstay/internal/domain"
)

// GetHotel handles GET /api/hotels/{id}.
func (s *Server) GetHotel(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	h, err := s.catalog.GetHotel(r.Context(), id)
	if err != nil {
		s.lookupError(w, r, err, "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, h)
}

// GetRoom handles GET /api/rooms/{id}.
func (s *Server) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	room, err := s.catalog.GetRoom(r.Context(), id)
	if err != nil {
		s.lookupError(w, r, err, "room not found")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func bindID(r *http.Request) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	return id, err
}

func (s *Server) lookupError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, notFoundBody(notFound))
		return
	}
	s.serverError(w, r, err)
}
