// Package handler implements the HTTP handlers for the SmartStay API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, search.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/smartstay/internal/domain"
)

// HotelSearcher defines the search operation the hotel handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type HotelSearcher interface {
	Search(ctx context.Context, c domain.SearchCriteria) (domain.SearchResult, error)
}

// AvailabilityChecker defines the room availability operation.
type AvailabilityChecker interface {
	Check(ctx context.Context, q domain.AvailabilityQuery) (bool, error)
}

// Catalog defines the single hotel and room lookups.
type Catalog interface {
	GetHotel(ctx context.Context, id uuid.UUID) (domain.HotelDetail, error)
	GetRoom(ctx context.Context, id uuid.UUID) (domain.RoomDetail, error)
}

// APIVersion is reported by GET /api/health.
const APIVersion = "2.0"

// Server serves every API endpoint.
type Server struct {
	hotels       HotelSearcher
	availability AvailabilityChecker
	catalog      Catalog
	log          *slog.Logger
	now          func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(hotels HotelSearcher, availability AvailabilityChecker, catalog Catalog, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		hotels:       hotels,
		availability: availability,
		catalog:      catalog,
		log:          log,
		now:          time.Now,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns a chi router with every endpoint registered.
// Middleware is left to the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.GetAPIHealth)
		r.Get("/hotels", s.SearchHotels)
		r.Get("/hotels/{id}", s.GetHotel)
		r.Get("/rooms/{id}", s.GetRoom)
		r.Post("/check-availability", s.CheckAvailability)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("resource not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	return r
}
