package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smartstay/internal/domain"
	"github.com/pkordes/smartstay/internal/handler"
)

// mockHotelSearcher is a test double for handler.HotelSearcher.
type mockHotelSearcher struct {
	search func(ctx context.Context, c domain.SearchCriteria) (domain.SearchResult, error)
}

func (m *mockHotelSearcher) Search(ctx context.Context, c domain.SearchCriteria) (domain.SearchResult, error) {
	return m.search(ctx, c)
}

// mockAvailabilityChecker is a test double for handler.AvailabilityChecker.
type mockAvailabilityChecker struct {
	check func(ctx context.Context, q domain.AvailabilityQuery) (bool, error)
}

func (m *mockAvailabilityChecker) Check(ctx context.Context, q domain.AvailabilityQuery) (bool, error) {
	return m.check(ctx, q)
}

// mockCatalog is a test double for handler.Catalog.
type mockCatalog struct {
	getHotel func(ctx context.Context, id uuid.UUID) (domain.HotelDetail, error)
	getRoom  func(ctx context.Context, id uuid.UUID) (domain.RoomDetail, error)
}

func (m *mockCatalog) GetHotel(ctx context.Context, id uuid.UUID) (domain.HotelDetail, error) {
	return m.getHotel(ctx, id)
}

func (m *mockCatalog) GetRoom(ctx context.Context, id uuid.UUID) (domain.RoomDetail, error) {
	return m.getRoom(ctx, id)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.HotelSearcher       = (*mockHotelSearcher)(nil)
	_ handler.AvailabilityChecker = (*mockAvailabilityChecker)(nil)
	_ handler.Catalog             = (*mockCatalog)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors how main.go wires it in production, minus middleware.
func newHTTPHandler(hotels handler.HotelSearcher, availability handler.AvailabilityChecker) http.Handler {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(hotels, availability, nil, quiet).Routes()
}

// newCatalogHandler wires a Server that only serves the catalog lookups.
func newCatalogHandler(catalog handler.Catalog) http.Handler {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(nil, nil, catalog, quiet).Routes()
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
