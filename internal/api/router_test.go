package api

import (
	"bytes"
	"city-route-service/internal/adapters/distance"
	"city-route-service/internal/adapters/repositories"
	"city-route-service/internal/api/dto"
	"city-route-service/internal/domain"
	"city-route-service/internal/platform/db"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, withRepo bool) http.Handler {
	t.Helper()

	g, names, err := domain.SampleCity().Build()
	require.NoError(t, err)
	provider, err := distance.NewGraphDistanceProvider(g, nil)
	require.NoError(t, err)

	deps := Deps{Locations: names, Provider: provider, HistoryLimit: 20}
	if withRepo {
		conn, err := db.Open(db.DriverSQLite, ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = conn.Close() })
		require.NoError(t, repositories.InitSchema(conn, repositories.SQLite))
		deps.Trips = repositories.NewSQLTripRepository(conn, repositories.SQLite)
	}

	return NewRouter(deps)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthAndRequestID(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc123", rec.Header().Get("X-Request-ID"))
}

func TestCategoriesAndLocations(t *testing.T) {
	h := newTestServer(t, false)

	cats := decode[dto.ListCategoriesResponse](t, do(t, h, http.MethodGet, "/categories", ""))
	assert.Equal(t, []dto.CategoryResponse{{Name: "car", Speed: 60}, {Name: "drone", Speed: 80}}, cats.Categories)

	locs := decode[dto.ListLocationsResponse](t, do(t, h, http.MethodGet, "/locations", ""))
	require.Len(t, locs.Locations, 10)
	assert.Equal(t, dto.PlaceRef{ID: 4, Name: "Airport"}, locs.Locations[4])
}

func TestDistanceTable(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodGet, "/locations/0/distances", "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[dto.DistanceTableResponse](t, rec)
	assert.Equal(t, "City Center", res.Source.Name)
	require.Len(t, res.Distances, 10)
	require.NotNil(t, res.Distances[4].Distance)
	assert.Equal(t, 50, *res.Distances[4].Distance)
	assert.Equal(t, 41, *res.Distances[9].Distance)

	for _, path := range []string{"/locations/10/distances", "/locations/abc/distances"} {
		rec = do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "invalid_vertex")
	}
}

func TestSimulateTrip(t *testing.T) {
	h := newTestServer(t, true)

	rec := do(t, h, http.MethodPost, "/trips", `{"vehicle_name":"taxi","category":"Car","start":0,"destination":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	trip := decode[dto.TripResponse](t, rec)
	assert.True(t, trip.Reachable)
	require.NotNil(t, trip.Distance)
	assert.Equal(t, 50, *trip.Distance)
	assert.Equal(t, 0, *trip.ETAHours)
	assert.Equal(t, "Airport", trip.To.Name)
	assert.NotZero(t, trip.ID)

	rec = do(t, h, http.MethodPost, "/trips", `{"vehicle_name":"d","category":"drone","start":4,"destination":9}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *decode[dto.TripResponse](t, rec).ETAHours)

	history := decode[dto.ListTripsResponse](t, do(t, h, http.MethodGet, "/trips?limit=5", ""))
	require.Len(t, history.Trips, 2)
	assert.Equal(t, "d", history.Trips[0].VehicleName)
}

func TestSimulateTripInputErrors(t *testing.T) {
	h := newTestServer(t, false)

	tests := []struct {
		name string
		body string
		kind string
	}{
		{"unknown category", `{"category":"bus","start":0,"destination":1}`, "invalid_category"},
		{"unknown start", `{"category":"car","start":12,"destination":1}`, "invalid_vertex"},
		{"missing destination", `{"category":"car","start":1}`, "invalid_vertex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/trips", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			res := decode[map[string]dto.ErrorBody](t, rec)
			assert.Equal(t, tt.kind, res["error"].Kind)
		})
	}

	rec := do(t, h, http.MethodPost, "/trips", `{"category":"car","start":0,"destination":1,"extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json body")
}

func TestTripHistoryWithoutRepo(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodGet, "/trips", "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestSimulateFleet(t *testing.T) {
	h := newTestServer(t, true)

	body := `{"vehicles":[
		{"vehicle_name":"a","category":"car","start":0,"destination":4},
		{"vehicle_name":"b","category":"boat","start":0,"destination":4},
		{"vehicle_name":"c","category":"drone","start":0,"destination":42}
	]}`
	rec := do(t, h, http.MethodPost, "/fleet/trips", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[dto.FleetResponse](t, rec)
	require.Len(t, res.Results, 3)
	require.NotNil(t, res.Results[0].Trip)
	assert.Equal(t, 50, *res.Results[0].Trip.Distance)
	assert.Equal(t, "invalid_category", res.Results[1].Error.Kind)
	assert.Equal(t, "invalid_vertex", res.Results[2].Error.Kind)

	rec = do(t, h, http.MethodPost, "/fleet/trips", `{"vehicles":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanTour(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodPost, "/tours", `{"category":"drone","start":0,"stops":[9,4,6],"depart_at":"2026-01-01T08:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[dto.TourResponse](t, rec)
	require.Len(t, res.Stops, 3)
	assert.Equal(t, "Hospital", res.Stops[0].Location.Name)
	assert.Equal(t, 124, res.TotalDistance)
	assert.Equal(t, 124*3600/80, res.TotalDurationSeconds)

	rec = do(t, h, http.MethodPost, "/tours", `{"category":"car","stops":[1]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodDelete, "/locations", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPlanTourTooLong(t *testing.T) {
	names := domain.NewLocationTable([]domain.Location{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}})
	provider := distance.NewMockDistanceProvider([]distance.MockPair{{From: 0, To: 1, Distance: 200_000_000}})
	h := NewRouter(Deps{Locations: names, Provider: provider})

	rec := do(t, h, http.MethodPost, "/tours", `{"category":"car","start":0,"stops":[1]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}
