package api

import (
	"city-route-service/internal/api/handlers"
	"city-route-service/internal/domain"
	"city-route-service/internal/ports"
	"net/http"

	"github.com/gorilla/mux"
)

// Deps are the collaborators the HTTP layer needs. Trips may be nil.
type Deps struct {
	Locations    *domain.LocationTable
	Provider     ports.DistanceProvider
	Trips        ports.TripRepository
	HistoryLimit int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	r := mux.NewRouter()

	cityHandler := &handlers.CityHandler{Locations: deps.Locations, Provider: deps.Provider}
	tripHandler := &handlers.TripHandler{
		Locations:    deps.Locations,
		Provider:     deps.Provider,
		Repo:         deps.Trips,
		HistoryLimit: deps.HistoryLimit,
	}
	tourHandler := &handlers.TourHandler{Locations: deps.Locations, Provider: deps.Provider}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/categories", cityHandler.Categories).Methods(http.MethodGet)
	r.HandleFunc("/locations", cityHandler.ListLocations).Methods(http.MethodGet)
	r.HandleFunc("/locations/{id}/distances", cityHandler.Distances).Methods(http.MethodGet)
	r.HandleFunc("/trips", tripHandler.Simulate).Methods(http.MethodPost)
	r.HandleFunc("/trips", tripHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/fleet/trips", tripHandler.SimulateFleet).Methods(http.MethodPost)
	r.HandleFunc("/tours", tourHandler.Plan).Methods(http.MethodPost)

	r.Use(requestIDMiddleware, loggingMiddleware)

	return r
}
