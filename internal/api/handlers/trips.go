package handlers

import (
	"city-route-service/internal/api/dto"
	"city-route-service/internal/domain"
	"city-route-service/internal/platform/obs"
	"city-route-service/internal/ports"
	"city-route-service/internal/services"
	"log"
	"net/http"
	"strconv"
	"strings"
)

const maxFleetSize = 100

// TripHandler simulates trips and serves the trip log.
// Repo may be nil, in which case trips are not recorded.
type TripHandler struct {
	Locations    *domain.LocationTable
	Provider     ports.DistanceProvider
	Repo         ports.TripRepository
	HistoryLimit int
}

// vehicleFromRequest validates the category and presence of both locations.
func vehicleFromRequest(req dto.TripRequest) (*domain.Vehicle, *domain.InputError) {
	category, err := domain.ParseTransportCategory(req.Category)
	if err != nil {
		return nil, domain.NewInputError(domain.InvalidCategory)
	}
	if req.Start == nil || req.Destination == nil {
		return nil, domain.NewInputError(domain.InvalidVertex)
	}

	name := strings.TrimSpace(req.VehicleName)
	if name == "" {
		name = string(category)
	}

	return domain.NewVehicle(name, category, *req.Start, *req.Destination), nil
}

// Simulate runs one trip and records it when a repository is configured.
// An unreachable destination is a 200 with reachable=false.
func (h *TripHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vehicle, ie := vehicleFromRequest(req)
	if ie != nil {
		writeInputError(w, r, ie)
		return
	}

	trip, err := services.SimulateTrip(r.Context(), vehicle, h.Locations, h.Provider)
	if err != nil {
		writeServiceError(w, r, "simulate trip", err)
		return
	}

	writeJSON(w, r, http.StatusOK, tripResponse(h.Locations, h.record(r, trip), trip))
}

// SimulateFleet runs a batch of trips concurrently.
// Per-vehicle input errors are reported inline and do not fail the batch.
func (h *TripHandler) SimulateFleet(w http.ResponseWriter, r *http.Request) {
	var req dto.FleetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Vehicles) == 0 || len(req.Vehicles) > maxFleetSize {
		writeError(w, r, http.StatusBadRequest, "vehicles must contain between 1 and 100 entries")
		return
	}

	res := dto.FleetResponse{Results: make([]dto.FleetTripResponse, len(req.Vehicles))}

	vehicles := make([]*domain.Vehicle, 0, len(req.Vehicles))
	index := make([]int, 0, len(req.Vehicles))
	for i, vr := range req.Vehicles {
		v, ie := vehicleFromRequest(vr)
		if ie != nil {
			body := inputErrorBody(ie)
			res.Results[i].Error = &body
			continue
		}
		vehicles = append(vehicles, v)
		index = append(index, i)
	}

	results, err := services.SimulateFleet(r.Context(), vehicles, h.Locations, h.Provider, 0)
	if err != nil {
		writeServiceError(w, r, "simulate fleet", err)
		return
	}

	for j, fr := range results {
		i := index[j]
		if fr.Err != nil {
			ie, _ := domain.AsInputError(fr.Err)
			body := inputErrorBody(ie)
			res.Results[i].Error = &body
			continue
		}
		tr := tripResponse(h.Locations, h.record(r, fr.Trip), fr.Trip)
		res.Results[i].Trip = &tr
	}

	writeJSON(w, r, http.StatusOK, res)
}

// List returns the most recent recorded trips.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeError(w, r, http.StatusNotImplemented, "trip log is not configured")
		return
	}

	limit := h.HistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	trips, err := h.Repo.ListTrips(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "list trips", err)
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, tripResponse(h.Locations, 0, t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// record saves the trip and returns its id, or 0 when there is no repository
// or saving failed. A failed save does not fail the simulation.
func (h *TripHandler) record(r *http.Request, trip *domain.Trip) int64 {
	if h.Repo == nil {
		return 0
	}

	id, err := h.Repo.SaveTrip(r.Context(), trip)
	if err != nil {
		log.Printf("req_id=%s save trip failed: %v", obs.RequestID(r.Context()), err)
		return 0
	}
	return id
}
