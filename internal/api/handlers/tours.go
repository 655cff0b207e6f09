package handlers

import (
	"city-route-service/internal/api/dto"
	"city-route-service/internal/domain"
	"city-route-service/internal/ports"
	"city-route-service/internal/services"
	"errors"
	"net/http"
	"time"
)

const maxTourStops = 50

type TourHandler struct {
	Locations *domain.LocationTable
	Provider  ports.DistanceProvider
}

// Plan orders the requested stops with the nearest-neighbor planner.
func (h *TourHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.TourRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := domain.ParseTransportCategory(req.Category)
	if err != nil {
		writeServiceError(w, r, "plan tour", err)
		return
	}
	if req.Start == nil {
		writeInputError(w, r, domain.NewInputError(domain.InvalidVertex))
		return
	}
	if len(req.Stops) > maxTourStops {
		writeError(w, r, http.StatusBadRequest, "stops must contain at most 50 entries")
		return
	}

	depart := time.Now().UTC()
	if req.DepartAt != nil {
		depart = *req.DepartAt
	}

	plan, err := services.PlanTour(r.Context(), services.TourRequest{
		VehicleName:   req.VehicleName,
		Category:      category,
		Start:         *req.Start,
		Stops:         req.Stops,
		DepartAt:      depart,
		ReturnToStart: req.ReturnToStart,
	}, h.Locations, h.Provider)
	if errors.Is(err, services.ErrUnreachableStop) || errors.Is(err, services.ErrDurationOverflow) {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeServiceError(w, r, "plan tour", err)
		return
	}

	res := dto.TourResponse{
		VehicleName:          plan.VehicleName,
		Category:             string(plan.Category),
		Start:                place(h.Locations, plan.Start),
		DepartAt:             plan.DepartAt,
		ReturnToStart:        plan.ReturnToStart,
		TotalDistance:        plan.TotalDistance,
		TotalDurationSeconds: int(plan.TotalDuration / time.Second),
		Stops:                make([]dto.TourStopResponse, 0, len(plan.Stops)),
	}
	for _, s := range plan.Stops {
		res.Stops = append(res.Stops, dto.TourStopResponse{
			Location: place(h.Locations, s.Location),
			ArriveAt: s.ArriveAt,
			Distance: s.Distance,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
