package handlers

import (
	"city-route-service/internal/api/dto"
	"city-route-service/internal/domain"
	"city-route-service/internal/ports"
	"net/http"
)

// CityHandler exposes the read-only city views: categories, locations and distance tables.
type CityHandler struct {
	Locations *domain.LocationTable
	Provider  ports.DistanceProvider
}

func (h *CityHandler) Categories(w http.ResponseWriter, r *http.Request) {
	res := dto.ListCategoriesResponse{Categories: []dto.CategoryResponse{}}
	for _, c := range domain.Categories() {
		speed, _ := c.Speed()
		res.Categories = append(res.Categories, dto.CategoryResponse{Name: string(c), Speed: speed})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *CityHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs := h.Locations.Locations()
	res := dto.ListLocationsResponse{Locations: make([]dto.PlaceRef, 0, len(locs))}
	for _, l := range locs {
		res.Locations = append(res.Locations, dto.PlaceRef{ID: l.ID, Name: l.Name})
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Distances returns the shortest distance from one location to every named location.
func (h *CityHandler) Distances(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok || !h.Locations.Has(id) {
		writeInputError(w, r, domain.NewInputError(domain.InvalidVertex))
		return
	}

	locs := h.Locations.Locations()
	targets := make([]int, 0, len(locs))
	for _, l := range locs {
		targets = append(targets, l.ID)
	}

	results := make(map[int]ports.DistanceResult, len(targets))
	if mp, ok := h.Provider.(ports.DistanceMatrixProvider); ok {
		var err error
		if results, err = mp.GetDistances(r.Context(), id, targets); err != nil {
			writeServiceError(w, r, "distance table", err)
			return
		}
	} else {
		for _, t := range targets {
			res, err := h.Provider.GetDistance(r.Context(), id, t)
			if err != nil {
				writeServiceError(w, r, "distance table", err)
				return
			}
			results[t] = res
		}
	}

	res := dto.DistanceTableResponse{
		Source:    place(h.Locations, id),
		Distances: make([]dto.DistanceEntry, 0, len(targets)),
	}
	for _, t := range targets {
		d := results[t]
		res.Distances = append(res.Distances, dto.DistanceEntry{
			To:       place(h.Locations, t),
			Distance: optionalInt(d.Distance, d.Reachable()),
			Path:     d.Path,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
