package handlers

import (
	"city-route-service/internal/api/dto"
	"city-route-service/internal/domain"
	"city-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("req_id=%s encode failed: method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]dto.ErrorBody{"error": {Message: msg}})
}

// writeInputError reports a rejected user value as 400 with its kind.
func writeInputError(w http.ResponseWriter, r *http.Request, ie *domain.InputError) {
	writeJSON(w, r, http.StatusBadRequest, map[string]dto.ErrorBody{"error": inputErrorBody(ie)})
}

func inputErrorBody(ie *domain.InputError) dto.ErrorBody {
	return dto.ErrorBody{Kind: ie.Kind.String(), Message: ie.Message}
}

// writeServiceError maps input errors to 400 and everything else to 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if ie, ok := domain.AsInputError(err); ok {
		writeInputError(w, r, ie)
		return
	}

	log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads exactly one JSON object and rejects unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// pathInt parses a numeric route variable. Non-numbers are reported as unknown locations.
func pathInt(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, false
	}
	return n, true
}

func place(names *domain.LocationTable, id int) dto.PlaceRef {
	return dto.PlaceRef{ID: id, Name: names.NameOr(id, "")}
}

func optionalInt(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func tripResponse(names *domain.LocationTable, id int64, t *domain.Trip) dto.TripResponse {
	return dto.TripResponse{
		ID:          id,
		VehicleName: t.VehicleName,
		Category:    string(t.Category),
		From:        place(names, t.From),
		To:          place(names, t.To),
		Reachable:   t.Reachable,
		Distance:    optionalInt(t.Distance, t.Reachable),
		ETAHours:    optionalInt(t.ETAHours, t.Reachable),
		Path:        t.Path,
		SimulatedAt: t.SimulatedAt,
	}
}
