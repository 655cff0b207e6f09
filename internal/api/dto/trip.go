package dto

import "time"

type TripRequest struct {
	VehicleName string `json:"vehicle_name"`
	Category    string `json:"category"`
	Start       *int   `json:"start"`
	Destination *int   `json:"destination"`
}

type TripResponse struct {
	ID          int64     `json:"id,omitempty"`
	VehicleName string    `json:"vehicle_name"`
	Category    string    `json:"category"`
	From        PlaceRef  `json:"from"`
	To          PlaceRef  `json:"to"`
	Reachable   bool      `json:"reachable"`
	Distance    *int      `json:"distance"`
	ETAHours    *int      `json:"eta_hours"`
	Path        []int     `json:"path,omitempty"`
	SimulatedAt time.Time `json:"simulated_at"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

type FleetRequest struct {
	Vehicles []TripRequest `json:"vehicles"`
}

type FleetTripResponse struct {
	Trip  *TripResponse `json:"trip,omitempty"`
	Error *ErrorBody    `json:"error,omitempty"`
}

type FleetResponse struct {
	Results []FleetTripResponse `json:"results"`
}
