package dto

import "time"

type TourRequest struct {
	VehicleName   string     `json:"vehicle_name"`
	Category      string     `json:"category"`
	Start         *int       `json:"start"`
	Stops         []int      `json:"stops"`
	DepartAt      *time.Time `json:"depart_at"`
	ReturnToStart bool       `json:"return_to_start"`
}

type TourStopResponse struct {
	Location PlaceRef  `json:"location"`
	ArriveAt time.Time `json:"arrive_at"`
	Distance int       `json:"distance"`
}

type TourResponse struct {
	VehicleName          string             `json:"vehicle_name"`
	Category             string             `json:"category"`
	Start                PlaceRef           `json:"start"`
	DepartAt             time.Time          `json:"depart_at"`
	ReturnToStart        bool               `json:"return_to_start"`
	TotalDistance        int                `json:"total_distance"`
	TotalDurationSeconds int                `json:"total_duration_seconds"`
	Stops                []TourStopResponse `json:"stops"`
}
