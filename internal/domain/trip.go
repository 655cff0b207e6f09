package domain

import "time"

// Trip is the outcome of simulating one vehicle between two locations.
// When Reachable is false no path exists and Distance, ETAHours and Path are unset.
type Trip struct {
	VehicleName string
	Category    TransportCategory
	From        int
	To          int
	Reachable   bool
	Distance    int
	ETAHours    int
	Path        []int
	SimulatedAt time.Time
}

// A stop on a multi-location tour.
type TourStop struct {
	Location int
	ArriveAt time.Time
	// Distance travelled from the tour start up to and including this stop.
	Distance int
}

// TourPlan is the ordered visit sequence for one vehicle.
type TourPlan struct {
	VehicleName   string
	Category      TransportCategory
	Start         int
	DepartAt      time.Time
	Stops         []TourStop
	ReturnToStart bool
	TotalDistance int
	TotalDuration time.Duration
}
