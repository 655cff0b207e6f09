package services

import (
	"city-route-service/internal/domain"
	"city-route-service/internal/graph"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNoTravelDistance is returned when asked to estimate a negative or unreachable distance.
var ErrNoTravelDistance = errors.New("estimate travel: distance must be a reachable, non-negative value")

// ErrDurationOverflow is returned when a travel time does not fit in a time.Duration.
var ErrDurationOverflow = errors.New("estimate travel: duration overflows time.Duration")

// EstimateTravel returns the travel time in whole hours for distance at the
// category's fixed speed. Remainders are truncated, not rounded: 119 km by car
// (60 km/h) is 1 hour.
func EstimateTravel(distance int, category domain.TransportCategory) (int, error) {
	speed, err := speedOf(distance, category)
	if err != nil {
		return 0, err
	}
	return distance / speed, nil
}

// LegDuration is the exact travel time for distance at the category's speed.
// Tours use it so arrival times do not drift from per-leg truncation.
func LegDuration(distance int, category domain.TransportCategory) (time.Duration, error) {
	speed, err := speedOf(distance, category)
	if err != nil {
		return 0, err
	}

	// Split into whole hours and a remainder so distance*time.Hour is never formed.
	hours, rem := distance/speed, distance%speed
	if int64(hours) > math.MaxInt64/int64(time.Hour) {
		return 0, fmt.Errorf("%w: %d km at %d km/h", ErrDurationOverflow, distance, speed)
	}
	whole := time.Duration(hours) * time.Hour
	part := time.Duration(rem) * time.Hour / time.Duration(speed)
	if whole > math.MaxInt64-part {
		return 0, fmt.Errorf("%w: %d km at %d km/h", ErrDurationOverflow, distance, speed)
	}
	return whole + part, nil
}

func speedOf(distance int, category domain.TransportCategory) (int, error) {
	speed, ok := category.Speed()
	if !ok {
		return 0, domain.NewInputError(domain.InvalidCategory)
	}
	if distance < 0 || distance == graph.Unreachable {
		return 0, fmt.Errorf("%w: got %d", ErrNoTravelDistance, distance)
	}
	return speed, nil
}
