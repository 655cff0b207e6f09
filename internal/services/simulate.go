package services

import (
	"city-route-service/internal/domain"
	"city-route-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"time"
)

// SimulateTrip moves vehicle from its location to its destination.
//
// The category and both locations are validated against the caller's name
// table first; failures are *domain.InputError. A destination with no path is
// not an error: the returned trip has Reachable=false and the vehicle stays put.
func SimulateTrip(
	ctx context.Context,
	vehicle *domain.Vehicle,
	locations *domain.LocationTable,
	provider ports.DistanceProvider,
) (*domain.Trip, error) {
	if vehicle == nil {
		return nil, errors.New("simulate trip: vehicle must be non-nil")
	}
	if locations == nil || provider == nil {
		return nil, errors.New("simulate trip: locations and provider must be non-nil")
	}

	if !vehicle.Category.Valid() {
		return nil, domain.NewInputError(domain.InvalidCategory)
	}
	if err := locations.Require(vehicle.Location); err != nil {
		return nil, err
	}
	if err := locations.Require(vehicle.Destination); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		VehicleName: vehicle.Name,
		Category:    vehicle.Category,
		From:        vehicle.Location,
		To:          vehicle.Destination,
		SimulatedAt: time.Now().UTC(),
	}

	r, err := provider.GetDistance(ctx, vehicle.Location, vehicle.Destination)
	if err != nil {
		return nil, fmt.Errorf("simulate trip: get distance %d -> %d: %w", vehicle.Location, vehicle.Destination, err)
	}
	if !r.Reachable() {
		return trip, nil
	}

	eta, err := EstimateTravel(r.Distance, vehicle.Category)
	if err != nil {
		return nil, fmt.Errorf("simulate trip: %w", err)
	}

	trip.Reachable = true
	trip.Distance = r.Distance
	trip.ETAHours = eta
	trip.Path = r.Path

	vehicle.Arrive()

	return trip, nil
}
