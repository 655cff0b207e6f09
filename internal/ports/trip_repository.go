package ports

import (
	"city-route-service/internal/domain"
	"context"
)

// TripRepository records simulated trips.
type TripRepository interface {
	SaveTrip(ctx context.Context, trip *domain.Trip) (int64, error)
	ListTrips(ctx context.Context, limit int) ([]*domain.Trip, error)
}
