package services

import (
	"city-route-service/internal/domain"
	"city-route-service/internal/ports"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const defaultFleetConcurrency = 5

// FleetResult pairs one vehicle's trip with its input error, if any.
type FleetResult struct {
	Vehicle *domain.Vehicle
	Trip    *domain.Trip
	Err     error
}

// SimulateFleet runs SimulateTrip for every vehicle with bounded concurrency.
//
// Results keep the input order. Input errors stay on the vehicle's result and
// do not stop the others; any other error (provider failure, cancelled
// context) cancels the remaining work and is returned.
func SimulateFleet(
	ctx context.Context,
	vehicles []*domain.Vehicle,
	locations *domain.LocationTable,
	provider ports.DistanceProvider,
	concurrency int,
) ([]FleetResult, error) {
	if concurrency <= 0 {
		concurrency = defaultFleetConcurrency
	}

	results := make([]FleetResult, len(vehicles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, v := range vehicles {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			trip, err := SimulateTrip(ctx, v, locations, provider)
			results[i] = FleetResult{Vehicle: v, Trip: trip, Err: err}

			if err != nil {
				if _, ok := domain.AsInputError(err); !ok {
					return fmt.Errorf("simulate fleet: vehicle %q: %w", v.Name, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
