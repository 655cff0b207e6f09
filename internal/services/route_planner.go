package services

import (
	"city-route-service/internal/domain"
	"city-route-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrUnreachableStop is returned when a tour stop cannot be reached from the
// vehicle's current position.
var ErrUnreachableStop = errors.New("plan tour: stop is unreachable")

type TourRequest struct {
	VehicleName   string
	Category      domain.TransportCategory
	Start         int
	Stops         []int
	DepartAt      time.Time
	ReturnToStart bool
}

// Plan a multi-stop tour using a greedy nearest-neighbor algorithm.
//
// At each step the closest remaining stop by road distance is visited next.
// It does not attempt global route optimization (e.g., TSP solvers).
// The design prioritizes determinism and simplicity over optimality.
func PlanTour(
	ctx context.Context,
	req TourRequest,
	locations *domain.LocationTable,
	provider ports.DistanceProvider,
) (*domain.TourPlan, error) {
	if locations == nil || provider == nil {
		return nil, errors.New("plan tour: locations and provider must be non-nil")
	}
	if !req.Category.Valid() {
		return nil, domain.NewInputError(domain.InvalidCategory)
	}
	if err := locations.Require(req.Start); err != nil {
		return nil, err
	}

	remaining := make(map[int]struct{}, len(req.Stops))
	for _, s := range req.Stops {
		if err := locations.Require(s); err != nil {
			return nil, err
		}
		if s == req.Start {
			continue
		}
		remaining[s] = struct{}{}
	}

	plan := &domain.TourPlan{
		VehicleName:   req.VehicleName,
		Category:      req.Category,
		Start:         req.Start,
		DepartAt:      req.DepartAt,
		Stops:         []domain.TourStop{},
		ReturnToStart: req.ReturnToStart,
	}

	currentTime := req.DepartAt
	current := req.Start

	for len(remaining) > 0 {
		candidates := make([]int, 0, len(remaining))
		for s := range remaining {
			candidates = append(candidates, s)
		}

		results, err := lookupDistances(ctx, provider, current, candidates)
		if err != nil {
			return nil, fmt.Errorf("plan tour: %w", err)
		}

		best := -1
		var bestResult ports.DistanceResult
		// Select next stop by minimum road distance (greedy step).
		for _, s := range candidates {
			r := results[s]
			if !r.Reachable() {
				continue
			}
			// Tie-breaker ensures deterministic ordering when distances are equal.
			if best == -1 || r.Distance < bestResult.Distance || (r.Distance == bestResult.Distance && s < best) {
				best = s
				bestResult = r
			}
		}

		if best == -1 {
			return nil, fmt.Errorf("%w: none of %d remaining stops reachable from %d", ErrUnreachableStop, len(candidates), current)
		}

		leg, err := LegDuration(bestResult.Distance, req.Category)
		if err != nil {
			return nil, fmt.Errorf("plan tour: leg %d -> %d: %w", current, best, err)
		}
		if plan.TotalDuration > math.MaxInt64-leg {
			return nil, fmt.Errorf("plan tour: leg %d -> %d: %w", current, best, ErrDurationOverflow)
		}

		currentTime = currentTime.Add(leg)
		plan.TotalDuration += leg
		plan.TotalDistance += bestResult.Distance
		plan.Stops = append(plan.Stops, domain.TourStop{
			Location: best,
			ArriveAt: currentTime,
			Distance: plan.TotalDistance,
		})

		delete(remaining, best)
		current = best
	}

	// Optionally includes return leg to start for total tour metrics.
	if req.ReturnToStart && current != req.Start {
		back, err := provider.GetDistance(ctx, current, req.Start)
		if err != nil {
			return nil, fmt.Errorf("plan tour: get distance return leg from %d to %d: %w", current, req.Start, err)
		}
		if !back.Reachable() {
			return nil, fmt.Errorf("%w: cannot return from %d to %d", ErrUnreachableStop, current, req.Start)
		}

		leg, err := LegDuration(back.Distance, req.Category)
		if err != nil {
			return nil, fmt.Errorf("plan tour: return leg: %w", err)
		}
		if plan.TotalDuration > math.MaxInt64-leg {
			return nil, fmt.Errorf("plan tour: return leg: %w", ErrDurationOverflow)
		}
		plan.TotalDuration += leg
		plan.TotalDistance += back.Distance
	}

	return plan, nil
}

// Prefer batched distance lookups when supported.
func lookupDistances(
	ctx context.Context,
	provider ports.DistanceProvider,
	origin int,
	destinations []int,
) (map[int]ports.DistanceResult, error) {
	if mp, ok := provider.(ports.DistanceMatrixProvider); ok {
		results, err := mp.GetDistances(ctx, origin, destinations)
		if err != nil {
			return nil, fmt.Errorf("get distances matrix from %d: %w", origin, err)
		}
		for _, d := range destinations {
			if _, ok := results[d]; !ok {
				return nil, fmt.Errorf("missing distance result from %d to %d", origin, d)
			}
		}
		return results, nil
	}

	results := make(map[int]ports.DistanceResult, len(destinations))
	for _, d := range destinations {
		r, err := provider.GetDistance(ctx, origin, d)
		if err != nil {
			return nil, fmt.Errorf("get distance from %d to %d: %w", origin, d, err)
		}
		results[d] = r
	}
	return results, nil
}
