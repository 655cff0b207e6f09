package ports

import (
	"city-route-service/internal/graph"
	"context"
)

// DistanceResult is the shortest road distance between two locations.
// Distance is graph.Unreachable when no path exists.
type DistanceResult struct {
	Distance int   `json:"distance"`
	Path     []int `json:"path,omitempty"`
}

func (r DistanceResult) Reachable() bool { return r.Distance != graph.Unreachable }

// DistanceProvider abstracts where road distances come from.
type DistanceProvider interface {
	GetDistance(ctx context.Context, origin, destination int) (DistanceResult, error)
}
