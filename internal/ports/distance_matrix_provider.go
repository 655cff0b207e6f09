package ports

import "context"

// DistanceMatrixProvider answers one origin against many destinations in a single call.
type DistanceMatrixProvider interface {
	DistanceProvider
	GetDistances(ctx context.Context, origin int, destinations []int) (map[int]DistanceResult, error)
}
