package ports

import "context"

// DistanceCache stores computed distances per origin.
// Missing destinations are simply absent from the GetMany result.
type DistanceCache interface {
	GetMany(ctx context.Context, origin int, destinations []int) (map[int]DistanceResult, error)
	PutMany(ctx context.Context, origin int, results map[int]DistanceResult) error
}
