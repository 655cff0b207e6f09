package distance

import (
	"city-route-service/internal/graph"
	"city-route-service/internal/platform/obs"
	"city-route-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
)

// GraphDistanceProvider implements DistanceMatrixProvider over an in-memory road graph.
//
// Each lookup runs at most one shortest-path query per origin. When a cache is
// configured the full distance table of that origin is written back, so later
// lookups from the same origin skip the query. Cache failures are logged and
// the provider falls back to the graph.
//
// The provider is safe for concurrent use as long as the graph is not mutated.
type GraphDistanceProvider struct {
	graph *graph.Graph
	cache ports.DistanceCache
}

func NewGraphDistanceProvider(g *graph.Graph, cache ports.DistanceCache) (*GraphDistanceProvider, error) {
	if g == nil {
		return nil, errors.New("graph distance provider: graph is nil")
	}
	return &GraphDistanceProvider{graph: g, cache: cache}, nil
}

func (p *GraphDistanceProvider) GetDistance(ctx context.Context, origin, destination int) (ports.DistanceResult, error) {
	results, err := p.GetDistances(ctx, origin, []int{destination})
	if err != nil {
		return ports.DistanceResult{}, err
	}
	return results[destination], nil
}

func (p *GraphDistanceProvider) GetDistances(
	ctx context.Context,
	origin int,
	destinations []int,
) (_ map[int]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.graph.GetDistances")(&err)

	n := p.graph.VertexCount()
	for _, d := range append([]int{origin}, destinations...) {
		if d < 0 || d >= n {
			return nil, fmt.Errorf("get distances: %w: %d not in [0, %d)", graph.ErrVertexOutOfRange, d, n)
		}
	}

	out := make(map[int]ports.DistanceResult, len(destinations))
	if len(destinations) == 0 {
		return out, nil
	}

	if p.cache != nil {
		cached, err := p.cache.GetMany(ctx, origin, destinations)
		if err != nil {
			log.Printf("req_id=%s distance cache read failed origin=%d err=%v", obs.RequestID(ctx), origin, err)
		}
		for d, r := range cached {
			out[d] = r
		}
		if len(out) == countUnique(destinations) {
			return out, nil
		}
	}

	table, err := p.graph.ShortestPathFrom(origin)
	if err != nil {
		return nil, fmt.Errorf("get distances from %d: %w", origin, err)
	}

	for _, d := range destinations {
		out[d] = resultFor(table, d)
	}

	if p.cache != nil {
		all := make(map[int]ports.DistanceResult, table.Len())
		for v := 0; v < table.Len(); v++ {
			all[v] = resultFor(table, v)
		}
		if err := p.cache.PutMany(ctx, origin, all); err != nil {
			log.Printf("req_id=%s distance cache write failed origin=%d err=%v", obs.RequestID(ctx), origin, err)
		}
	}

	return out, nil
}

func resultFor(table *graph.DistanceTable, v int) ports.DistanceResult {
	return ports.DistanceResult{Distance: table.Distance(v), Path: table.PathTo(v)}
}

func countUnique(xs []int) int {
	seen := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}
