package distance

import (
	"city-route-service/internal/ports"
	"context"
	"fmt"
	"sync"
)

type MockPair struct {
	From, To int
	Distance int
}

// MockDistanceProvider answers from a fixed set of directed pairs.
// Pairs not listed are an error, not "unreachable".
type MockDistanceProvider struct {
	m map[[2]int]ports.DistanceResult

	mu    sync.Mutex
	calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]int]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[[2]int{p.From, p.To}] = ports.DistanceResult{Distance: p.Distance, Path: []int{p.From, p.To}}
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination int) (ports.DistanceResult, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	r, ok := p.m[[2]int{origin, destination}]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %d -> %d", origin, destination)
	}

	return r, nil
}

// Calls reports how many lookups were made.
func (p *MockDistanceProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
