package graph

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Unreachable is the distance reported for vertices with no path from the source.
const Unreachable = math.MaxInt

var (
	ErrNegativeVertexCount = errors.New("graph: vertex count must be non-negative")
	ErrVertexOutOfRange    = errors.New("graph: vertex out of range")
	ErrNegativeWeight      = errors.New("graph: edge weight must be non-negative")
)

// Edge is one entry of a vertex's adjacency list.
type Edge struct {
	To     int
	Weight int
}

// Undirected, integer-weighted graph over the fixed vertex range [0, n).
//
// The vertex count is fixed at construction and AddEdge is the only mutation.
// Shortest-path queries only take the read lock and keep all working state
// local to the call, so a built graph can serve any number of concurrent queries.
type Graph struct {
	mu    sync.RWMutex
	adj   [][]Edge
	edges int
}

func New(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertexCount, vertexCount)
	}

	return &Graph{adj: make([][]Edge, vertexCount)}, nil
}

func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// EdgeCount returns the number of AddEdge calls that succeeded, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

// Add an undirected edge between u and v.
// Calling it twice for the same pair keeps both edges; the solver prefers the lighter one.
func (g *Graph) AddEdge(u, v, weight int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("add edge: %w", err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("add edge: %w", err)
	}
	if weight < 0 {
		return fmt.Errorf("add edge %d-%d: %w: got %d", u, v, ErrNegativeWeight, weight)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	g.edges++

	return nil
}

// Neighbors returns a copy of the adjacency list of u.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}

	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])
	return out, nil
}

// checkVertex must be called with g.mu held.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adj))
	}
	return nil
}
