package graph

import (
	"container/heap"
	"fmt"
)

// DistanceTable is the result of one shortest-path query.
// Distances and predecessors are indexed by vertex; unreached vertices hold Unreachable.
type DistanceTable struct {
	source int
	dist   []int
	prev   []int
}

func (t *DistanceTable) Source() int { return t.source }

func (t *DistanceTable) Len() int { return len(t.dist) }

// Distance returns the shortest distance to v, or Unreachable when v has no
// path from the source or is outside the table.
func (t *DistanceTable) Distance(v int) int {
	if v < 0 || v >= len(t.dist) {
		return Unreachable
	}
	return t.dist[v]
}

func (t *DistanceTable) Reachable(v int) bool {
	return t.Distance(v) != Unreachable
}

// PathTo reconstructs the vertices from the source to v, both included.
// It returns nil when v is unreachable.
func (t *DistanceTable) PathTo(v int) []int {
	if !t.Reachable(v) {
		return nil
	}

	path := []int{}
	for cur := v; cur != -1; cur = t.prev[cur] {
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distances returns a copy of the raw distance slice.
func (t *DistanceTable) Distances() []int {
	out := make([]int, len(t.dist))
	copy(out, t.dist)
	return out
}

// ShortestPathFrom runs Dijkstra's algorithm from source.
//
// Stale heap entries are skipped when popped (lazy deletion) instead of
// being decreased in place. The source is validated before any heap work.
//
// Complexity: O((E + V) log V) time, O(V + E) space for the heap in the worst case.
func (g *Graph) ShortestPathFrom(source int) (*DistanceTable, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(source); err != nil {
		return nil, fmt.Errorf("shortest path: %w", err)
	}

	n := len(g.adj)
	t := &DistanceTable{
		source: source,
		dist:   make([]int, n),
		prev:   make([]int, n),
	}
	for i := range t.dist {
		t.dist[i] = Unreachable
		t.prev[i] = -1
	}
	t.dist[source] = 0

	pq := &vertexPQ{{vertex: source, dist: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(vertexItem)
		u, d := cur.vertex, cur.dist

		// Superseded by a later relaxation.
		if d > t.dist[u] {
			continue
		}

		for _, e := range g.adj[u] {
			// Saturate instead of wrapping around on very large weights.
			if e.Weight >= Unreachable-d {
				continue
			}

			candidate := d + e.Weight
			if candidate < t.dist[e.To] {
				t.dist[e.To] = candidate
				t.prev[e.To] = u
				heap.Push(pq, vertexItem{vertex: e.To, dist: candidate})
			}
		}
	}

	return t, nil
}

type vertexItem struct {
	vertex int
	dist   int
}

// vertexPQ is a binary min-heap ordered by tentative distance.
type vertexPQ []vertexItem

func (p vertexPQ) Len() int           { return len(p) }
func (p vertexPQ) Less(i, j int) bool { return p[i].dist < p[j].dist }
func (p vertexPQ) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func (p *vertexPQ) Push(x any) {
	*p = append(*p, x.(vertexItem))
}

func (p *vertexPQ) Pop() any {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]
	return item
}
