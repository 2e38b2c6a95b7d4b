// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: mutation and read-only queries on Graph.
// Determinism:
//   - Neighbors(u) returns arcs in insertion order.
//   - Edges() groups by source in order of each source's first edge,
//     insertion order within a source.
// Concurrency:
//   - Mutations take the write lock, queries take the read lock.

package core

import (
	"fmt"
	"strings"
)

// VertexCount returns V.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.n
}

// HasVertex reports whether 0 ≤ v < V.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}

// EdgeCount returns the number of edges, parallel edges counted separately.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AddEdge appends the directed edge from→to with weight w.
//
// Errors: ErrInvalidVertex (wrapped with the offending id) if either endpoint
// lies outside [0, V). On error the graph is unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w int64) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("core: AddEdge(%d→%d): from=%d: %w", from, to, from, ErrInvalidVertex)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("core: AddEdge(%d→%d): to=%d: %w", from, to, to, ErrInvalidVertex)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.adj[from]) == 0 {
		g.sources = append(g.sources, from)
	}
	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: w})
	g.edgeCount++

	return nil
}

// AddEdges inserts edges in slice order, stopping at the first failure.
// Edges before the failing one remain in the graph.
// Complexity: O(len(edges)).
func (g *Graph) AddEdges(edges ...Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// Neighbors returns a copy of the outgoing arcs of u in insertion order.
//
// Errors: ErrInvalidVertex (wrapped) if u lies outside [0, V).
// Complexity: O(deg⁺(u)).
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", u, ErrInvalidVertex)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns every edge of the graph.
//
// Sources appear in the order they received their first edge, and each
// source lists its arcs in insertion order. Adding 2→1 before 1→3 therefore
// enumerates 2→1 first even though 1 < 2. Bellman–Ford intermediate tables
// depend on this order, so it is stable across calls on an unmodified graph.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.sources {
		for _, a := range g.adj[u] {
			out = append(out, Edge{From: u, To: a.To, Weight: a.Weight})
		}
	}

	return out
}

// HasNegativeEdge returns the first edge, in Edges() order, whose weight is
// negative. ok is false when every weight is non-negative.
// Complexity: O(E).
func (g *Graph) HasNegativeEdge() (e Edge, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, u := range g.sources {
		for _, a := range g.adj[u] {
			if a.Weight < 0 {
				return Edge{From: u, To: a.To, Weight: a.Weight}, true
			}
		}
	}

	return Edge{}, false
}

// WalkWeight sums the edge weights along walk, taking the cheapest of any
// parallel edges at each step. A walk of zero or one vertex weighs 0.
//
// Errors:
//   - ErrInvalidVertex if a vertex of the walk lies outside [0, V).
//   - ErrEdgeNotFound if two consecutive vertices are not joined by an edge.
//
// Complexity: O(Σ deg⁺(walk[i])).
func (g *Graph) WalkWeight(walk []int) (int64, error) {
	for _, v := range walk {
		if !g.HasVertex(v) {
			return 0, fmt.Errorf("core: WalkWeight: vertex %d: %w", v, ErrInvalidVertex)
		}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int64
	for i := 1; i < len(walk); i++ {
		u, v := walk[i-1], walk[i]
		best, found := int64(0), false
		for _, a := range g.adj[u] {
			if a.To == v && (!found || a.Weight < best) {
				best, found = a.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("core: WalkWeight: step %d→%d: %w", u, v, ErrEdgeNotFound)
		}
		total += best
	}

	return total, nil
}

// Clone returns a deep copy of g. The copy shares no slices with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(g.n)
	for u, arcs := range g.adj {
		if len(arcs) == 0 {
			continue
		}
		c.adj[u] = append(make([]Arc, 0, len(arcs)), arcs...)
	}
	c.sources = append([]int(nil), g.sources...)
	c.edgeCount = g.edgeCount

	return c
}

// String renders one "u → v (w)" line per edge in Edges() order.
func (g *Graph) String() string {
	var b strings.Builder
	for i, e := range g.Edges() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d → %d (%d)", e.From, e.To, e.Weight)
	}

	return b.String()
}
