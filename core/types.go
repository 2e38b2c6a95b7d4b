// SPDX-License-Identifier: MIT
//
// Package core defines the directed, integer-weighted Graph consumed by the
// shortest-path engines, together with the Edge and Arc value types, the
// shared sentinels (Unreached, NoVertex) and the sentinel errors.
//
// This file declares the types, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidVertex - a vertex id lies outside [0, V).
//	ErrEdgeNotFound  - a walk step has no matching edge.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates that a vertex id lies outside [0, V).
	ErrInvalidVertex = errors.New("core: vertex out of range")

	// ErrEdgeNotFound indicates that no edge exists between two consecutive
	// vertices of a walk.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

const (
	// Unreached marks a vertex with no known path from the source.
	// It compares strictly greater than every finite distance.
	Unreached int64 = math.MaxInt64

	// NoVertex is the "none" slot of a predecessor vector.
	NoVertex = -1
)

// Edge is an ordered triple (From, To, Weight).
//
// Parallel edges between the same ordered pair are allowed; each one is a
// distinct Edge and is relaxed independently.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the signed cost of traversing the edge.
	Weight int64
}

// Arc is the half of an Edge stored in its source's adjacency list.
type Arc struct {
	To     int   // destination vertex id
	Weight int64 // signed cost
}

// Graph is a directed weighted adjacency structure over vertices [0, V).
//
// Vertices have no lifecycle of their own: a vertex exists exactly when its
// id is below V. Self-loops and parallel edges are always permitted.
// mu guards adj, sources and edgeCount; n is immutable after construction.
type Graph struct {
	mu sync.RWMutex

	n         int     // vertex count V
	edgeCount int     // total arcs across all adjacency lists
	adj       [][]Arc // adj[u] = outgoing arcs of u in insertion order
	sources   []int   // vertices with at least one arc, in order of their first arc
}

// NewGraph creates a Graph with n vertices and no edges.
// Panics if n < 0, the same way option constructors reject meaningless input.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		panic("core: NewGraph(n<0)")
	}

	return &Graph{
		n:   n,
		adj: make([][]Arc, n),
	}
}

// FromEdges builds a Graph with n vertices and the given edges, inserted in
// slice order. Panics if n < 0.
//
// Errors: ErrInvalidVertex (wrapped) for the first edge with an endpoint
// outside [0, n).
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g := NewGraph(n)
	if err := g.AddEdges(edges...); err != nil {
		return nil, err
	}

	return g, nil
}
