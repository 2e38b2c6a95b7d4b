// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_edges.go - implementation of Edges(es...) constructor.
//
// Contract:
//   - Emits es in slice order with their own weights; cfg.weightFn is not consulted.
//   - An endpoint outside [0,V) fails with ErrConstructFailed, wrapping
//     core.ErrInvalidVertex; edges before it stay emitted but BuildGraph
//     discards the graph.
//
// Complexity: O(len(es)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor that appends explicit edges, e.g. a planted
// negative cycle on top of a random background.
func Edges(es ...core.Edge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range es {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: %w: %w", methodEdges, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
