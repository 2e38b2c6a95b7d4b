// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   - V ≥ 2 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod V for i=0..V-1, closing edge last.
//   - Weights drawn from cfg.weightFn in emission order; a negative
//     constant weight yields a negative cycle through every vertex.
//
// Complexity: O(V) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds the directed ring 0 → 1 → … → V-1 → 0.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			u, v := i, (i+1)%n
			w := cfg.weight()
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
