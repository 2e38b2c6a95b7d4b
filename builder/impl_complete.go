// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_complete.go — implementation of Complete() constructor.
//
// Contract:
//   • V ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i,j), i≠j, lexicographically; no self-loops.
//   • Each direction draws its own weight from cfg.weightFn.
//
// Complexity: O(V²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed graph on V vertices.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				w := cfg.weight()
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodComplete, i, j, w, err)
				}
			}
		}

		return nil
	}
}
