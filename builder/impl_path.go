// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_path.go - implementation of Path() constructor.
//
// Contract:
//   - V ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..V-1 in stable increasing order.
//   - Weights drawn from cfg.weightFn in emission order.
//
// Complexity: O(V) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that chains every vertex: 0 → 1 → … → V-1.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 1; i < n; i++ {
			w := cfg.weight()
			if err := g.AddEdge(i-1, i, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodPath, i-1, i, w, err)
			}
		}

		return nil
	}
}
