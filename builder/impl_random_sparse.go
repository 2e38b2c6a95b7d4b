// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Model: Erdős–Rényi-like generator over ordered pairs (i,j), i≠j; each edge
// is included independently with probability p. No self-loops, no parallel
// edges.
//
// Contract:
//   - V ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(V²) Bernoulli trials, O(1) extra space.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc.
//   - The weight is drawn right after a successful trial, so a fixed seed
//     fixes both the edge set and the weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// with independent edge probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (no side effects on invalid input).
		n := g.VertexCount()
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Sample ordered pairs in a stable order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !include(cfg, p) {
					continue
				}
				w := cfg.weight()
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomSparse, i, j, w, err)
				}
			}
		}

		return nil
	}
}

// include performs one Bernoulli trial. Without an RNG only p ∈ {0,1} reach
// here, and the outcome is fixed.
func include(cfg builderConfig, p float64) bool {
	if cfg.rng == nil {
		return p == probMax
	}

	return cfg.rng.Float64() < p
}
