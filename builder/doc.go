// Package builder provides reusable “functional‐options”‐style fixtures for
// the shortest-path engines: deterministic directed graphs over vertices
// [0, V) with configurable, possibly negative, integer weights.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(n, bopts, cons...): creates the graph and applies
//     constructors in order.
//   - Constructors (Constructor implementations):
//     – Path():            0 → 1 → … → V-1.
//     – Cycle():           Path plus the closing edge V-1 → 0.
//     – Complete():        every ordered pair (i,j), i≠j.
//     – RandomSparse(p):   each ordered pair independently with probability p.
//     – Edges(es...):      explicit edges, e.g. a planted negative cycle.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed, WithRand: RNG for stochastic constructors and weights.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value (negative allowed).
//     – UniformWeightFn:   uniform integer ∼U{min..max} (negative allowed).
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical
//     graphs, including edge enumeration order.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is(err, ErrTooFewVertices), ...).
//
// Example:
//
//	g, err := builder.BuildGraph(50,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(-2, 10)},
//	    builder.RandomSparse(0.1),
//	)
package builder
