// SPDX-License-Identifier: MIT
//
// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm with negative-cycle detection and isolation.
//
// Complexity:
//
//   - Time:  O(V·E) for the relaxation rounds, O(E) for the detection pass,
//     O(V) per isolation attempt.
//   - Space: O(V + E): the edge list is materialised once so every round
//     scans the same order.
//
// Notes on implementation choices:
//
//   - Rounds stop early after the first round without an update; the final
//     distances are identical with or without the early exit.
//   - The detection pass never mutates Dist or Prev. Isolation works on a
//     private copy of Prev with the witness relaxation applied.
//   - A cycle in the predecessor graph is always negative, so a witness is
//     reported only once its back-walk closes such a cycle.
package bellmanford

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/internal/logging"
)

// Run computes distances from source on g with the textbook V−1 round bound
// and one detection pass.
//
// Returns a Result whose Dist equals the true shortest distances when no
// negative cycle is reachable from source (Witness == nil, Cycle empty).
// When one is reachable, Dist is the state after the V−1 bound, Witness is
// the first still-relaxable edge and Cycle is non-empty.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. 0 ≤ source < V (core.ErrInvalidVertex).
//
// Complexity: O(V·E) time, O(V + E) space.
func Run(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return run(g, source, g.VertexCount()-1, opts)
}

// RunBounded is the partial-convergence query: it performs at most rounds
// relaxation rounds before the detection pass.
//
// With rounds ≥ V−1 it behaves exactly like Run. With fewer rounds an edge
// may still be relaxable simply because distances have not converged yet;
// such an edge only becomes the Witness if its back-walk closes a
// predecessor cycle. Otherwise Witness is nil and Converged is false.
//
// Errors: ErrNilGraph, ErrBadRounds, core.ErrInvalidVertex (wrapped).
// Complexity: O(rounds·E) time, O(V + E) space.
func RunBounded(g *core.Graph, source, rounds int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if rounds < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRounds, rounds)
	}

	return run(g, source, rounds, opts)
}

// run validates the source, resolves options and drives the runner.
func run(g *core.Graph, source, limit int, opts []Option) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("bellmanford: source %d: %w", source, core.ErrInvalidVertex)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := newRunner(g, source, cfg)
	r.relaxAll(limit)

	return r.result(), nil
}

// runner holds the mutable state for a single Bellman–Ford execution.
type runner struct {
	n      int
	source int
	edges  []core.Edge // materialised once; every scan sees the same order
	dist   []int64
	prev   []int
	first  []int
	rounds int
	opts   Options
	log    logrus.FieldLogger
	snaps  []Snapshot
}

// newRunner initialises dist[source] = 0, every other slot Unreached, and
// all predecessor slots to NoVertex.
func newRunner(g *core.Graph, source int, opts Options) *runner {
	n := g.VertexCount()
	r := &runner{
		n:      n,
		source: source,
		edges:  g.Edges(),
		dist:   make([]int64, n),
		prev:   make([]int, n),
		first:  make([]int, n),
		opts:   opts,
		log:    logging.For(opts.Logger, "bellmanford"),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Unreached
		r.prev[v] = core.NoVertex
		r.first[v] = core.NoVertex
	}
	r.dist[source] = 0

	r.log.WithFields(logrus.Fields{
		"source":   source,
		"vertices": n,
		"edges":    len(r.edges),
	}).Debug("start")

	return r
}

// relaxAll performs up to limit rounds, stopping after the first round in
// which no edge improved a distance.
func (r *runner) relaxAll(limit int) {
	for round := 1; round <= limit; round++ {
		relaxed := r.relaxRound()
		r.rounds = round
		if r.opts.Snapshots {
			r.snaps = append(r.snaps, Snapshot{
				Round: round,
				Dist:  append([]int64(nil), r.dist...),
				Prev:  append([]int(nil), r.prev...),
			})
		}
		r.log.WithFields(logrus.Fields{"round": round, "relaxed": relaxed}).Debug("round")
		if relaxed == 0 {
			break
		}
	}
}

// relaxRound scans every edge once in enumeration order and returns how many
// relaxations succeeded.
func (r *runner) relaxRound() int {
	relaxed := 0
	for _, e := range r.edges {
		if !r.relaxable(e) {
			continue
		}
		if r.dist[e.To] == core.Unreached {
			r.first[e.To] = e.From
		}
		r.dist[e.To] = r.dist[e.From] + e.Weight
		r.prev[e.To] = e.From
		relaxed++
	}

	return relaxed
}

// relaxable reports whether e would improve dist[e.To].
func (r *runner) relaxable(e core.Edge) bool {
	du := r.dist[e.From]
	return du != core.Unreached && du+e.Weight < r.dist[e.To]
}

// detect performs the single non-mutating detection scan. It returns the
// witness and its cycle, or nil when none exists, plus whether any edge was
// still relaxable.
func (r *runner) detect() (witness *core.Edge, cycle []int, relaxable bool) {
	for _, e := range r.edges {
		if !r.relaxable(e) {
			continue
		}
		relaxable = true
		if cyc, ok := isolateWitness(r.prev, e); ok {
			w := e
			return &w, cyc, true
		}
	}

	return nil, nil, relaxable
}

// result runs the detection pass and assembles the immutable Result.
func (r *runner) result() *Result {
	witness, cycle, relaxable := r.detect()

	res := &Result{
		Dist:      r.dist,
		Prev:      r.prev,
		First:     r.first,
		Witness:   witness,
		Cycle:     cycle,
		Rounds:    r.rounds,
		Converged: !relaxable,
		Snapshots: r.snaps,
	}
	if res.Cycle == nil {
		res.Cycle = []int{}
	}

	entry := r.log.WithFields(logrus.Fields{"rounds": r.rounds, "converged": res.Converged})
	if witness != nil {
		entry = entry.WithFields(logrus.Fields{
			"witness": fmt.Sprintf("%d→%d (%d)", witness.From, witness.To, witness.Weight),
			"cycle":   cycle,
		})
	}
	entry.Debug("done")

	return res
}

// isolateWitness applies the witness relaxation to a private copy of prev
// and isolates the cycle reached from the witness target.
func isolateWitness(prev []int, e core.Edge) ([]int, bool) {
	cp := append([]int(nil), prev...)
	cp[e.To] = e.From

	return IsolateCycle(cp, e.To)
}
