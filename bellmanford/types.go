// Package bellmanford defines the result, snapshot and option types of the
// Bellman–Ford shortest-path engine.
//
// Options:
//
//	– Snapshots: record a copy of the distance and predecessor vectors after
//	             every relaxation round (Result.Snapshots).
//	– Logger:    logrus.FieldLogger receiving debug diagnostics; discards by default.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrBadRounds     if RunBounded is asked for a negative number of rounds.
//	– core.ErrInvalidVertex (wrapped) if the source lies outside [0, V).
package bellmanford

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sssp/core"
)

// Sentinel errors returned by the Bellman–Ford engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to the engine.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrBadRounds indicates a negative round bound passed to RunBounded.
	ErrBadRounds = errors.New("bellmanford: rounds must be non-negative")
)

// Result is the outcome of one engine invocation. Every slice is freshly
// allocated and owned by the Result; the engine never touches it again.
type Result struct {
	// Dist[v] is the distance estimate of v at the convergence boundary,
	// core.Unreached if no path from the source was found.
	Dist []int64

	// Prev[v] is the predecessor recorded by the last improvement of Dist[v],
	// core.NoVertex if Dist[v] was never improved (always for the source
	// unless a negative cycle runs through it).
	Prev []int

	// First[v] is the predecessor that first moved Dist[v] off Unreached.
	// It forms a tree rooted at the source and never contains a cycle.
	First []int

	// Witness is the first edge, in enumeration order, that was still
	// relaxable after the relaxation rounds and whose predecessor back-walk
	// closed a cycle. Nil when no negative cycle is reachable.
	Witness *core.Edge

	// Cycle lists the vertices of the isolated negative cycle in ascending
	// order. Empty when Witness is nil.
	Cycle []int

	// Rounds is the number of relaxation rounds actually performed,
	// including a final round without updates when the early exit fired.
	Rounds int

	// Converged reports that the detection pass found no relaxable edge.
	Converged bool

	// Snapshots holds per-round copies when WithSnapshots was given.
	Snapshots []Snapshot
}

// HasNegativeCycle reports whether a negative cycle was isolated.
func (r *Result) HasNegativeCycle() bool {
	return r.Witness != nil
}

// Reached reports whether v has a finite distance estimate.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != core.Unreached
}

// InCycle reports whether v belongs to the isolated negative cycle.
func (r *Result) InCycle(v int) bool {
	for _, c := range r.Cycle {
		if c == v {
			return true
		}
	}

	return false
}

// Snapshot is an immutable copy of the engine state after one round.
type Snapshot struct {
	Round int     // 1-based round number
	Dist  []int64 // copy of the distance vector
	Prev  []int   // copy of the predecessor vector
}

// Options configures the engine.
type Options struct {
	Snapshots bool               // record per-round snapshots
	Logger    logrus.FieldLogger // debug diagnostics sink
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithSnapshots enables per-round snapshots in Result.Snapshots.
// Memory grows by O(V) per performed round.
func WithSnapshots() Option {
	return func(o *Options) {
		o.Snapshots = true
	}
}

// WithLogger routes debug diagnostics to l. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("bellmanford: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with snapshots disabled and no logger
// (diagnostics are discarded).
func DefaultOptions() Options {
	return Options{
		Snapshots: false,
		Logger:    nil,
	}
}
