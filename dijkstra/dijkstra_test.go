// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, MaxDistance, InfEdgeThreshold, the negative-edge guard
// and edge cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

const (
	inf = core.Unreached
	nv  = core.NoVertex
)

func mustGraph(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, core.Edge{From: 0, To: 1, Weight: 1})
	_, _, err := dijkstra.Dijkstra(g, 2)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	_, _, err = dijkstra.Dijkstra(core.NewGraph(0), 0)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestDijkstra_ValidationOrder(t *testing.T) {
	// An invalid source is reported before a negative edge.
	g := mustGraph(t, 2, core.Edge{From: 0, To: 1, Weight: -1})
	_, _, err := dijkstra.Dijkstra(g, 5)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
	assert.NotErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_NegativeWeightScenario(t *testing.T) {
	g := mustGraph(t, 6,
		core.Edge{From: 0, To: 2, Weight: 5},
		core.Edge{From: 0, To: 1, Weight: 4},
		core.Edge{From: 2, To: 1, Weight: -2},
		core.Edge{From: 1, To: 3, Weight: 3},
		core.Edge{From: 3, To: 4, Weight: 2},
		core.Edge{From: 4, To: 5, Weight: -1},
		core.Edge{From: 5, To: 3, Weight: -2},
	)
	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.EqualError(t, err, "dijkstra: negative edge weight encountered: edge 2→1 weight=-2")
	assert.Nil(t, dist)
	assert.Nil(t, prev)
}

func TestDijkstra_NegativeEdgeUnreachableStillRejected(t *testing.T) {
	// The guard is global: a negative edge anywhere fails the call.
	g := mustGraph(t, 4,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 2, To: 3, Weight: -1},
	)
	_, _, err := dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithLogger(nil) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(core.NewGraph(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, dist)
	assert.Equal(t, []int{nv}, prev)
}

func TestDijkstra_Triangle(t *testing.T) {
	// 0→1 (1), 1→2 (2), 0→2 (5): the detour wins.
	g := mustGraph(t, 3,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 5},
	)
	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, dist)
	assert.Equal(t, []int{nv, 0, 1}, prev)
}

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	g := mustGraph(t, 6,
		core.Edge{From: 0, To: 1, Weight: 7},
		core.Edge{From: 0, To: 2, Weight: 9},
		core.Edge{From: 0, To: 5, Weight: 14},
		core.Edge{From: 1, To: 2, Weight: 10},
		core.Edge{From: 1, To: 3, Weight: 15},
		core.Edge{From: 2, To: 3, Weight: 11},
		core.Edge{From: 2, To: 5, Weight: 2},
		core.Edge{From: 3, To: 4, Weight: 6},
		core.Edge{From: 5, To: 4, Weight: 9},
	)
	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 7, 9, 20, 20, 11}, dist)
	assert.Equal(t, []int{nv, 0, 0, 2, 5, 2}, prev)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := mustGraph(t, 4,
		core.Edge{From: 0, To: 1, Weight: 3},
		core.Edge{From: 2, To: 3, Weight: 1},
		core.Edge{From: 3, To: 0, Weight: 1}, // into the source, not out of it
	)
	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, inf, inf}, dist)
	assert.Equal(t, []int{nv, 0, nv, nv}, prev)
}

func TestDijkstra_ZeroWeightsAndSelfLoop(t *testing.T) {
	g := mustGraph(t, 3,
		core.Edge{From: 0, To: 0, Weight: 0},
		core.Edge{From: 0, To: 1, Weight: 0},
		core.Edge{From: 1, To: 2, Weight: 0},
		core.Edge{From: 2, To: 0, Weight: 0},
	)
	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, dist)
	assert.Equal(t, []int{nv, 0, 1}, prev)
}

func TestDijkstra_ParallelEdgesCheapestWins(t *testing.T) {
	g := mustGraph(t, 2,
		core.Edge{From: 0, To: 1, Weight: 8},
		core.Edge{From: 0, To: 1, Weight: 3},
		core.Edge{From: 0, To: 1, Weight: 5},
	)
	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3}, dist)
}

func TestDijkstra_StaleEntriesDiscarded(t *testing.T) {
	// Vertex 3 is pushed three times with shrinking distances.
	g := mustGraph(t, 4,
		core.Edge{From: 0, To: 3, Weight: 10},
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 3, Weight: 7},
		core.Edge{From: 1, To: 2, Weight: 1},
		core.Edge{From: 2, To: 3, Weight: 1},
	)
	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3}, dist)
	assert.Equal(t, []int{nv, 0, 1, 2}, prev)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func chain(t *testing.T) *core.Graph {
	// 0 →(2) 1 →(2) 2 →(2) 3 →(2) 4
	return mustGraph(t, 5,
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 1, To: 2, Weight: 2},
		core.Edge{From: 2, To: 3, Weight: 2},
		core.Edge{From: 3, To: 4, Weight: 2},
	)
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(chain(t), 0, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4, inf, inf}, dist)
	assert.Equal(t, []int{nv, 0, 1, nv, nv}, prev)
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(chain(t), 0, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, inf, inf, inf, inf}, dist)
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	g := mustGraph(t, 3,
		core.Edge{From: 0, To: 2, Weight: 100},
		core.Edge{From: 0, To: 1, Weight: 60},
		core.Edge{From: 1, To: 2, Weight: 60},
	)

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), dist[2])

	// With threshold 100 the direct edge is a wall; the detour costs 120.
	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(100))
	require.NoError(t, err)
	assert.Equal(t, int64(120), dist[2])
	assert.Equal(t, 1, prev[2])

	// With threshold 60 everything is a wall.
	dist, _, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(60))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, inf, inf}, dist)
}

func TestDijkstra_Logger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, _, err := dijkstra.Dijkstra(chain(t), 0, dijkstra.WithLogger(logger))
	require.NoError(t, err)

	require.Len(t, hook.AllEntries(), 2)
	last := hook.LastEntry()
	assert.Equal(t, "done", last.Message)
	assert.Equal(t, "dijkstra", last.Data["component"])
	assert.Equal(t, 5, last.Data["settled"])
}

func TestDijkstra_DoesNotMutateGraph(t *testing.T) {
	g := chain(t)
	before := g.Edges()
	_, _, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}
