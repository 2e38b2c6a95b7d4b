package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/reconstruct"
)

func toGonum(g *core.Graph) *simple.WeightedDirectedGraph {
	gg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		gg.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		gg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: float64(e.Weight),
		})
	}

	return gg
}

// TestAgainstGonumAndBellmanFord checks that, on non-negative graphs, Dijkstra
// agrees with gonum's Dijkstra and with bellmanford.Run, and that every
// predecessor path costs exactly its distance.
func TestAgainstGonumAndBellmanFord(t *testing.T) {
	const n = 25

	for seed := int64(1); seed <= 40; seed++ {
		g, err := builder.BuildGraph(n,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 20)},
			builder.RandomSparse(0.12),
		)
		require.NoError(t, err)

		dist, prev, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)

		bf, err := bellmanford.Run(g, 0)
		require.NoError(t, err)
		require.False(t, bf.HasNegativeCycle())
		require.Equal(t, bf.Dist, dist, "seed %d", seed)

		want := path.DijkstraFrom(simple.Node(0), toGonum(g))
		for v := 0; v < n; v++ {
			w := want.WeightTo(int64(v))
			if math.IsInf(w, 1) {
				require.Equal(t, core.Unreached, dist[v], "seed %d vertex %d", seed, v)
				require.Equal(t, core.NoVertex, prev[v])
				continue
			}
			require.Equal(t, int64(w), dist[v], "seed %d vertex %d", seed, v)

			p, err := reconstruct.Path(prev, 0, v)
			require.NoError(t, err)
			cost, err := g.WalkWeight(p)
			require.NoError(t, err)
			require.Equal(t, dist[v], cost, "seed %d vertex %d", seed, v)
		}
	}
}

// TestRejectsWhatBellmanFordAccepts: one negative edge flips Dijkstra to an
// error while Bellman–Ford still answers.
func TestRejectsWhatBellmanFordAccepts(t *testing.T) {
	g, err := builder.BuildGraph(8,
		[]builder.BuilderOption{builder.WithConstantWeight(3)},
		builder.Path(),
		builder.Edges(core.Edge{From: 0, To: 7, Weight: -1}),
	)
	require.NoError(t, err)

	_, _, err = dijkstra.Dijkstra(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	res, err := bellmanford.Run(g, 0)
	require.NoError(t, err)
	require.False(t, res.HasNegativeCycle())
	require.Equal(t, int64(-1), res.Dist[7])
}
