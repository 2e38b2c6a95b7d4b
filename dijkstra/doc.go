// Package dijkstra provides a guarded implementation of Dijkstra's
// shortest-path algorithm on directed graphs with non-negative integer
// edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - A single O(E) pre-scan rejects any graph containing a negative edge, so
//     a result is never silently wrong. Use bellmanford for such graphs.
//
// When to use:
//
//   - As a fast validator: on a graph without negative edges its distances
//     equal those of bellmanford.Run.
//   - As a contrast: a graph bellmanford handles may be refused here with
//     ErrNegativeWeight naming the offending edge.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Logger: debug-level diagnostics through a logrus.FieldLogger.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - core.ErrInvalidVertex:
//     Returned (wrapped) if the source lies outside [0, V).
//   - ErrNegativeWeight:
//     Returned (wrapped, naming the first negative edge in core.Graph.Edges() order)
//     if any edge has a negative weight.
//   - ErrBadMaxDistance:
//     Raised (via panic) if you set MaxDistance to a negative value.
//   - ErrBadInfThreshold:
//     Raised (via panic) if you set InfEdgeThreshold to zero or a negative value.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    source int,
//	    opts ...Option,
//	) (dist []int64, prev []int, err error)
//
//	  - dist:    dist[v] = minimal distance from source to v, or core.Unreached.
//	  - prev:    prev[v] = immediate predecessor of v on one shortest path,
//	              or core.NoVertex if v is the source or unreachable.
//	              reconstruct.Path(prev, source, v) rebuilds the path.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent calls on an unmodified graph are safe.
//   - Modifying the graph during a call is the caller's responsibility to avoid.
package dijkstra
