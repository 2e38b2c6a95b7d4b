// Package sssp computes single-source shortest paths on directed,
// integer-weighted graphs, and explains negative cycles instead of merely
// reporting them.
//
// 🚀 What is in the box?
//
//	• core/        — the Graph: vertices [0, V), weighted edges, stable enumeration
//	• bellmanford/ — V−1 relaxation rounds, negative-cycle detection and isolation,
//	                 partial-convergence queries (RunBounded), per-round snapshots
//	• reconstruct/ — source→target paths, one traversal of a cycle, and walks that
//	                 loop the cycle a chosen number of times (WithLaps, InferLaps)
//	• dijkstra/    — guarded Dijkstra that refuses any negative edge
//	• builder/     — deterministic graph fixtures for tests and benchmarks
//
// ✨ Typical flow
//
//	res, _ := bellmanford.Run(g, 0)
//	if res.HasNegativeCycle() {
//	    cyc, _ := reconstruct.CyclePath(res.Prev, *res.Witness)
//	    succ, _ := reconstruct.Successors(cyc)
//	    w, _ := g.WalkWeight(cyc)
//	    prefix, _ := reconstruct.Path(res.First, 0, v)
//	    pc, _ := g.WalkWeight(prefix)
//	    laps, _ := reconstruct.InferLaps(pc, res.Dist[v], w)
//	    walk, _ := reconstruct.WithLaps(res.First, 0, succ, v, laps)
//	}
//
// Engines accept a logrus.FieldLogger through WithLogger for debug-level
// diagnostics and stay silent otherwise.
//
// Install:
//
//	go get github.com/katalvlaran/sssp
package sssp
