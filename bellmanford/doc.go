// Package bellmanford computes single-source shortest paths on a directed,
// integer-weighted core.Graph whose edges may be negative, and isolates a
// negative cycle when one is reachable from the source.
//
// Overview:
//
//   - Up to V−1 relaxation rounds scan every edge once in the fixed order of
//     core.Graph.Edges(): sources in order of their first edge, arcs in
//     insertion order. Intermediate tables depend on that order; final
//     distances without a negative cycle do not. A round without any update
//     ends the loop early.
//   - One extra, non-mutating scan looks for an edge that is still
//     relaxable. After V−1 rounds such an edge is proof of a negative cycle
//     reachable from the source: the witness.
//   - The cycle is isolated by walking predecessor pointers backward V
//     times from the witness target, then collecting vertices until the walk
//     repeats (IsolateCycle, a pure function over a predecessor vector).
//
// Convergence depth:
//
//   - Run uses the textbook bound V−1; this is the primary contract.
//   - RunBounded(g, s, k) is the explicit partial-convergence query. The
//     "frozen" table one round before the bound is RunBounded(g, s, V−2).
//
// Vectors returned:
//
//	Dist   []int64  distance estimate per vertex, core.Unreached if none
//	Prev   []int    last-improvement predecessor, core.NoVertex if none
//	First  []int    first-reach predecessor; an acyclic tree rooted at the source,
//	                the natural prefix for reconstruct.WithLaps
//	Cycle  []int    ascending vertex set of the isolated cycle, empty if none
//
// Every vector is a fresh slice owned by the Result. WithSnapshots keeps a
// copy of Dist and Prev after every round for callers that need to explain
// intermediate estimates.
//
// Example usage:
//
//	res, err := bellmanford.Run(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.HasNegativeCycle() {
//	    cyc, _ := reconstruct.CyclePath(res.Prev, *res.Witness)
//	    fmt.Println("negative cycle:", cyc)
//	}
//
// Thread safety:
//
//   - A run takes one snapshot of the edge list and holds no state between
//     calls; concurrent runs on the same unmodified graph are safe.
//   - Mutating the graph while a run is in progress is the caller's
//     responsibility to avoid.
//
// Arithmetic: distances are int64 sums; callers must keep |weights|·V well
// inside the int64 range.
package bellmanford
