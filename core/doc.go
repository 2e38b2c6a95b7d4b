// Package core provides the directed, integer-weighted Graph that the
// shortest-path packages of this module consume.
//
// Vertices are the integers 0 … V-1 and have no independent lifecycle: a
// vertex exists exactly when its id is below VertexCount(). Edges are ordered
// triples (From, To, Weight) with a signed int64 weight. Parallel edges and
// self-loops are permitted; each parallel edge is kept and enumerated on its
// own.
//
// Why a dedicated graph type?
//
//   - Slice-indexed storage: distance and predecessor vectors are plain slices
//     of length V, no map lookups on the hot path.
//   - Deterministic enumeration: Edges() yields sources in the order they
//     received their first edge and each source's arcs in insertion order,
//     so an algorithm that scans all edges several times sees the same order
//     every time.
//   - Thread-safe: mutations take a write lock, queries a read lock.
//
// Core Methods:
//
//	NewGraph(n int) *Graph                          // O(n)
//	FromEdges(n int, edges []Edge) (*Graph, error)  // O(n+E)
//	AddEdge(from, to int, w int64) error            // O(1) amortized
//	AddEdges(edges ...Edge) error                   // O(len(edges))
//	Neighbors(u int) ([]Arc, error)                 // O(deg⁺(u))
//	Edges() []Edge                                  // O(E)
//	HasNegativeEdge() (Edge, bool)                  // O(E)
//	WalkWeight(walk []int) (int64, error)           // O(Σ deg⁺)
//	Clone() *Graph                                  // O(V+E)
//
// Sentinels:
//
//	Unreached = math.MaxInt64  // distance of a vertex with no known path
//	NoVertex  = -1             // empty slot of a predecessor vector
//
// Errors:
//
//	ErrInvalidVertex  // id outside [0, V); wrapped by every package of the module
//	ErrEdgeNotFound   // a walk step has no matching edge
//
// Example:
//
//	g, err := core.FromEdges(3, []core.Edge{{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: -1}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Edges())
package core
