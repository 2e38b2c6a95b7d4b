// SPDX-License-Identifier: MIT
//
// Package dijkstra implements a guarded Dijkstra shortest-path routine for
// directed, integer-weighted graphs.
//
// It serves as a contrast validator next to Bellman–Ford: any graph carrying
// a negative edge is rejected up front, so a successful result is always a
// set of true shortest distances.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor vectors.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     discarding an entry whose distance no longer matches the current best.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/internal/logging"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, core.Unreached if v is unreachable
//     (or lies beyond MaxDistance).
//   - prev: prev[v] == u means the shortest path to v ends with u → v;
//     core.NoVertex for the source and unreachable vertices.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. 0 ≤ source < V (core.ErrInvalidVertex, wrapped).
//  3. No edge in g can have negative weight (ErrNegativeWeight, wrapped with the edge).
//
// The graph is never modified.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 2) Validate source lies in the graph
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrInvalidVertex)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	if e, ok := g.HasNegativeEdge(); ok {
		return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	// 4) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 5) Initialize runner and run main loop.
	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (thresholds, logger).
	log     logrus.FieldLogger // Component-scoped logger.
	dist    []int64            // dist[v] = current best distance from source.
	prev    []int              // prev[v] = predecessor on the shortest path.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
	settled int                // Number of vertices finalized.
}

// newRunner sets dist[v] = Unreached and prev[v] = NoVertex for all v,
// then pushes source=0 into the heap.
func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		log:     logging.For(cfg.Logger, "dijkstra"),
		dist:    make([]int64, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Unreached
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	r.log.WithFields(logrus.Fields{"source": source, "vertices": n}).Debug("start")

	return r
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Stale entry: a shorter distance was pushed after this one.
		if d != r.dist[u] {
			continue
		}

		// 3) Everything left in the heap is at least d away.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Relax all outgoing edges from u. Its distance d is now final.
		r.settled++
		if err := r.relax(u); err != nil {
			return err
		}
	}

	r.log.WithField("settled", r.settled).Debug("done")

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve
// distances to its neighbors. Edges with weight ≥ InfEdgeThreshold and
// candidates beyond MaxDistance are skipped.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, a := range arcs {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// Safety check: the graph may have been mutated after the pre-scan.
		if a.Weight < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
		}

		newDist := r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		r.prev[a.To] = u

		// Lazy decrease-key: the older entry for a.To is discarded when popped.
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its distance at push time.
type nodeItem struct {
	id   int   // vertex id
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist
// ascending, ties broken by the smaller vertex id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
