// SPDX-License-Identifier: MIT
//
// Package reconstruct turns predecessor vectors into concrete vertex
// sequences: source→target paths, one traversal of a negative cycle, and
// walks that loop the cycle a chosen number of times.
//
// Every function is pure over its arguments and depends only on the vector
// it is given, never on engine internals. Vectors from different relaxation
// depths (Result.Prev, Result.First, a Snapshot.Prev) may be mixed freely.
package reconstruct

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Path returns source → … → target by following prev backward from target to
// a NoVertex slot and reversing.
//
// Errors:
//   - core.ErrInvalidVertex if source or target lies outside [0, len(prev)).
//   - ErrDisconnectedVertex if the chain does not terminate at source: the
//     target is unreachable, the chain runs into a cycle, or a slot points
//     outside the vector.
//
// The returned path has at most len(prev) vertices.
// Complexity: O(V).
func Path(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n {
		return nil, fmt.Errorf("reconstruct: source %d: %w", source, core.ErrInvalidVertex)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("reconstruct: target %d: %w", target, core.ErrInvalidVertex)
	}

	path := make([]int, 0, 8)
	for cur := target; cur != core.NoVertex; cur = prev[cur] {
		if cur < 0 || cur >= n || len(path) == n {
			return nil, fmt.Errorf("reconstruct: target %d: malformed chain: %w", target, ErrDisconnectedVertex)
		}
		path = append(path, cur)
	}
	if path[len(path)-1] != source {
		return nil, fmt.Errorf("reconstruct: target %d: chain ends at %d, not %d: %w",
			target, path[len(path)-1], source, ErrDisconnectedVertex)
	}
	reverse(path)

	return path, nil
}

// CyclePath returns one traversal of the cycle proven by witness, in the
// forward edge direction, rotated to begin at its smallest vertex and closed
// by repeating that vertex, e.g. [3 4 5 3].
//
// The witness relaxation is applied to a private copy of prev before walking
// back, the same way the engine isolates the cycle; prev itself is not
// modified.
//
// Errors:
//   - core.ErrInvalidVertex if a witness endpoint lies outside [0, len(prev)).
//   - ErrNoCycle if the back-walk reaches a root instead of a cycle.
//
// Complexity: O(V).
func CyclePath(prev []int, witness core.Edge) ([]int, error) {
	n := len(prev)
	if witness.From < 0 || witness.From >= n || witness.To < 0 || witness.To >= n {
		return nil, fmt.Errorf("reconstruct: witness %d→%d: %w", witness.From, witness.To, core.ErrInvalidVertex)
	}

	cp := append([]int(nil), prev...)
	cp[witness.To] = witness.From

	// 1) Back-walk V steps to stand on the cycle.
	start := witness.To
	for i := 0; i < n; i++ {
		start = cp[start]
		if start < 0 || start >= n {
			return nil, fmt.Errorf("reconstruct: witness %d→%d: %w", witness.From, witness.To, ErrNoCycle)
		}
	}

	// 2) Walk predecessors once around: backward order.
	cycle := []int{start}
	for v := cp[start]; v != start; v = cp[v] {
		cycle = append(cycle, v)
	}

	// 3) Reverse into the forward edge direction.
	reverse(cycle)

	// 4) Rotate so the smallest vertex comes first, then close the loop.
	lo := 0
	for i, v := range cycle {
		if v < cycle[lo] {
			lo = i
		}
	}
	out := make([]int, 0, len(cycle)+1)
	out = append(out, cycle[lo:]...)
	out = append(out, cycle[:lo]...)
	out = append(out, out[0])

	return out, nil
}

// Successors maps every vertex of a closed cycle path to the next one.
//
// Errors: ErrNoCycle unless cycle has at least two entries, starts and ends
// with the same vertex, and repeats no other vertex.
func Successors(cycle []int) (map[int]int, error) {
	if len(cycle) < 2 || cycle[0] != cycle[len(cycle)-1] {
		return nil, fmt.Errorf("reconstruct: %v is not a closed cycle: %w", cycle, ErrNoCycle)
	}

	succ := make(map[int]int, len(cycle)-1)
	for i := 0; i < len(cycle)-1; i++ {
		if _, dup := succ[cycle[i]]; dup {
			return nil, fmt.Errorf("reconstruct: %v repeats vertex %d: %w", cycle, cycle[i], ErrNoCycle)
		}
		succ[cycle[i]] = cycle[i+1]
	}

	return succ, nil
}

// reverse reverses s in place.
func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
