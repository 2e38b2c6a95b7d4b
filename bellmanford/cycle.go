package bellmanford

import "sort"

// IsolateCycle finds the cycle of the predecessor graph reached by walking
// prev backward from start.
//
// The walk takes exactly len(prev) steps first: any acyclic prefix is shorter
// than that, so the walk is then standing on the cycle. From there it follows
// prev again, collecting vertices until it returns to where it stood. The
// result is independent of where the walk entered the cycle and is returned
// in ascending order.
//
// ok is false when start is out of range or the walk reaches a NoVertex (or
// otherwise out-of-range) slot, i.e. start's chain ends in a root.
//
// On a raw Result.Prev a false result does not mean there is no cycle: the
// witness target may still point toward the source. Use
// reconstruct.CyclePath(prev, witness), which applies the witness
// relaxation to a copy of prev first, as Run does internally.
//
// Complexity: O(V) time, O(C) space for a cycle of C vertices.
func IsolateCycle(prev []int, start int) (cycle []int, ok bool) {
	n := len(prev)
	if start < 0 || start >= n {
		return nil, false
	}

	// 1) Back-walk V steps to land on the cycle.
	cur := start
	for i := 0; i < n; i++ {
		cur = prev[cur]
		if cur < 0 || cur >= n {
			return nil, false
		}
	}

	// 2) Collect the cycle until the walk returns to cur.
	cycle = append(cycle, cur)
	for v := prev[cur]; v != cur; v = prev[v] {
		cycle = append(cycle, v)
	}
	sort.Ints(cycle)

	return cycle, true
}
