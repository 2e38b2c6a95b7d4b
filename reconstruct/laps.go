package reconstruct

import (
	"fmt"
	"math"
)

// WithLaps returns a walk from source to vertex that loops the cycle laps
// times.
//
// prefix must describe an acyclic route from source, typically
// bellmanford.Result.First. The walk follows Path(prefix, source, vertex) up
// to its first vertex on the cycle, goes around the cycle laps times (each lap
// returning to that entry vertex via succ), then finishes the remaining
// prefix path to vertex. Its cost is therefore the prefix path cost plus
// laps times the cycle weight.
//
// laps == 0 returns the prefix path itself, and succ may then be empty.
//
// Errors:
//   - ErrNegativeLaps if laps < 0.
//   - Any error of Path(prefix, source, vertex).
//   - ErrNoCycle if laps > 0 and succ is empty or does not close a loop.
//   - ErrCycleNotOnPath if laps > 0 and the prefix path never touches succ.
//
// Complexity: O(V + laps·C) for a cycle of C vertices.
func WithLaps(prefix []int, source int, succ map[int]int, vertex, laps int) ([]int, error) {
	if laps < 0 {
		return nil, fmt.Errorf("reconstruct: laps=%d: %w", laps, ErrNegativeLaps)
	}

	base, err := Path(prefix, source, vertex)
	if err != nil {
		return nil, err
	}
	if laps == 0 {
		return base, nil
	}
	if len(succ) == 0 {
		return nil, fmt.Errorf("reconstruct: empty successor map: %w", ErrNoCycle)
	}

	// 1) Locate the entry: the first prefix vertex lying on the cycle.
	entry := -1
	for i, v := range base {
		if _, on := succ[v]; on {
			entry = i
			break
		}
	}
	if entry < 0 {
		return nil, fmt.Errorf("reconstruct: path %v: %w", base, ErrCycleNotOnPath)
	}

	// 2) Trace one lap from the entry vertex.
	lap, err := traceLap(succ, base[entry])
	if err != nil {
		return nil, err
	}

	// 3) Prefix up to the entry, laps copies of the lap, then the rest.
	walk := make([]int, 0, len(base)+laps*len(lap))
	walk = append(walk, base[:entry+1]...)
	for i := 0; i < laps; i++ {
		walk = append(walk, lap...)
	}
	walk = append(walk, base[entry+1:]...)

	return walk, nil
}

// traceLap follows succ from start until it returns to start and returns the
// visited vertices after start, ending with start itself.
func traceLap(succ map[int]int, start int) ([]int, error) {
	lap := make([]int, 0, len(succ))
	cur := start
	for {
		next, ok := succ[cur]
		if !ok || len(lap) == len(succ) {
			return nil, fmt.Errorf("reconstruct: successor map does not loop through %d: %w", start, ErrNoCycle)
		}
		lap = append(lap, next)
		if next == start {
			return lap, nil
		}
		cur = next
	}
}

// InferLaps returns the lap count k such that
//
//	prefixCost + k·cycleWeight == target
//
// i.e. how many traversals of a negative cycle explain a distance estimate
// that has fallen below the cost of the acyclic prefix.
//
// Errors:
//   - ErrNotNegativeCycle if cycleWeight ≥ 0.
//   - ErrLapsNotIntegral if prefixCost − target is negative, overflows
//     int64, is not a whole multiple of −cycleWeight, or yields a lap count
//     that does not fit in an int.
//
// Pure integer arithmetic; no rounding is involved.
func InferLaps(prefixCost, target, cycleWeight int64) (int, error) {
	if cycleWeight >= 0 {
		return 0, fmt.Errorf("reconstruct: cycle weight %d: %w", cycleWeight, ErrNotNegativeCycle)
	}

	gap := prefixCost - target
	if (target < 0 && gap < prefixCost) || (target > 0 && gap > prefixCost) {
		return 0, fmt.Errorf("reconstruct: %d − %d overflows int64: %w", prefixCost, target, ErrLapsNotIntegral)
	}
	if gap < 0 {
		return 0, fmt.Errorf("reconstruct: target %d above prefix cost %d: %w", target, prefixCost, ErrLapsNotIntegral)
	}

	// −MinInt64 is not representable, and no positive int64 gap reaches it.
	if cycleWeight == math.MinInt64 {
		if gap == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("reconstruct: gap %d over cycle weight %d: %w", gap, cycleWeight, ErrLapsNotIntegral)
	}

	step := -cycleWeight
	if gap%step != 0 {
		return 0, fmt.Errorf("reconstruct: gap %d over step %d: %w", gap, step, ErrLapsNotIntegral)
	}
	laps := gap / step
	if laps > int64(math.MaxInt) {
		return 0, fmt.Errorf("reconstruct: %d laps exceed int: %w", laps, ErrLapsNotIntegral)
	}

	return int(laps), nil
}
