package reconstruct

import "errors"

// Sentinel errors returned by the reconstructor. Out-of-range vertex ids are
// reported with core.ErrInvalidVertex.
var (
	// ErrDisconnectedVertex indicates that the target's predecessor chain does
	// not end at the source: the target is unreachable, or the vector is
	// malformed (stale pointers, a cycle, out-of-range slots).
	ErrDisconnectedVertex = errors.New("reconstruct: vertex not connected to source")

	// ErrNoCycle indicates that no cycle could be isolated from the witness,
	// or that a cycle path or successor map is malformed.
	ErrNoCycle = errors.New("reconstruct: no cycle")

	// ErrCycleNotOnPath indicates that laps were requested but the prefix
	// path never touches the cycle.
	ErrCycleNotOnPath = errors.New("reconstruct: prefix path does not reach the cycle")

	// ErrNegativeLaps indicates a negative lap count.
	ErrNegativeLaps = errors.New("reconstruct: laps must be non-negative")

	// ErrNotNegativeCycle indicates a lap inference against a cycle weight ≥ 0.
	ErrNotNegativeCycle = errors.New("reconstruct: cycle weight must be negative")

	// ErrLapsNotIntegral indicates that the distance gap is not a non-negative
	// whole multiple of the cycle's magnitude.
	ErrLapsNotIntegral = errors.New("reconstruct: distance gap is not a whole number of laps")
)
