package algo

import (
	"math"

	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

// Solver is the interface for joint taxi scheduling algorithms.
type Solver interface {
	// Solve attempts to find a joint schedule for the instance.
	// Returns nil when no feasible plan exists.
	Solve(inst *core.Instance) *core.Solution

	// Name returns the algorithm name.
	Name() string
}

// sumRemaining is the admissible heuristic: the sum over not-done taxis of
// their capacity-free shortest travel time to destination. Contention only
// ever adds delay, so this never overestimates the true remaining cost.
func sumRemaining(tt *TravelTimes, js core.JointState) float64 {
	total := 0.0
	for i := range js {
		if js[i].Done {
			continue
		}
		total += tt.Between(js[i].Pos, js[i].Dest)
	}
	return total
}

// anyUnreachable reports whether some trip's destination cannot be reached
// at all, which makes the whole instance infeasible upfront.
func anyUnreachable(tt *TravelTimes, trips []core.Trip) bool {
	for _, trip := range trips {
		if math.IsInf(tt.Between(trip.Origin, trip.Dest), 1) {
			return true
		}
	}
	return false
}
