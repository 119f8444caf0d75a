package algo

import "github.com/elektrokombinacija/taxi-mapf/internal/core"

// Each edge hosts at most two simultaneous crossings; a third attempt is
// postponed in whole wait-penalty increments.
const edgeCapacity = 2

// maxWaitRetries bounds the postpone loop. Hitting it is a degraded
// placement, reported to the caller, not a silent success.
const maxWaitRetries = 200

// resolveStart finds the earliest start >= proposed at which the traversal
// [start, start+duration) coexists with at most one other reservation on the
// same edge. The schedule is never mutated. degraded is true when the retry
// cap was hit and the traversal proceeds despite residual contention.
func resolveStart(sched core.Schedule, key core.EdgeKey, proposed, duration, penalty float64) (start float64, degraded bool) {
	start = proposed
	for attempts := 0; ; attempts++ {
		if sched.OverlapCount(key, start, start+duration) < edgeCapacity {
			return start, false
		}
		if attempts >= maxWaitRetries {
			return start, true
		}
		start += penalty
	}
}
