package core

// EdgeKey canonicalizes an unordered node pair so both traversal directions
// reserve the same resource.
type EdgeKey struct {
	U, V NodeID
}

// MakeEdgeKey returns the canonical key for the segment between a and b.
func MakeEdgeKey(a, b NodeID) EdgeKey {
	if a <= b {
		return EdgeKey{U: a, V: b}
	}
	return EdgeKey{U: b, V: a}
}

// ScheduleEntry is one taxi's reservation of one edge for one traversal.
type ScheduleEntry struct {
	Edge     EdgeKey
	Start    float64 // minutes
	End      float64 // minutes
	Taxi     int     // index into the trip list
	Degraded bool    // placed despite residual contention (retry cap hit)
}

// Overlaps reports whether the reservation intersects [start, end).
func (e ScheduleEntry) Overlaps(key EdgeKey, start, end float64) bool {
	return e.Edge == key && e.End > start && e.Start < end
}

// Schedule is the append-only reservation sequence accumulated along one
// search branch. Branches never share a Schedule: use Extend, never append.
type Schedule []ScheduleEntry

// Extend returns a new Schedule with entry appended. The receiver's backing
// array is never reused, preserving branch isolation.
func (s Schedule) Extend(entry ScheduleEntry) Schedule {
	next := make(Schedule, len(s), len(s)+1)
	copy(next, s)
	return append(next, entry)
}

// OverlapCount counts reservations on key intersecting [start, end).
func (s Schedule) OverlapCount(key EdgeKey, start, end float64) int {
	count := 0
	for _, e := range s {
		if e.Overlaps(key, start, end) {
			count++
		}
	}
	return count
}
