package core

// Solution is a complete joint schedule: the final state of every taxi plus
// the reservation timeline that produced it.
type Solution struct {
	TotalCost  float64 // sum of per-taxi completion times, minutes
	Taxis      JointState
	Schedule   Schedule
	Feasible   bool
	Expansions int // search nodes expanded to find this solution
}

// CompletionTime returns taxi idx's completion time in minutes.
func (s *Solution) CompletionTime(idx int) float64 {
	return s.Taxis[idx].AvailableAt
}

// DegradedEntries returns reservations placed despite residual contention
// (the conflict resolver's retry cap was hit). Empty on healthy solutions.
func (s *Solution) DegradedEntries() []ScheduleEntry {
	var out []ScheduleEntry
	for _, e := range s.Schedule {
		if e.Degraded {
			out = append(out, e)
		}
	}
	return out
}

// TaxiEntries returns the schedule entries owned by taxi idx, in order.
func (s *Solution) TaxiEntries(idx int) []ScheduleEntry {
	var out []ScheduleEntry
	for _, e := range s.Schedule {
		if e.Taxi == idx {
			out = append(out, e)
		}
	}
	return out
}
