package algo

import (
	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

// Prioritized is the greedy baseline: taxis are routed one at a time in
// input order along their capacity-free shortest path, resolving each edge
// entry against the reservations of earlier taxis. Fast, deterministic, and
// generally worse than JointAStar under contention because a later taxi
// never reroutes around an earlier one.
type Prioritized struct{}

// NewPrioritized creates the greedy baseline solver.
func NewPrioritized() *Prioritized { return &Prioritized{} }

func (p *Prioritized) Name() string { return "Prioritized" }

// Solve routes each taxi along its oracle path.
func (p *Prioritized) Solve(inst *core.Instance) *core.Solution {
	tt := NewTravelTimes(inst.Network, inst.SpeedKmh)
	if anyUnreachable(tt, inst.Trips) {
		return nil
	}

	taxis := core.NewJointState(inst.Trips)
	var sched core.Schedule
	total := 0.0

	for idx := range taxis {
		if taxis[idx].Done {
			continue
		}
		path := tt.Path(taxis[idx].Pos, taxis[idx].Dest)

		state := taxis[idx]
		for hop := 1; hop < len(path); hop++ {
			from, to := path[hop-1], path[hop]
			duration := tt.Between(from, to)
			ek := core.MakeEdgeKey(from, to)

			start, degraded := resolveStart(sched, ek, state.AvailableAt, duration, inst.WaitPenalty)
			end := start + duration

			next := state.Clone()
			next.Pos = to
			next.AvailableAt = end
			next.Route = append(next.Route, to)
			if start > state.AvailableAt {
				next.Waits = append(next.Waits, core.WaitEvent{
					Node:   from,
					From:   state.AvailableAt,
					To:     start,
					Reason: core.ReasonCapacity,
				})
			}
			if to == next.Dest {
				next.Done = true
			}

			sched = sched.Extend(core.ScheduleEntry{
				Edge:     ek,
				Start:    start,
				End:      end,
				Taxi:     idx,
				Degraded: degraded,
			})
			state = next
		}
		taxis[idx] = state
		total += state.AvailableAt
	}

	return &core.Solution{
		TotalCost: total,
		Taxis:     taxis,
		Schedule:  sched,
		Feasible:  true,
	}
}
