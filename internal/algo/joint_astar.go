package algo

import (
	"container/heap"
	"math"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

// DefaultMaxExpansions bounds the joint search. The joint state space is
// exponential in the number of taxis, and an unreachable subgoal would
// otherwise let availableAt grow without bound.
const DefaultMaxExpansions = 1_000_000

// JointAStar is the core scheduler: best-first search over the joint taxi
// state, one single-taxi move per expansion, with an edge-reservation
// schedule carried along every branch.
type JointAStar struct {
	MaxExpansions int
}

// NewJointAStar creates the joint scheduler with an expansion budget.
// budget <= 0 selects DefaultMaxExpansions.
func NewJointAStar(budget int) *JointAStar {
	if budget <= 0 {
		budget = DefaultMaxExpansions
	}
	return &JointAStar{MaxExpansions: budget}
}

func (s *JointAStar) Name() string { return "JointAStar" }

// jointNode is one frontier entry. Each node owns its JointState and
// Schedule; siblings never alias mutable state.
type jointNode struct {
	f     float64 // g + h
	g     float64 // sum of completion-time increments so far
	seq   uint64  // insertion counter, strict total order on ties
	state core.JointState
	sched core.Schedule
	index int
}

type jointHeap []*jointNode

func (h jointHeap) Len() int { return len(h) }
func (h jointHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].g != h[j].g {
		return h[i].g < h[j].g
	}
	return h[i].seq < h[j].seq
}
func (h jointHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *jointHeap) Push(x any) {
	n := x.(*jointNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *jointHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// canonicalKey reduces a joint state to (pos, round(availableAt), done) per
// taxi for dominance pruning. The key deliberately ignores the schedule and
// rounds times, so two branches with different future contention may compare
// equal; pruning is therefore approximate under contention and the search's
// optimality guarantee holds only in the uncontended case.
func canonicalKey(js core.JointState) string {
	var b strings.Builder
	for i := range js {
		b.WriteString(strconv.Itoa(int(js[i].Pos)))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(math.Round(js[i].AvailableAt))))
		if js[i].Done {
			b.WriteString(":1|")
		} else {
			b.WriteString(":0|")
		}
	}
	return b.String()
}

// Solve runs the joint best-first search. A nil return means no feasible
// plan: destination unreachable, frontier exhausted, or budget exceeded.
func (s *JointAStar) Solve(inst *core.Instance) *core.Solution {
	tt := NewTravelTimes(inst.Network, inst.SpeedKmh)
	if anyUnreachable(tt, inst.Trips) {
		return nil
	}

	root := core.NewJointState(inst.Trips)

	open := &jointHeap{}
	heap.Init(open)
	var seq uint64
	heap.Push(open, &jointNode{
		f:     sumRemaining(tt, root),
		g:     0,
		seq:   seq,
		state: root,
		sched: nil,
	})
	seq++

	bestG := make(map[string]float64)
	expansions := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(*jointNode)

		if cur.state.AllDone() {
			return &core.Solution{
				TotalCost:  cur.g,
				Taxis:      cur.state,
				Schedule:   cur.sched,
				Feasible:   true,
				Expansions: expansions,
			}
		}

		key := canonicalKey(cur.state)
		if g, seen := bestG[key]; seen && g <= cur.g {
			continue
		}
		bestG[key] = cur.g

		if expansions >= s.MaxExpansions {
			return nil
		}
		expansions++

		for idx := range cur.state {
			taxi := &cur.state[idx]
			if taxi.Done {
				continue
			}
			for _, arc := range inst.Network.Neighbors(taxi.Pos) {
				duration := tt.EdgeMinutes(arc.Km)
				ek := core.MakeEdgeKey(taxi.Pos, arc.To)

				start, degraded := resolveStart(cur.sched, ek, taxi.AvailableAt, duration, inst.WaitPenalty)
				end := start + duration

				next := taxi.Clone()
				next.Pos = arc.To
				next.AvailableAt = end
				next.Route = append(next.Route, arc.To)
				if start > taxi.AvailableAt {
					next.Waits = append(next.Waits, core.WaitEvent{
						Node:   taxi.Pos,
						From:   taxi.AvailableAt,
						To:     start,
						Reason: core.ReasonCapacity,
					})
				}
				if arc.To == next.Dest {
					next.Done = true
				}

				newG := cur.g + (end - taxi.AvailableAt)
				newState := cur.state.WithTaxi(idx, next)
				newSched := cur.sched.Extend(core.ScheduleEntry{
					Edge:     ek,
					Start:    start,
					End:      end,
					Taxi:     idx,
					Degraded: degraded,
				})

				heap.Push(open, &jointNode{
					f:     newG + sumRemaining(tt, newState),
					g:     newG,
					seq:   seq,
					state: newState,
					sched: newSched,
				})
				seq++
			}
		}
	}

	return nil
}
