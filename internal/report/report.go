// Package report renders joint taxi schedules for humans: plain-text
// summaries, per-taxi breakdowns, an ASCII timeline, and a workbook export.
package report

import (
	"fmt"
	"strings"

	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

// NoFeasiblePlan is the sentinel line rendered for nil/infeasible solutions.
const NoFeasiblePlan = "No feasible plan found."

// Summary renders the total objective and a per-taxi table.
func Summary(inst *core.Instance, sol *core.Solution) string {
	if sol == nil || !sol.Feasible {
		return NoFeasiblePlan + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total objective (sum of completion times) = %.2f minutes\n", sol.TotalCost)
	for i := range sol.Taxis {
		trip := inst.Trips[i]
		fmt.Fprintf(&b, "Taxi %d (%d -> %d): route %s, completion %.2f min, waits %d\n",
			i+1, trip.Origin, trip.Dest,
			routeString(sol.Taxis[i].Route),
			sol.CompletionTime(i),
			len(sol.Taxis[i].Waits))
	}
	if degraded := sol.DegradedEntries(); len(degraded) > 0 {
		fmt.Fprintf(&b, "WARNING: %d reservation(s) placed despite residual edge contention\n", len(degraded))
	}
	return b.String()
}

// Breakdown renders per-taxi detail including every wait event.
func Breakdown(inst *core.Instance, sol *core.Solution) string {
	if sol == nil || !sol.Feasible {
		return NoFeasiblePlan + "\n"
	}

	var b strings.Builder
	for i := range sol.Taxis {
		trip := inst.Trips[i]
		fmt.Fprintf(&b, "Taxi %d (%d -> %d):\n", i+1, trip.Origin, trip.Dest)
		fmt.Fprintf(&b, "  Route: %s\n", routeString(sol.Taxis[i].Route))
		fmt.Fprintf(&b, "  Completion time (min): %.2f\n", sol.CompletionTime(i))
		for _, w := range sol.Taxis[i].Waits {
			fmt.Fprintf(&b, "  Wait at node %d from %.2f to %.2f (reason: %s)\n",
				w.Node, w.From, w.To, w.Reason)
		}
	}
	return b.String()
}

// Timeline renders the schedule as an ASCII Gantt, one row per taxi, one
// column per timeline slot.
func Timeline(inst *core.Instance, sol *core.Solution) string {
	if sol == nil || !sol.Feasible {
		return NoFeasiblePlan + "\n"
	}
	if len(sol.Schedule) == 0 {
		return "(empty schedule)\n"
	}

	horizon := 0.0
	for _, e := range sol.Schedule {
		if e.End > horizon {
			horizon = e.End
		}
	}

	const cols = 60
	scale := horizon / cols

	var b strings.Builder
	fmt.Fprintf(&b, "Timeline (0 .. %.0f min, one column = %.1f min)\n", horizon, scale)
	for i := range sol.Taxis {
		row := []byte(strings.Repeat(".", cols))
		for _, e := range sol.TaxiEntries(i) {
			from := int(e.Start / scale)
			to := int(e.End / scale)
			if to > cols {
				to = cols
			}
			for c := from; c < to; c++ {
				row[c] = '#'
			}
		}
		fmt.Fprintf(&b, "Taxi %d |%s|\n", i+1, row)
	}
	return b.String()
}

func routeString(route []core.NodeID) string {
	parts := make([]string, len(route))
	for i, n := range route {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " -> ")
}
