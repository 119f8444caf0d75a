package report_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/elektrokombinacija/taxi-mapf/internal/algo"
	"github.com/elektrokombinacija/taxi-mapf/internal/core"
	"github.com/elektrokombinacija/taxi-mapf/internal/report"
)

func solvedContention(t *testing.T) (*core.Instance, *core.Solution) {
	t.Helper()
	net := core.NewNetwork(2)
	net.AddEdge(1, 2, 40)
	inst := core.NewInstance(net, []core.Trip{
		{Origin: 1, Dest: 2},
		{Origin: 1, Dest: 2},
		{Origin: 1, Dest: 2},
	})
	sol := algo.NewJointAStar(0).Solve(inst)
	require.NotNil(t, sol)
	return inst, sol
}

func TestSummary(t *testing.T) {
	inst, sol := solvedContention(t)
	out := report.Summary(inst, sol)

	assert.Contains(t, out, "240.00 minutes")
	assert.Contains(t, out, "Taxi 1 (1 -> 2)")
	assert.Contains(t, out, "Taxi 3 (1 -> 2)")
	assert.NotContains(t, out, "WARNING")
}

func TestSummary_DegradedWarning(t *testing.T) {
	net := core.NewNetwork(2)
	net.AddEdge(1, 2, 40)
	inst := core.NewInstance(net, []core.Trip{{Origin: 1, Dest: 2}})

	// A reservation placed despite residual contention must surface in the
	// summary, not stay buried in the schedule.
	state := core.NewTaxiState(inst.Trips[0])
	state.Pos = 2
	state.AvailableAt = 60
	state.Done = true
	state.Route = append(state.Route, 2)

	sol := &core.Solution{
		TotalCost: 60,
		Taxis:     core.JointState{state},
		Schedule: core.Schedule{
			{Edge: core.MakeEdgeKey(1, 2), Start: 0, End: 60, Taxi: 0, Degraded: true},
		},
		Feasible: true,
	}

	out := report.Summary(inst, sol)
	assert.Contains(t, out, "WARNING: 1 reservation(s) placed despite residual edge contention")
}

func TestSummary_NoPlan(t *testing.T) {
	inst, _ := solvedContention(t)
	assert.Equal(t, report.NoFeasiblePlan+"\n", report.Summary(inst, nil))
	assert.Equal(t, report.NoFeasiblePlan+"\n", report.Timeline(inst, nil))
	assert.Equal(t, report.NoFeasiblePlan+"\n", report.Breakdown(inst, nil))
}

func TestBreakdown_WaitEvents(t *testing.T) {
	inst, sol := solvedContention(t)
	out := report.Breakdown(inst, sol)

	assert.Contains(t, out, "Route: 1 -> 2")
	assert.Contains(t, out, "reason: capacity")
	assert.Contains(t, out, "from 0.00 to 60.00")
}

func TestTimeline_RowPerTaxi(t *testing.T) {
	inst, sol := solvedContention(t)
	out := report.Timeline(inst, sol)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus one row per taxi.
	require.Len(t, lines, 1+len(inst.Trips))
	assert.Contains(t, lines[1], "#")
}

func TestWriteWorkbook(t *testing.T) {
	inst, sol := solvedContention(t)
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	require.NoError(t, report.WriteWorkbook(path, inst, sol))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 1+len(sol.Schedule))
	assert.Equal(t, []string{"Taxi", "Edge", "Start (min)", "End (min)", "Degraded"}, rows[0])
	assert.Equal(t, "1-2", rows[1][1])

	taxiRows, err := f.GetRows("Taxis")
	require.NoError(t, err)
	require.Len(t, taxiRows, 1+len(inst.Trips))
}

func TestWriteWorkbook_RejectsInfeasible(t *testing.T) {
	inst, _ := solvedContention(t)
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.Error(t, report.WriteWorkbook(path, inst, nil))
}
