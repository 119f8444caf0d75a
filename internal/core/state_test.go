package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

func TestNewTaxiState_OriginEqualsDest(t *testing.T) {
	state := core.NewTaxiState(core.Trip{Origin: 4, Dest: 4})
	assert.True(t, state.Done)
	assert.Equal(t, 0.0, state.AvailableAt)
	assert.Equal(t, []core.NodeID{4}, state.Route)
}

func TestTaxiState_CloneIsolation(t *testing.T) {
	orig := core.NewTaxiState(core.Trip{Origin: 1, Dest: 3})
	orig.Waits = append(orig.Waits, core.WaitEvent{Node: 1, From: 0, To: 30, Reason: core.ReasonCapacity})

	clone := orig.Clone()
	clone.Route = append(clone.Route, 2)
	clone.Waits = append(clone.Waits, core.WaitEvent{Node: 2, From: 30, To: 60, Reason: core.ReasonCapacity})
	clone.Pos = 2

	// The original branch must be untouched.
	assert.Equal(t, []core.NodeID{1}, orig.Route)
	assert.Len(t, orig.Waits, 1)
	assert.Equal(t, core.NodeID(1), orig.Pos)
}

func TestJointState_WithTaxiIsolation(t *testing.T) {
	js := core.NewJointState([]core.Trip{{Origin: 1, Dest: 3}, {Origin: 2, Dest: 3}})

	moved := js[0].Clone()
	moved.Pos = 2
	moved.Route = append(moved.Route, 2)
	next := js.WithTaxi(0, moved)

	assert.Equal(t, core.NodeID(1), js[0].Pos)
	assert.Equal(t, core.NodeID(2), next[0].Pos)
	// Untouched taxi is shared, not copied.
	assert.Equal(t, js[1], next[1])
}

func TestJointState_AllDone(t *testing.T) {
	js := core.NewJointState([]core.Trip{{Origin: 1, Dest: 1}, {Origin: 1, Dest: 2}})
	assert.False(t, js.AllDone())

	done := js[1].Clone()
	done.Pos = 2
	done.Done = true
	assert.True(t, js.WithTaxi(1, done).AllDone())
}

func TestMakeEdgeKey_Canonical(t *testing.T) {
	require.Equal(t, core.MakeEdgeKey(5, 2), core.MakeEdgeKey(2, 5))
	require.Equal(t, core.EdgeKey{U: 2, V: 5}, core.MakeEdgeKey(5, 2))
}

func TestSchedule_ExtendIsolation(t *testing.T) {
	base := core.Schedule{{Edge: core.MakeEdgeKey(1, 2), Start: 0, End: 60, Taxi: 0}}

	left := base.Extend(core.ScheduleEntry{Edge: core.MakeEdgeKey(2, 3), Start: 60, End: 90, Taxi: 0})
	right := base.Extend(core.ScheduleEntry{Edge: core.MakeEdgeKey(2, 4), Start: 60, End: 120, Taxi: 1})

	require.Len(t, base, 1)
	require.Len(t, left, 2)
	require.Len(t, right, 2)
	// Sibling branches must not see each other's entries.
	assert.Equal(t, core.MakeEdgeKey(2, 3), left[1].Edge)
	assert.Equal(t, core.MakeEdgeKey(2, 4), right[1].Edge)
}

func TestSchedule_OverlapCount(t *testing.T) {
	key := core.MakeEdgeKey(1, 2)
	sched := core.Schedule{
		{Edge: key, Start: 0, End: 60, Taxi: 0},
		{Edge: key, Start: 30, End: 90, Taxi: 1},
		{Edge: core.MakeEdgeKey(2, 3), Start: 0, End: 60, Taxi: 2},
	}

	assert.Equal(t, 2, sched.OverlapCount(key, 45, 50))
	assert.Equal(t, 1, sched.OverlapCount(key, 60, 90))
	// Half-open intervals: touching endpoints do not overlap.
	assert.Equal(t, 0, sched.OverlapCount(key, 90, 120))
}
