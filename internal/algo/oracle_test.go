package algo

import (
	"math"
	"testing"

	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

// createLine builds the path network 1-2-3 with 10 km segments.
func createLine() *core.Network {
	net := core.NewNetwork(3)
	net.AddEdge(1, 2, 10)
	net.AddEdge(2, 3, 10)
	return net
}

func TestTravelTimes_LineNetwork(t *testing.T) {
	tt := NewTravelTimes(createLine(), 40)

	// 10 km at 40 km/h is 15 minutes.
	if got := tt.Between(1, 2); got != 15 {
		t.Errorf("Between(1,2) = %v, want 15", got)
	}
	if got := tt.Between(1, 3); got != 30 {
		t.Errorf("Between(1,3) = %v, want 30", got)
	}
	if got := tt.Between(2, 2); got != 0 {
		t.Errorf("Between(2,2) = %v, want 0", got)
	}
}

func TestTravelTimes_Symmetric(t *testing.T) {
	net := core.NewNetwork(4)
	net.AddEdge(1, 2, 30)
	net.AddEdge(2, 3, 50)
	net.AddEdge(3, 4, 20)
	net.AddEdge(1, 4, 90)
	tt := NewTravelTimes(net, 40)

	for u := core.NodeID(1); u <= 4; u++ {
		for v := core.NodeID(1); v <= 4; v++ {
			if tt.Between(u, v) != tt.Between(v, u) {
				t.Errorf("Between(%d,%d)=%v but Between(%d,%d)=%v",
					u, v, tt.Between(u, v), v, u, tt.Between(v, u))
			}
		}
	}
}

func TestTravelTimes_Unreachable(t *testing.T) {
	net := core.NewNetwork(3)
	net.AddEdge(1, 2, 10)
	// Node 3 is isolated.
	tt := NewTravelTimes(net, 40)

	if got := tt.Between(1, 3); !math.IsInf(got, 1) {
		t.Errorf("Between(1,3) = %v, want +Inf", got)
	}
	if path := tt.Path(1, 3); path != nil {
		t.Errorf("Path(1,3) = %v, want nil", path)
	}
}

func TestTravelTimes_PathReconstruction(t *testing.T) {
	net := core.NewNetwork(4)
	net.AddEdge(1, 2, 10)
	net.AddEdge(2, 3, 10)
	net.AddEdge(3, 4, 10)
	net.AddEdge(1, 4, 100) // long direct road, never preferred
	tt := NewTravelTimes(net, 40)

	path := tt.Path(1, 4)
	want := []core.NodeID{1, 2, 3, 4}
	if len(path) != len(want) {
		t.Fatalf("Path(1,4) = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("Path(1,4) = %v, want %v", path, want)
		}
	}
}

func TestTravelTimes_EdgeMinutes(t *testing.T) {
	tt := NewTravelTimes(createLine(), 40)
	if got := tt.EdgeMinutes(40); got != 60 {
		t.Errorf("EdgeMinutes(40) = %v, want 60", got)
	}
}
