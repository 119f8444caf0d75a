// Package algo implements capacity-constrained taxi scheduling algorithms.
package algo

import (
	"container/heap"
	"math"

	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

// TravelTimes precomputes all-pairs shortest travel times over the network,
// ignoring capacity constraints. Times are minutes; unreachable pairs are
// +Inf. Read-only after construction, so one oracle may serve concurrent
// searches.
type TravelTimes struct {
	minutes [][]float64      // [src][dst], 1-based
	prev    [][]core.NodeID  // predecessor on the shortest path from src
	network *core.Network
	perKm   float64
}

// NewTravelTimes runs Dijkstra once per source node over kilometer weights
// and scales the results to minutes.
func NewTravelTimes(network *core.Network, speedKmh float64) *TravelTimes {
	tt := &TravelTimes{
		minutes: make([][]float64, network.NumNodes+1),
		prev:    make([][]core.NodeID, network.NumNodes+1),
		network: network,
		perKm:   60.0 / speedKmh,
	}
	for src := core.NodeID(1); int(src) <= network.NumNodes; src++ {
		tt.minutes[src], tt.prev[src] = tt.singleSource(src)
	}
	return tt
}

// Between returns the shortest travel time from u to v in minutes, or +Inf
// when v is unreachable from u.
func (tt *TravelTimes) Between(u, v core.NodeID) float64 {
	return tt.minutes[u][v]
}

// Path returns the node sequence of the shortest path from u to v, inclusive
// of both endpoints, or nil when v is unreachable.
func (tt *TravelTimes) Path(u, v core.NodeID) []core.NodeID {
	if math.IsInf(tt.minutes[u][v], 1) {
		return nil
	}
	var rev []core.NodeID
	for n := v; n != 0; n = tt.prev[u][n] {
		rev = append(rev, n)
	}
	path := make([]core.NodeID, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}

// EdgeMinutes converts an edge length into a traversal duration.
func (tt *TravelTimes) EdgeMinutes(km float64) float64 {
	return km * tt.perKm
}

// distNode is a lazy decrease-key heap entry.
type distNode struct {
	node  core.NodeID
	dist  float64 // accumulated kilometers
	index int
}

type distHeap []*distNode

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *distHeap) Push(x any) {
	n := x.(*distNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// singleSource is Dijkstra over kilometers with lazy decrease-key: stale
// heap entries are skipped on pop rather than updated in place.
func (tt *TravelTimes) singleSource(src core.NodeID) ([]float64, []core.NodeID) {
	distKm := make([]float64, tt.network.NumNodes+1)
	prev := make([]core.NodeID, tt.network.NumNodes+1)
	for i := range distKm {
		distKm[i] = math.Inf(1)
	}
	distKm[src] = 0

	open := &distHeap{}
	heap.Init(open)
	heap.Push(open, &distNode{node: src, dist: 0})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*distNode)
		if cur.dist > distKm[cur.node] {
			continue // stale entry
		}
		for _, arc := range tt.network.Neighbors(cur.node) {
			nd := cur.dist + arc.Km
			if nd < distKm[arc.To] {
				distKm[arc.To] = nd
				prev[arc.To] = cur.node
				heap.Push(open, &distNode{node: arc.To, dist: nd})
			}
		}
	}

	minutes := make([]float64, tt.network.NumNodes+1)
	for i, km := range distKm {
		minutes[i] = km * tt.perKm
	}
	minutes[0] = math.Inf(1)
	return minutes, prev
}
