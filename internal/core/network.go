// Package core defines domain models for capacity-constrained taxi routing.
package core

// NodeID identifies an intersection in the road network.
// Valid nodes are 1..NumNodes.
type NodeID int

// Edge is an undirected road segment with a length in kilometers.
type Edge struct {
	A, B NodeID
	Km   float64
}

// Arc is one directed half of an edge as seen from a node's adjacency list.
type Arc struct {
	To NodeID
	Km float64
}

// Network is the static road network. Built once, read-only during search.
type Network struct {
	NumNodes int
	adj      map[NodeID][]Arc
}

// NewNetwork creates an empty network over nodes 1..numNodes.
func NewNetwork(numNodes int) *Network {
	return &Network{
		NumNodes: numNodes,
		adj:      make(map[NodeID][]Arc, numNodes),
	}
}

// AddEdge inserts a bidirectional road segment.
func (n *Network) AddEdge(a, b NodeID, km float64) {
	n.adj[a] = append(n.adj[a], Arc{To: b, Km: km})
	n.adj[b] = append(n.adj[b], Arc{To: a, Km: km})
}

// Neighbors returns the adjacency list of a node. Callers must not mutate it.
func (n *Network) Neighbors(v NodeID) []Arc {
	return n.adj[v]
}

// HasNode reports whether v is inside the valid node range.
func (n *Network) HasNode(v NodeID) bool {
	return v >= 1 && int(v) <= n.NumNodes
}

// Edges returns every undirected edge once, in insertion order per node.
func (n *Network) Edges() []Edge {
	var edges []Edge
	for a := NodeID(1); int(a) <= n.NumNodes; a++ {
		for _, arc := range n.adj[a] {
			if a < arc.To {
				edges = append(edges, Edge{A: a, B: arc.To, Km: arc.Km})
			}
		}
	}
	return edges
}
