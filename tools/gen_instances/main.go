// Package main provides instance generation for taxi-scheduling benchmarks.
// Generates deterministic random road networks with configurable parameters.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// InstanceParams defines parameters for instance generation.
type InstanceParams struct {
	Seed        int64   `json:"seed"`
	NumNodes    int     `json:"num_nodes"`
	ExtraEdges  int     `json:"extra_edges"` // Edges beyond the spanning tree
	NumTaxis    int     `json:"num_taxis"`
	MinKm       float64 `json:"min_km"`
	MaxKm       float64 `json:"max_km"`
	WaitPenalty float64 `json:"wait_penalty"`
	SpeedKmh    float64 `json:"speed_kmh"`
}

// Edge connects two nodes with a length in kilometers.
type Edge struct {
	A  int     `json:"a"`
	B  int     `json:"b"`
	Km float64 `json:"km"`
}

// Trip is one taxi's origin/destination pair.
type Trip struct {
	Origin int `json:"origin"`
	Dest   int `json:"dest"`
}

// Instance represents a complete taxi-scheduling problem.
type Instance struct {
	Name        string         `json:"name"`
	Params      InstanceParams `json:"params"`
	NumNodes    int            `json:"num_nodes"`
	Edges       []Edge         `json:"edges"`
	Trips       []Trip         `json:"trips"`
	WaitPenalty float64        `json:"wait_penalty"`
	SpeedKmh    float64        `json:"speed_kmh"`
	Generated   string         `json:"generated"`
}

// generateInstance creates a connected random network with trips.
// Connectivity comes from a random spanning tree; extra edges add route
// choice so contention has detours to exploit.
func generateInstance(params InstanceParams) *Instance {
	rng := rand.New(rand.NewSource(params.Seed))

	inst := &Instance{
		Name:        fmt.Sprintf("taxinet_%dn_%dt_%d", params.NumNodes, params.NumTaxis, params.Seed),
		Params:      params,
		NumNodes:    params.NumNodes,
		WaitPenalty: params.WaitPenalty,
		SpeedKmh:    params.SpeedKmh,
		Generated:   time.Now().UTC().Format(time.RFC3339),
	}

	randKm := func() float64 {
		return params.MinKm + rng.Float64()*(params.MaxKm-params.MinKm)
	}

	// Spanning tree: attach each node to a random earlier node.
	for n := 2; n <= params.NumNodes; n++ {
		parent := 1 + rng.Intn(n-1)
		inst.Edges = append(inst.Edges, Edge{A: parent, B: n, Km: randKm()})
	}

	// Extra edges between distinct random pairs.
	have := make(map[[2]int]bool, len(inst.Edges))
	for _, e := range inst.Edges {
		a, b := e.A, e.B
		if a > b {
			a, b = b, a
		}
		have[[2]int{a, b}] = true
	}
	for added := 0; added < params.ExtraEdges; {
		a := 1 + rng.Intn(params.NumNodes)
		b := 1 + rng.Intn(params.NumNodes)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if have[[2]int{a, b}] {
			continue
		}
		have[[2]int{a, b}] = true
		inst.Edges = append(inst.Edges, Edge{A: a, B: b, Km: randKm()})
		added++
	}

	for i := 0; i < params.NumTaxis; i++ {
		origin := 1 + rng.Intn(params.NumNodes)
		dest := 1 + rng.Intn(params.NumNodes)
		inst.Trips = append(inst.Trips, Trip{Origin: origin, Dest: dest})
	}

	return inst
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	numNodes := flag.Int("nodes", 12, "Number of network nodes")
	extraEdges := flag.Int("extra-edges", 6, "Edges beyond the spanning tree")
	numTaxis := flag.Int("taxis", 3, "Number of taxis")
	minKm := flag.Float64("min-km", 10, "Minimum edge length (km)")
	maxKm := flag.Float64("max-km", 90, "Maximum edge length (km)")
	waitPenalty := flag.Float64("wait", 30, "Wait penalty (minutes)")
	speed := flag.Float64("speed", 40, "Taxi speed (km/h)")
	count := flag.Int("count", 1, "Number of instances (seed increments per instance)")
	outputDir := flag.String("output", "testdata", "Output directory")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		params := InstanceParams{
			Seed:        *seed + int64(i),
			NumNodes:    *numNodes,
			ExtraEdges:  *extraEdges,
			NumTaxis:    *numTaxis,
			MinKm:       *minKm,
			MaxKm:       *maxKm,
			WaitPenalty: *waitPenalty,
			SpeedKmh:    *speed,
		}

		inst := generateInstance(params)

		filename := filepath.Join(*outputDir, inst.Name+".json")
		data, err := json.MarshalIndent(inst, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling instance %s: %v\n", inst.Name, err)
			continue
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing instance %s: %v\n", filename, err)
			continue
		}

		fmt.Printf("Generated: %s (%d nodes, %d edges, %d taxis)\n",
			filename, inst.NumNodes, len(inst.Edges), len(inst.Trips))
	}
}
