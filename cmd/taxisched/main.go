// Command taxisched runs the joint taxi scheduler on demo networks.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/elektrokombinacija/taxi-mapf/internal/algo"
	"github.com/elektrokombinacija/taxi-mapf/internal/core"
	"github.com/elektrokombinacija/taxi-mapf/internal/report"
)

func main() {
	xlsxPath := flag.String("xlsx", "", "write the city-network schedule to this xlsx file")
	budget := flag.Int("budget", 0, "joint search expansion budget (0 = default)")
	flag.Parse()

	fmt.Println("=== Capacity-Constrained Joint Taxi Scheduling ===")

	fmt.Println("--- City network, 3 taxis ---")
	inst := createCityInstance()
	fmt.Printf("Instance: %d nodes, %d edges, %d taxis\n",
		inst.Network.NumNodes, len(inst.Network.Edges()), len(inst.Trips))
	best := runSolvers(inst, *budget)

	if *xlsxPath != "" && best != nil {
		if err := report.WriteWorkbook(*xlsxPath, inst, best); err != nil {
			fmt.Println("xlsx export failed:", err)
		} else {
			fmt.Println("Schedule written to", *xlsxPath)
		}
	}

	fmt.Println("\n--- Single shared edge, 3 taxis (contention demo) ---")
	contended := createContentionInstance()
	runSolvers(contended, *budget)
}

func runSolvers(inst *core.Instance, budget int) *core.Solution {
	if err := inst.Validate(); err != nil {
		fmt.Println("invalid instance:", err)
		return nil
	}

	solvers := []algo.Solver{
		algo.NewPrioritized(),
		algo.NewJointAStar(budget),
	}

	var best *core.Solution
	for _, solver := range solvers {
		fmt.Printf("\n%s:\n", solver.Name())
		start := time.Now()
		sol := solver.Solve(inst)
		elapsed := time.Since(start)

		fmt.Print(report.Summary(inst, sol))
		if sol != nil {
			fmt.Print(report.Timeline(inst, sol))
			if best == nil || sol.TotalCost < best.TotalCost {
				best = sol
			}
		}
		fmt.Printf("(solved in %v)\n", elapsed)
	}

	if best != nil {
		fmt.Println("\nBest plan detail:")
		fmt.Print(report.Breakdown(inst, best))
	}
	return best
}

// createCityInstance builds the 8-node demo city: three taxis whose shortest
// paths overlap around the central corridor.
func createCityInstance() *core.Instance {
	net := core.NewNetwork(8)
	edges := []core.Edge{
		{A: 1, B: 2, Km: 30},
		{A: 2, B: 3, Km: 50},
		{A: 2, B: 4, Km: 60},
		{A: 3, B: 5, Km: 40},
		{A: 4, B: 6, Km: 70},
		{A: 5, B: 7, Km: 20},
		{A: 6, B: 7, Km: 30},
		{A: 7, B: 8, Km: 50},
		{A: 3, B: 6, Km: 90},
	}
	for _, e := range edges {
		net.AddEdge(e.A, e.B, e.Km)
	}

	trips := []core.Trip{
		{Origin: 2, Dest: 7},
		{Origin: 1, Dest: 8},
		{Origin: 3, Dest: 4},
	}
	return core.NewInstance(net, trips)
}

// createContentionInstance forces three taxis through one 40 km edge.
func createContentionInstance() *core.Instance {
	net := core.NewNetwork(2)
	net.AddEdge(1, 2, 40)

	trips := []core.Trip{
		{Origin: 1, Dest: 2},
		{Origin: 1, Dest: 2},
		{Origin: 1, Dest: 2},
	}
	return core.NewInstance(net, trips)
}
