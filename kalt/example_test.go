package kalt_test

import (
	"fmt"

	"github.com/elidrissi/taxiway/astar"
	"github.com/elidrissi/taxiway/graphmodel"
	"github.com/elidrissi/taxiway/kalt"
)

// ExampleRun requests three alternatives across a two-route diamond graph.
// The second rerun only ties the two routes and repeats the first one, which
// is dropped as a duplicate, so both routes appear after three reruns.
func ExampleRun() {
	g := graphmodel.NewGraph()
	a, _ := g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	b, _ := g.AddNode(graphmodel.CategorySynthesizedEndpoint, 50, 10, nil, nil, nil)
	c, _ := g.AddNode(graphmodel.CategorySynthesizedEndpoint, 50, -10, nil, nil, nil)
	d, _ := g.AddNode(graphmodel.CategoryRunway, 100, 0, nil, nil, nil)
	_, _ = g.AddAntiparallelEdge(a, b, graphmodel.EdgeAircraftRoad, 50, 15)
	_, _ = g.AddAntiparallelEdge(b, d, graphmodel.EdgeAircraftRoad, 50, 15)
	_, _ = g.AddAntiparallelEdge(a, c, graphmodel.EdgeAircraftRoad, 75, 15)
	_, _ = g.AddAntiparallelEdge(c, d, graphmodel.EdgeAircraftRoad, 75, 15)

	planner := astar.NewPlanner(g)
	results, err := kalt.Run(g, planner, a, d, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for rank, r := range results {
		fmt.Printf("rank %d: distance=%.0f\n", rank+1, r.Stats.TotalDistance)
	}
	// Output:
	// rank 1: distance=100
	// rank 2: distance=150
}
