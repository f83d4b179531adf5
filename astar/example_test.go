package astar_test

import (
	"fmt"

	"github.com/elidrissi/taxiway/astar"
	"github.com/elidrissi/taxiway/graphmodel"
)

// ExamplePlanner_FindPath plans a path across a single 100m taxiway segment.
func ExamplePlanner_FindPath() {
	g := graphmodel.NewGraph()
	stand, _ := g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	runway, _ := g.AddNode(graphmodel.CategoryRunway, 100, 0, nil, nil, nil)
	_, _ = g.AddAntiparallelEdge(stand, runway, graphmodel.EdgeAircraftRoad, 100, 15)

	p := astar.NewPlanner(g)
	res, err := p.FindPath(stand, runway)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("nodes=%d distance=%.0f time=%.3f\n", res.Stats.NodeCount, res.Stats.TotalDistance, res.Stats.TotalTime)
	// Output:
	// nodes=2 distance=100 time=6.667
}
