package topology_test

import (
	"fmt"

	"github.com/elidrissi/taxiway/graphmodel"
	"github.com/elidrissi/taxiway/topology"
)

// ExampleBuild builds a two-stand, single-taxiway graph and reports its size.
func ExampleBuild() {
	points := []topology.PointFeature{
		{Category: graphmodel.CategoryStand, X: 0, Y: 0},
		{Category: graphmodel.CategoryStand, X: 200, Y: 0},
	}
	lines := []topology.PolylineFeature{
		{Type: graphmodel.EdgeAircraftRoad, Vertices: []topology.Coordinate{{X: 0, Y: 0}, {X: 200, Y: 0}}},
	}

	g, stats, err := topology.Build(points, lines)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("nodes=%d edges=%d skipped=%d\n", g.NodeCount(), g.EdgeCount(), stats.SkippedFeatures)
	// Output:
	// nodes=4 edges=10 skipped=0
}
