package kalt

import (
	"github.com/elidrissi/taxiway/astar"
	"github.com/elidrissi/taxiway/graphmodel"
)

// Run produces up to k distinct near-optimal paths from start to goal,
// rank 1 being the unpenalized A* optimum (spec.md §4.5).
//
// Each result's Stats is computed by astar against the real, unpenalized
// graph: the penalty table only steers which path FindPathVia discovers,
// it never inflates the reported distance/time/cost of the path that is
// actually returned.
func Run(g *graphmodel.Graph, planner *astar.Planner, start, goal, k int) ([]*astar.Result, error) {
	view := &penalizedView{graph: g, penalty: map[edgeKey]int{}}

	var results []*astar.Result
	var seen [][]int

	for i := 0; i < k; i++ {
		res, err := planner.FindPathVia(start, goal, view)
		if err != nil {
			break
		}

		if !containsPath(seen, res.Path) {
			results = append(results, res)
			seen = append(seen, res.Path)
		}

		for j := 1; j < len(res.Path); j++ {
			key := edgeKey{from: res.Path[j-1], to: res.Path[j]}
			view.penalty[key]++
		}
	}

	return results, nil
}

// containsPath reports whether candidate's node sequence already appears
// in seen (spec.md §4.5: "deduplicate before returning").
func containsPath(seen [][]int, candidate []int) bool {
	for _, s := range seen {
		if pathsEqual(s, candidate) {
			return true
		}
	}
	return false
}

func pathsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
