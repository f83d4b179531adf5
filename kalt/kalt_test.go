package kalt_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/elidrissi/taxiway/astar"
	"github.com/elidrissi/taxiway/graphmodel"
	"github.com/elidrissi/taxiway/kalt"
)

type KAltSuite struct {
	suite.Suite
}

func TestKAltSuite(t *testing.T) {
	suite.Run(t, new(KAltSuite))
}

// diamondGraph builds a<->b<->d (short, 100) and a<->c<->d (longer, 150).
// One penalty round inflates a->b and b->d to 75 each, tying the two routes;
// the tie goes to a-b-d again (deduped), so both routes need k=3, rank 1 the
// shorter.
func (s *KAltSuite) diamondGraph() (*graphmodel.Graph, int, int) {
	g := graphmodel.NewGraph()
	a, _ := g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	b, _ := g.AddNode(graphmodel.CategorySynthesizedEndpoint, 50, 10, nil, nil, nil)
	c, _ := g.AddNode(graphmodel.CategorySynthesizedEndpoint, 50, -10, nil, nil, nil)
	d, _ := g.AddNode(graphmodel.CategoryRunway, 100, 0, nil, nil, nil)

	_, _ = g.AddAntiparallelEdge(a, b, graphmodel.EdgeAircraftRoad, 50, 15)
	_, _ = g.AddAntiparallelEdge(b, d, graphmodel.EdgeAircraftRoad, 50, 15)
	_, _ = g.AddAntiparallelEdge(a, c, graphmodel.EdgeAircraftRoad, 75, 15)
	_, _ = g.AddAntiparallelEdge(c, d, graphmodel.EdgeAircraftRoad, 75, 15)

	return g, a, d
}

func (s *KAltSuite) TestRun_ReturnsDistinctPathsRankedByCost() {
	g, a, d := s.diamondGraph()
	planner := astar.NewPlanner(g)

	results, err := kalt.Run(g, planner, a, d, 3)
	require.NoError(s.T(), err)
	require.Len(s.T(), results, 2)
	require.Less(s.T(), results[0].Stats.TotalDistance, results[1].Stats.TotalDistance)

	for i := range results {
		for j := i + 1; j < len(results); j++ {
			require.NotEqual(s.T(), results[i].Path, results[j].Path)
		}
	}
}

func (s *KAltSuite) TestRun_SingleRouteYieldsOneDistinctResult() {
	g := graphmodel.NewGraph()
	a, _ := g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	b, _ := g.AddNode(graphmodel.CategoryRunway, 100, 0, nil, nil, nil)
	_, _ = g.AddAntiparallelEdge(a, b, graphmodel.EdgeAircraftRoad, 100, 15)

	planner := astar.NewPlanner(g)
	results, err := kalt.Run(g, planner, a, b, 5)
	require.NoError(s.T(), err)
	require.Len(s.T(), results, 1, "only one route exists regardless of k")
}

func (s *KAltSuite) TestRun_RankOneMatchesUnpenalizedOptimum() {
	g, a, d := s.diamondGraph()
	planner := astar.NewPlanner(g)

	direct, err := planner.FindPath(a, d)
	require.NoError(s.T(), err)

	results, err := kalt.Run(g, planner, a, d, 1)
	require.NoError(s.T(), err)
	require.Len(s.T(), results, 1)
	require.Equal(s.T(), direct.Path, results[0].Path)
}
