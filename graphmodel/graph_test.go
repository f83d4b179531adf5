package graphmodel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/elidrissi/taxiway/graphmodel"
)

// GraphSuite exercises Graph node/edge lifecycle and query behavior.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddNode_SequentialKeys() {
	g := graphmodel.NewGraph()

	k1, err := g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, k1)

	k2, err := g.AddNode(graphmodel.CategoryRunway, 10, 10, nil, nil, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, k2)

	require.Equal(s.T(), 2, g.NodeCount())
}

func (s *GraphSuite) TestAddNode_RejectsNonFiniteCoordinate() {
	g := graphmodel.NewGraph()

	_, err := g.AddNode(graphmodel.CategoryStand, math.NaN(), 0, nil, nil, nil)
	require.ErrorIs(s.T(), err, graphmodel.ErrNonFiniteCoordinate)
}

func (s *GraphSuite) TestGetNode_NotFound() {
	g := graphmodel.NewGraph()

	_, err := g.GetNode(99)
	require.ErrorIs(s.T(), err, graphmodel.ErrNodeNotFound)
	require.False(s.T(), g.HasNode(99))
}

func (s *GraphSuite) TestAddAntiparallelEdge_CreatesBothDirections() {
	g := graphmodel.NewGraph()
	a, _ := g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	b, _ := g.AddNode(graphmodel.CategoryRunway, 100, 0, nil, nil, nil)

	ids, err := g.AddAntiparallelEdge(a, b, graphmodel.EdgeNetworkRoad, 100, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, g.EdgeCount())

	fwd := g.NeighborsOf(a)
	require.Len(s.T(), fwd, 1)
	require.Equal(s.T(), ids[0], fwd[0].ID)
	require.Equal(s.T(), b, fwd[0].To)
	require.Equal(s.T(), graphmodel.DefaultSpeedCap, fwd[0].SpeedCap, "zero speed cap must default")

	rev := g.NeighborsOf(b)
	require.Len(s.T(), rev, 1)
	require.Equal(s.T(), ids[1], rev[0].ID)
	require.Equal(s.T(), a, rev[0].To)
}

func (s *GraphSuite) TestAddAntiparallelEdge_RejectsNegativeLength() {
	g := graphmodel.NewGraph()
	a, _ := g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	b, _ := g.AddNode(graphmodel.CategoryRunway, 100, 0, nil, nil, nil)

	_, err := g.AddAntiparallelEdge(a, b, graphmodel.EdgeNetworkRoad, -1, 0)
	require.True(s.T(), errors.Is(err, graphmodel.ErrNegativeLength))
}

func (s *GraphSuite) TestNeighborsOf_UnknownNode_ReturnsEmptyNotNil() {
	g := graphmodel.NewGraph()

	out := g.NeighborsOf(123)
	require.NotNil(s.T(), out)
	require.Len(s.T(), out, 0)
}

func (s *GraphSuite) TestFindNearestNode_FiltersByPrefixAndDistance() {
	g := graphmodel.NewGraph()
	_, _ = g.AddNode(graphmodel.CategoryStand, 0, 0, nil, nil, nil)
	stand2, _ := g.AddNode(graphmodel.CategoryStand, 5, 0, nil, nil, nil)
	_, _ = g.AddNode(graphmodel.CategoryRunway, 1, 0, nil, nil, nil)

	n, ok := g.FindNearestNode(6, 0, string(graphmodel.CategoryStand), 10)
	require.True(s.T(), ok)
	require.Equal(s.T(), stand2, n.Key)

	_, ok = g.FindNearestNode(1000, 1000, "", 1)
	require.False(s.T(), ok)
}

func (s *GraphSuite) TestNodesByCategory_PrefixMatch() {
	g := graphmodel.NewGraph()
	_, _ = g.AddNode(graphmodel.CategorySynthesizedEndpoint, 0, 0, nil, nil, nil)
	_, _ = g.AddNode(graphmodel.Category(string(graphmodel.CategorySynthesizedEndpoint)+":NetworkRoad"), 1, 1, nil, nil, nil)
	_, _ = g.AddNode(graphmodel.CategoryStand, 2, 2, nil, nil, nil)

	out := g.NodesByCategory(string(graphmodel.CategorySynthesizedEndpoint))
	require.Len(s.T(), out, 2)

	all := g.NodesByCategory("")
	require.Len(s.T(), all, 3)
}
