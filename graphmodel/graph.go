package graphmodel

import (
	"math"
	"sync"
)

// Graph is the in-memory node/edge store for the airport surface network.
//
// muNode guards nodes and nextNodeKey; muEdge guards edges and adjacency.
// Splitting the locks (rather than one global mutex) mirrors the teacher's
// core.Graph and lets node ingestion and edge ingestion run in separate
// goroutines during topology.Build without contending on each other.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes       map[int]*Node
	nextNodeKey int

	edges      map[int]*Edge
	nextEdgeID int
	adjacency  map[int][]*Edge // node key -> outgoing edges, insertion order
}

// NewGraph returns an empty Graph ready for node and edge insertion.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int][]*Edge),
	}
}

// AddNode allocates a fresh node key and stores a new Node with the given
// category, planar coordinates, optional original geographic coordinates,
// and property bag. Returns ErrNonFiniteCoordinate if x or y is NaN or
// infinite.
//
// Keys are assigned in strictly increasing call order starting at 1, which
// is what makes graphs built from identical inputs in identical order
// reproducible across runs (spec.md §8).
func (g *Graph) AddNode(category Category, x, y float64, lon, lat *float64, props map[string]interface{}) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrNonFiniteCoordinate
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	g.nextNodeKey++
	key := g.nextNodeKey
	g.nodes[key] = &Node{
		Key:      key,
		Category: category,
		X:        x,
		Y:        y,
		Lon:      lon,
		Lat:      lat,
		Props:    props,
	}

	return key, nil
}

// GetNode returns the Node for key, or ErrNodeNotFound.
func (g *Graph) GetNode(key int) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// HasNode reports whether key exists in the Graph.
func (g *Graph) HasNode(key int) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[key]

	return ok
}

// NodeCount returns the number of nodes in the Graph.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges in the Graph (an
// antiparallel road pair counts as two).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// NeighborsOf returns the outgoing edges of node key, in insertion order.
// Returns an empty (never nil) slice for a node with no outgoing edges,
// including one that does not exist — callers that need existence
// checking should call GetNode first (spec.md §4.2).
func (g *Graph) NeighborsOf(key int) []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	edges := g.adjacency[key]
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}

	return out
}
