package astar

import (
	"container/heap"
	"math"

	"github.com/elidrissi/taxiway/cost"
	"github.com/elidrissi/taxiway/graphmodel"
)

// Option mutates a Planner's resolved config before search runs.
type Option func(p *Planner)

// WithWeights overrides the cost.Weights a Planner uses. Defaults to
// cost.DefaultWeights().
func WithWeights(w cost.Weights) Option {
	return func(p *Planner) {
		p.weights = w
	}
}

// Planner computes minimum-cost paths over a graphmodel.Graph (or, via
// FindPathVia, over any NeighborProvider sharing that Graph's node keys).
type Planner struct {
	graph   *graphmodel.Graph
	weights cost.Weights
}

// NewPlanner returns a Planner bound to g, using cost.DefaultWeights()
// unless overridden by an Option.
func NewPlanner(g *graphmodel.Graph, opts ...Option) *Planner {
	p := &Planner{
		graph:   g,
		weights: cost.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// FindPath computes the minimum-cost path from start to goal over p's own
// graph.
func (p *Planner) FindPath(start, goal int) (*Result, error) {
	return p.FindPathVia(start, goal, p.graph)
}

// FindPathVia computes the minimum-cost path from start to goal, expanding
// edges through neighbors instead of p.graph directly. Node coordinates
// for the heuristic are still resolved against p.graph, since a decorated
// NeighborProvider (package kalt) never introduces new nodes.
func (p *Planner) FindPathVia(start, goal int, neighbors NeighborProvider) (*Result, error) {
	if !p.graph.HasNode(start) {
		return nil, ErrStartNotFound
	}
	if !p.graph.HasNode(goal) {
		return nil, ErrGoalNotFound
	}

	goalNode, err := p.graph.GetNode(goal)
	if err != nil {
		return nil, ErrGoalNotFound
	}

	gScore := map[int]float64{start: 0}
	parent := map[int]int{}
	closed := map[int]bool{}

	pq := &frontier{}
	heap.Init(pq)

	seq := 0
	push := func(node int, g float64) {
		h := p.heuristic(node, goalNode)
		heap.Push(pq, &item{f: g + h, g: g, node: node, seq: seq})
		seq++
	}
	push(start, 0)

	searchCap := 2 * p.graph.NodeCount()
	iterations := 0

	for pq.Len() > 0 {
		if iterations >= searchCap {
			break
		}
		iterations++

		it := heap.Pop(pq).(*item)
		if closed[it.node] {
			continue
		}
		if it.g > gScore[it.node] {
			// Stale lazy-decrease-key entry; a cheaper one already closed or pending.
			continue
		}

		if it.node == goal {
			return p.buildResult(start, goal, parent), nil
		}

		closed[it.node] = true

		for _, e := range neighbors.NeighborsOf(it.node) {
			if closed[e.To] {
				continue
			}
			edgeTime := p.weights.TraversalTime(e.Length, e.SpeedCap)
			edgeCost := p.weights.Compute(e.Length, edgeTime)
			g2 := gScore[it.node] + edgeCost

			existing, seen := gScore[e.To]
			if !seen || g2 < existing {
				gScore[e.To] = g2
				parent[e.To] = it.node
				push(e.To, g2)
			}
		}
	}

	return nil, ErrPathNotFound
}

// heuristic returns h(n, goal) = cost(d_euclid, d_euclid / s_a), the
// admissible lower bound spec.md §4.4 requires.
func (p *Planner) heuristic(node int, goalNode *graphmodel.Node) float64 {
	n, err := p.graph.GetNode(node)
	if err != nil {
		return 0
	}
	d := math.Hypot(n.X-goalNode.X, n.Y-goalNode.Y)
	t := d / p.weights.NominalSpeed
	return p.weights.Compute(d, t)
}

// buildResult walks parent back from goal to start, then delegates to
// StatsForPath so the reported statistics always reflect real (unpenalized)
// graph edges, even when the search itself ran over a decorated
// NeighborProvider (package kalt).
func (p *Planner) buildResult(start, goal int, parent map[int]int) *Result {
	var path []int
	cur := goal
	for {
		path = append([]int{cur}, path...)
		if cur == start {
			break
		}
		cur = parent[cur]
	}

	res, err := p.StatsForPath(path)
	if err != nil {
		return &Result{Path: path}
	}

	return res
}

// StatsForPath computes a Result's statistics for an explicit node-key
// sequence by walking the real (unpenalized) graph edges along it. Package
// kalt uses this to re-derive honest statistics for paths discovered
// against a penalty-decorated view.
//
// TotalTime sums per-edge length/nominalSpeed (spec.md §4.4's documented
// time-model inconsistency); CombinedCost sums the same per-edge cost the
// search itself minimizes (length, min(speedCap, nominalSpeed) time).
func (p *Planner) StatsForPath(path []int) (*Result, error) {
	var totalDistance, totalTime, combinedCost float64
	for i := 1; i < len(path); i++ {
		e := p.findEdge(path[i-1], path[i])
		if e == nil {
			return nil, ErrPathNotFound
		}
		totalDistance += e.Length
		totalTime += e.Length / p.weights.NominalSpeed
		edgeTime := p.weights.TraversalTime(e.Length, e.SpeedCap)
		combinedCost += p.weights.Compute(e.Length, edgeTime)
	}

	return &Result{
		Path: path,
		Stats: Stats{
			TotalDistance: totalDistance,
			TotalTime:     totalTime,
			FuelProxy:     p.weights.FuelProxy(totalDistance, totalTime),
			CombinedCost:  combinedCost,
			NodeCount:     len(path),
		},
	}, nil
}

// findEdge returns the first outgoing edge from -> to on p.graph (ties
// among parallel edges are broken by insertion order, matching
// NeighborsOf's stable ordering).
func (p *Planner) findEdge(from, to int) *graphmodel.Edge {
	for _, e := range p.graph.NeighborsOf(from) {
		if e.To == to {
			edge := e
			return &edge
		}
	}
	return nil
}
