package kalt

import "github.com/elidrissi/taxiway/graphmodel"

// edgeKey identifies a directed edge by its endpoints, for penalty lookup.
type edgeKey struct {
	from, to int
}

// penalizedView decorates a graphmodel.Graph's NeighborsOf with per-edge
// length inflation, without mutating the Graph (spec.md §4.5: "no mutation
// survives across calls").
type penalizedView struct {
	graph   *graphmodel.Graph
	penalty map[edgeKey]int
}

// NeighborsOf returns graph's outgoing edges for key, with each edge's
// Length multiplied by (1 + 0.5*c) where c is that edge's current penalty
// count. The reverse direction is never penalized by this method alone —
// penalties are only ever recorded for the direction actually traversed
// (see Run).
func (v *penalizedView) NeighborsOf(key int) []graphmodel.Edge {
	edges := v.graph.NeighborsOf(key)
	out := make([]graphmodel.Edge, len(edges))
	for i, e := range edges {
		c := v.penalty[edgeKey{from: e.From, to: e.To}]
		if c > 0 {
			e.Length = e.Length * (1 + 0.5*float64(c))
		}
		out[i] = e
	}

	return out
}
