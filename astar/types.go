package astar

import "github.com/elidrissi/taxiway/graphmodel"

// NeighborProvider is the read-side seam the search loop runs against.
// graphmodel.Graph satisfies it directly; package kalt supplies a
// penalty-decorated implementation that inflates edge lengths without
// mutating the underlying Graph (spec.md §4.5 — "the search view is
// decorated per-iteration; no mutation survives across calls").
type NeighborProvider interface {
	NeighborsOf(key int) []graphmodel.Edge
}

// CoordinateLookup resolves a node key to planar coordinates, needed by the
// A* heuristic regardless of which NeighborProvider is in play.
type CoordinateLookup interface {
	GetNode(key int) (*graphmodel.Node, error)
}

// Result is the outcome of a successful FindPath call.
type Result struct {
	Path  []int // node keys, start to goal inclusive
	Stats Stats
}

// Stats reports the path-level statistics named in spec.md §4.4 and §6.
//
// TotalTime deliberately sums per-edge length/nominalSpeed, NOT the
// min(speedCap, nominalSpeed) time the search itself minimized over — this
// is a preserved inconsistency (see SPEC_FULL.md / DESIGN.md), not a bug.
type Stats struct {
	TotalDistance float64
	TotalTime     float64
	FuelProxy     float64
	CombinedCost  float64
	NodeCount     int
}
