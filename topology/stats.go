package topology

import "github.com/elidrissi/taxiway/graphmodel"

// Stats reports build-time counters for one Build call: how many features
// were ingested into which structures, how many were skipped, and a
// breakdown of the resulting graph by category/type and connectivity. This
// is a SUPPLEMENTED FEATURE (see SPEC_FULL.md) grounded on
// original_source's `Astar.py._print_statistics` — a per-node-type count,
// a per-edge-type count, and an isolated-node count (`len(nodes) -
// nodes_with_edges`) — reported here as values instead of printed, since
// the core has no logging surface (see SPEC_FULL.md AMBIENT STACK).
type Stats struct {
	PointNodes      int // nodes created directly from point features
	EndpointNodes   int // nodes created from coalesced polyline endpoints
	RoadEdgePairs   int // antiparallel road edge pairs inserted
	StitchEdgePairs int // antiparallel proximity-stitch edge pairs inserted
	SkippedFeatures int // malformed or rejected features (spec.md §4.1: never fatal)
	TotalNodes      int
	TotalEdges      int

	// NodesByCategory counts nodes per exact Category value (no prefix
	// collapsing), mirroring _print_statistics's per-node-type tally.
	NodesByCategory map[graphmodel.Category]int
	// EdgesByType counts directed edges per EdgeType — an antiparallel
	// pair contributes 2, matching TotalEdges's directed-edge count.
	EdgesByType map[graphmodel.EdgeType]int
	// IsolatedNodes counts nodes with no outgoing edges at all, i.e.
	// len(nodes) - nodes_with_edges in the original.
	IsolatedNodes int
}
