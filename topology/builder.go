package topology

import (
	"math"

	"github.com/elidrissi/taxiway/graphmodel"
)

// Build synthesizes a graphmodel.Graph from point and polyline features.
//
// Ingestion runs in three passes, each fully completed before the next
// starts, matching spec.md §4.1's ordering requirement (observable only
// through node keys, reproducible for fixed input and fixed option order):
//
//  1. Point features, in input order: one node each.
//  2. Polyline features, in input order: endpoint coalescing onto an
//     integer-meter cell table, then an antiparallel edge pair per line.
//  3. Proximity stitching: every stitchable point feature (in input order)
//     is connected to its nearest K road endpoints within the threshold.
//
// Build never returns an error for malformed individual features — per
// spec.md §4.1 a malformed feature is skipped, not fatal (tallied in
// Stats.SkippedFeatures) — but it does validate cfg upfront: a
// non-positive ProximityThreshold, ProximityK, or DefaultEdgeSpeedCap is
// rejected outright with ErrInvalidThreshold, ErrInvalidK, or
// ErrInvalidSpeedCap respectively, since those are caller configuration
// mistakes rather than per-feature data problems.
func Build(points []PointFeature, lines []PolylineFeature, opts ...Option) (*graphmodel.Graph, *Stats, error) {
	cfg := newConfig(opts...)
	if cfg.proximityThreshold <= 0 {
		return nil, nil, ErrInvalidThreshold
	}
	if cfg.proximityK <= 0 {
		return nil, nil, ErrInvalidK
	}
	if cfg.defaultEdgeSpeedCap <= 0 {
		return nil, nil, ErrInvalidSpeedCap
	}

	g := graphmodel.NewGraph()
	stats := &Stats{}

	// Pass 1: point features.
	var stitchPoints []int
	for _, pf := range points {
		key, err := g.AddNode(pf.Category, pf.X, pf.Y, pf.Lon, pf.Lat, pf.Props)
		if err != nil {
			stats.SkippedFeatures++
			continue
		}
		stats.PointNodes++
		if stitchableCategories[pf.Category] {
			stitchPoints = append(stitchPoints, key)
		}
	}

	// Pass 2: polyline ingestion with endpoint coalescing.
	cellTable := make(map[[2]int]int) // integer-meter cell -> node key
	index := newSpatialIndex(cfg.proximityThreshold)

	coalesce := func(c Coordinate) int {
		cell := [2]int{int(math.Floor(c.X)), int(math.Floor(c.Y))}
		if key, ok := cellTable[cell]; ok {
			return key
		}
		key, _ := g.AddNode(graphmodel.CategorySynthesizedEndpoint, c.X, c.Y, nil, nil, nil)
		cellTable[cell] = key
		stats.EndpointNodes++
		index.insert(key, c.X, c.Y)
		return key
	}

	for _, lf := range lines {
		if len(lf.Vertices) < 2 {
			stats.SkippedFeatures++
			continue
		}

		start := coalesce(lf.Vertices[0])
		end := coalesce(lf.Vertices[len(lf.Vertices)-1])
		length := polylineLength(lf.Vertices)

		if _, err := g.AddAntiparallelEdge(start, end, lf.Type, length, cfg.defaultEdgeSpeedCap); err != nil {
			stats.SkippedFeatures++
			continue
		}
		stats.RoadEdgePairs++
	}

	// Pass 3: proximity stitching.
	for _, pKey := range stitchPoints {
		pNode, err := g.GetNode(pKey)
		if err != nil {
			continue
		}

		nearest := index.kNearestWithin(pNode.X, pNode.Y, cfg.proximityThreshold, cfg.proximityK)
		for _, rKey := range nearest {
			rNode, err := g.GetNode(rKey)
			if err != nil {
				continue
			}
			dist := math.Hypot(rNode.X-pNode.X, rNode.Y-pNode.Y)
			if _, err := g.AddAntiparallelEdge(pKey, rKey, graphmodel.EdgeProximityStitch, dist, cfg.defaultEdgeSpeedCap); err == nil {
				stats.StitchEdgePairs++
			}
		}
	}

	stats.TotalNodes = g.NodeCount()
	stats.TotalEdges = g.EdgeCount()
	populateBreakdown(g, stats)

	return g, stats, nil
}

// populateBreakdown fills in Stats.NodesByCategory, Stats.EdgesByType, and
// Stats.IsolatedNodes by walking the finished Graph, matching
// original_source's `_print_statistics` tallies (see Stats's doc comment).
func populateBreakdown(g *graphmodel.Graph, stats *Stats) {
	stats.NodesByCategory = make(map[graphmodel.Category]int)
	stats.EdgesByType = make(map[graphmodel.EdgeType]int)

	for _, n := range g.NodesByCategory("") {
		stats.NodesByCategory[n.Category]++

		edges := g.NeighborsOf(n.Key)
		if len(edges) == 0 {
			stats.IsolatedNodes++
			continue
		}
		for _, e := range edges {
			stats.EdgesByType[e.Type]++
		}
	}
}

// polylineLength returns the planar length of the polyline through vs,
// i.e. the sum of Euclidean distances between consecutive vertices.
func polylineLength(vs []Coordinate) float64 {
	var total float64
	for i := 1; i < len(vs); i++ {
		total += math.Hypot(vs[i].X-vs[i-1].X, vs[i].Y-vs[i-1].Y)
	}
	return total
}
