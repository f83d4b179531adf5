// Package topology builds a graphmodel.Graph from geospatial point and
// polyline features: GraphBuilder ingests already-projected coordinates,
// coalesces polyline endpoints that land in the same integer-meter cell, and
// stitches semantic points (stands, runway points, network points) onto the
// nearest road endpoints within a configurable radius.
//
// The package follows the teacher's builder package in spirit — a single
// orchestrator entry point (Build), an immutable functional-option config
// (Option / config), and sentinel errors — but the graph it produces is not
// a parametric family (cycles, grids, stars); it is synthesized from
// caller-supplied features, so there is no Constructor closure type here.
package topology
