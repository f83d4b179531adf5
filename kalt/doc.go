// Package kalt implements k-alternatives path diversification: repeatedly
// running astar.Planner with an edge-penalty table that inflates the
// length of already-used edges, so each iteration is nudged away from
// paths already returned.
//
// This is explicitly NOT Yen's k-shortest-paths algorithm (see spec.md
// §4.5 and original_source's Astar.py, which documents Yen's as a future
// direction it never implemented) — it is the penalty-rerun heuristic the
// reference system actually ships. The penalty decoration is expressed as
// an astar.NeighborProvider wrapper, replacing the original's runtime
// method-swapping with a composition seam, the idiomatic Go analogue.
package kalt
