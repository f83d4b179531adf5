// Package astar implements a single-pair A* planner over a
// graphmodel.Graph, under the cost model in package cost.
//
// The search loop follows the teacher's dijkstra package almost exactly —
// a container/heap min-priority queue ordered by f = g + h, a closed set
// of finalized node keys, and a lazy-decrease-key discipline (stale heap
// entries are discarded on pop rather than fixed up in place) — generalized
// from single-source-shortest-path to single-pair best-first search with an
// admissible heuristic.
//
// NeighborProvider decouples the search loop from graphmodel.Graph so
// package kalt can run the identical loop over a penalty-decorated view
// without astar depending on kalt or vice versa.
package astar
