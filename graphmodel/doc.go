// Package graphmodel defines the in-memory node/edge store for an airport
// surface road network: Node, Edge, and Graph, plus the read-side query
// surface (neighbor lookup, nearest-node search, category lookup) that the
// planner and scheduler packages build on.
//
// Graph is built once (by package topology) and is immutable for the
// purposes of planning: PathPlanner and KAlternatives never mutate it, and
// a hosting service may serve many concurrent planning requests against a
// single shared Graph (see spec §5 — Graph is shared-immutable after
// build). The mutex pair on Graph exists to make the *build* phase itself
// safe to parallelize across feature sources; it is not required for
// correctness of read-only planning traffic, but costs nothing there.
//
// Node keys are small sequential integers, allocated in AddNode call
// order. This makes graphs built from identical inputs in identical order
// bit-identical across runs (spec §8), which the topology package and its
// tests rely on.
package graphmodel
