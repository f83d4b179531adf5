// Package taxiway routes and schedules aircraft across an airport surface
// movement network.
//
// It is organized under seven subpackages, each owning one stage of the
// pipeline:
//
//	graphmodel/ — thread-safe Node/Edge/Graph primitives
//	topology/   — GraphBuilder: synthesizes a Graph from point and polyline features
//	cost/       — the weighted distance/time/fuel cost model shared by planning
//	astar/      — PathPlanner: single-pair multi-objective A*
//	kalt/       — KAlternatives: k-shortest-paths via penalty-decorated reruns
//	conflict/   — ConflictDetector: pairwise spatio-temporal node conflicts
//	scheduler/  — Scheduler: flight ordering, routing, and iterative delay resolution
//
// Pure Go — no cgo, no hidden dependencies. The core packages return errors
// and values; they never log. A hosting service is expected to own logging,
// HTTP/RPC transport, and persistence — none of that is this module's
// concern.
package taxiway
