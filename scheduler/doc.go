// Package scheduler orchestrates per-flight routing and iterative
// conflict resolution: flight ordering, sequential A* routing producing
// timed waypoints, and a bounded delay-propagation loop over package
// conflict's detector.
//
// Grounded on original_source's MultiAircraftScheduler
// (schedule_multiple_flights / _plan_single_flight /
// _resolve_conflicts_iteration / _apply_delay): the same ordering
// strategies, the same "failed schedule" shape for an unroutable flight,
// the same 5-iteration cap and fixed +45s delay applied to the
// later-starting flight at most once per iteration. The teacher
// contributes the orchestrator shape (a single Schedule entry point
// composing smaller steps, as builder.BuildGraph composes Constructors)
// and the sentinel-error / doc-comment conventions.
package scheduler
