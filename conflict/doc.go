// Package conflict detects spatio-temporal conflicts between flight
// schedules: two flights occupying the same node within a safety margin
// of each other.
//
// Grounded directly on original_source's ConflictDetector
// (MultiAircraftScheduler.py): a pairwise scan over schedules, deduped by
// (node, focal time), with severity split at a 15s inner threshold.
// Crossing-edge detection is carried in the source as a documented,
// explicitly-disabled method and is represented here only by the reserved
// KindCrossing constant — spec.md §4.6 requires it stay off.
package conflict
