package conflict

import "time"

// TimedWaypoint is a single (node, time) pair along a flight's planned
// path, the minimal shape conflict detection needs.
type TimedWaypoint struct {
	NodeKey int
	Time    time.Time
}

// ScheduleInput is the minimal view of a flight schedule DetectAll
// operates on. Package scheduler builds one of these per FlightSchedule
// rather than conflict importing scheduler's richer type, to keep the two
// packages free of an import cycle.
type ScheduleInput struct {
	FlightID  string
	Waypoints []TimedWaypoint
}

// Kind tags the nature of a detected Conflict.
type Kind string

const (
	// KindNode is a same-node temporal overlap under the safety margin.
	KindNode Kind = "node"

	// KindCrossing is reserved for geometric edge-crossing detection.
	// spec.md §4.6 keeps this disabled: the field exists so Conflict is
	// forward-compatible, but DetectAll never produces it.
	KindCrossing Kind = "crossing"

	// KindPathNotFound marks a schedule that failed to route at all
	// (package scheduler attaches this directly; conflict never emits it).
	KindPathNotFound Kind = "path_not_found"
)

// Severity classifies how tight a Conflict's time margin was.
type Severity string

const (
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityCritical Severity = "critical"
)

// Conflict records one detected spatio-temporal overlap between two
// flights' schedules.
type Conflict struct {
	ID        string
	Kind      Kind
	FlightIDs []string
	NodeKey   int
	Time      time.Time
	Severity  Severity
}
