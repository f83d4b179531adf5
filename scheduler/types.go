package scheduler

import "time"

// Operation tags a Flight as a departure or arrival.
type Operation string

const (
	OperationDeparture Operation = "departure"
	OperationArrival   Operation = "arrival"
)

// Priority tags a Flight's scheduling priority.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityRank orders Priority values for the "priority" strategy
// (descending priority, spec.md §4.7): higher rank sorts first.
var priorityRank = map[Priority]int{
	PriorityHigh:   2,
	PriorityMedium: 1,
	PriorityLow:    0,
}

// Strategy selects the flight-ordering rule Schedule applies before
// routing (spec.md §4.7).
type Strategy string

const (
	StrategyFCFS       Strategy = "fcfs"
	StrategyPriority   Strategy = "priority"
	StrategyTimeWindow Strategy = "time_window"
)

// Flight is one aircraft's requested ground movement.
type Flight struct {
	FlightID      string
	AircraftType  string
	Operation     Operation
	StartKey      int
	EndKey        int
	ScheduledTime time.Time
	Priority      Priority
	Speed         float64 // m/s, the flight's own taxi speed (distinct from cost.Weights.NominalSpeed)
}

// TimedWaypoint is a (node, time) pair along a FlightSchedule's path.
type TimedWaypoint struct {
	NodeKey int
	Time    time.Time
}

// ScheduledConflict is a conflict.Conflict flattened onto the
// FlightSchedule that participates in it, carrying only the fields a
// schedule consumer needs (spec.md §6's FlightSchedule.conflicts shape).
type ScheduledConflict struct {
	ConflictID string
	Kind       string
	FlightIDs  []string
	NodeKey    int
	Time       time.Time
	Severity   string
}

// FlightSchedule is Schedule's per-flight output record.
//
// TotalTime sums per-edge length/nominalSpeed from astar.Stats, not
// length/flight.Speed — see astar.Stats's doc comment for the preserved
// edge-cap-vs-nominal-speed inconsistency this carries forward.
// Waypoints, by contrast, are walked using flight.Speed directly (spec.md
// §4.7: "adding L/flight.speed per edge"), so TotalTime and the time span
// covered by Waypoints are not required to agree — this mirrors the
// reference scheduler, which computes total_time from the optimizer's
// stats and waypoint times from the flight's own speed independently.
type FlightSchedule struct {
	FlightID      string
	Operation     Operation
	StartNodeKey  int
	EndNodeKey    int
	ScheduledTime time.Time
	StartTime     time.Time
	EndTime       time.Time
	Path          []int
	Waypoints     []TimedWaypoint
	TotalDistance float64
	TotalTime     float64
	DelaySeconds  float64
	Conflicts     []ScheduledConflict
}

// failed reports whether this is a "failed schedule": routing found no
// path, so Path is exactly [start, end] and Waypoints is empty (spec.md
// §9's decided Open Question on failed-schedule path shape). That Path is
// not a route: start and end need not be joined by any edge. Failed
// schedules are included in Schedule's output but skipped by the resolver.
func (fs *FlightSchedule) failed() bool {
	return len(fs.Waypoints) == 0
}
