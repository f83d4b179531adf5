package scheduler

import (
	"fmt"
	"time"

	"github.com/elidrissi/taxiway/astar"
	"github.com/elidrissi/taxiway/conflict"
	"github.com/elidrissi/taxiway/graphmodel"
)

// routeFlight runs PathPlanner for one flight and returns its
// FlightSchedule: a routed schedule on success, or a "failed schedule" on
// PathNotFound (spec.md §4.7 Phase 1).
//
// Waypoint times are derived from the flight's own speed (L/flight.Speed
// per edge, spec.md §4.7), independently of astar.Stats.TotalTime, which
// uses the aircraft nominal speed configured on the Planner instead. The
// two figures are allowed to diverge; see FlightSchedule's doc comment.
func routeFlight(flight Flight, planner *astar.Planner, g *graphmodel.Graph) *FlightSchedule {
	res, err := planner.FindPath(flight.StartKey, flight.EndKey)
	if err != nil {
		return failedSchedule(flight)
	}

	waypoints := make([]TimedWaypoint, 0, len(res.Path))
	current := flight.ScheduledTime
	for i, nodeKey := range res.Path {
		waypoints = append(waypoints, TimedWaypoint{NodeKey: nodeKey, Time: current})

		if i < len(res.Path)-1 && flight.Speed > 0 {
			length := edgeLength(g, res.Path[i], res.Path[i+1])
			current = current.Add(time.Duration(length / flight.Speed * float64(time.Second)))
		}
	}

	return &FlightSchedule{
		FlightID:      flight.FlightID,
		Operation:     flight.Operation,
		StartNodeKey:  flight.StartKey,
		EndNodeKey:    flight.EndKey,
		ScheduledTime: flight.ScheduledTime,
		StartTime:     flight.ScheduledTime,
		EndTime:       current,
		Path:          res.Path,
		Waypoints:     waypoints,
		TotalDistance: res.Stats.TotalDistance,
		TotalTime:     res.Stats.TotalTime,
	}
}

// edgeLength returns the length of the first outgoing edge from -> to on
// g, or 0 if none exists (which never happens for a path astar itself
// just returned).
func edgeLength(g *graphmodel.Graph, from, to int) float64 {
	for _, e := range g.NeighborsOf(from) {
		if e.To == to {
			return e.Length
		}
	}
	return 0
}

// failedSchedule builds the minimal "failed schedule" spec.md §4.7 names:
// path is exactly [start, end], waypoints are empty, totals are zero, and
// a single critical path_not_found conflict is attached.
func failedSchedule(flight Flight) *FlightSchedule {
	return &FlightSchedule{
		FlightID:      flight.FlightID,
		Operation:     flight.Operation,
		StartNodeKey:  flight.StartKey,
		EndNodeKey:    flight.EndKey,
		ScheduledTime: flight.ScheduledTime,
		StartTime:     flight.ScheduledTime,
		EndTime:       flight.ScheduledTime,
		Path:          []int{flight.StartKey, flight.EndKey},
		Waypoints:     nil,
		Conflicts: []ScheduledConflict{
			{
				ConflictID: fmt.Sprintf("path_fail_%s", flight.FlightID),
				Kind:       string(conflict.KindPathNotFound),
				FlightIDs:  []string{flight.FlightID},
				NodeKey:    flight.StartKey,
				Time:       flight.ScheduledTime,
				Severity:   "critical",
			},
		},
	}
}
