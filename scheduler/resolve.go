package scheduler

import (
	"time"

	"github.com/elidrissi/taxiway/conflict"
)

// maxResolveIterations bounds Phase 2 (spec.md §4.7: "up to 5 iterations").
const maxResolveIterations = 5

// resolveDelay is the fixed additive shift applied to a delayed flight's
// start, end, and every waypoint (spec.md §4.7).
const resolveDelay = 45 * time.Second

// resolveConflicts runs the bounded iterative resolution loop over
// schedules (keyed by flight ID), mutating non-failed schedules in place.
// It returns the conflicts remaining after the final iteration, attached
// to their participating schedules exactly as found.
func resolveConflicts(schedules map[string]*FlightSchedule, margin time.Duration) []conflict.Conflict {
	var conflicts []conflict.Conflict

	for iteration := 0; iteration < maxResolveIterations; iteration++ {
		conflicts = detect(schedules, margin)
		if len(conflicts) == 0 {
			return nil
		}

		attach(schedules, conflicts)

		if iteration == maxResolveIterations-1 {
			break
		}

		delayed := make(map[string]bool)
		for _, c := range conflicts {
			resolveOne(schedules, c, delayed)
		}
	}

	return conflicts
}

// detect builds conflict.ScheduleInput views of every non-failed schedule
// and runs the detector over them.
func detect(schedules map[string]*FlightSchedule, margin time.Duration) []conflict.Conflict {
	inputs := make([]conflict.ScheduleInput, 0, len(schedules))
	for _, fs := range schedules {
		if fs.failed() {
			continue
		}
		wps := make([]conflict.TimedWaypoint, len(fs.Waypoints))
		for i, w := range fs.Waypoints {
			wps[i] = conflict.TimedWaypoint{NodeKey: w.NodeKey, Time: w.Time}
		}
		inputs = append(inputs, conflict.ScheduleInput{FlightID: fs.FlightID, Waypoints: wps})
	}

	return conflict.DetectAll(inputs, margin)
}

// attach clears every schedule's prior conflict list, then re-attaches the
// fresh conflicts to each participating flight (spec.md §4.7 Phase 2,
// step 3).
func attach(schedules map[string]*FlightSchedule, conflicts []conflict.Conflict) {
	for _, fs := range schedules {
		if !fs.failed() {
			fs.Conflicts = nil
		}
	}

	for _, c := range conflicts {
		sc := ScheduledConflict{
			ConflictID: c.ID,
			Kind:       string(c.Kind),
			FlightIDs:  c.FlightIDs,
			NodeKey:    c.NodeKey,
			Time:       c.Time,
			Severity:   string(c.Severity),
		}
		for _, flightID := range c.FlightIDs {
			if fs, ok := schedules[flightID]; ok {
				fs.Conflicts = append(fs.Conflicts, sc)
			}
		}
	}
}

// resolveOne delays the later-starting flight of a single conflict's two
// participants by resolveDelay, unless that flight was already delayed
// this iteration (spec.md §4.7 Phase 2, step 4: "at most once per
// iteration regardless of how many conflicts it participates in").
func resolveOne(schedules map[string]*FlightSchedule, c conflict.Conflict, delayed map[string]bool) {
	if len(c.FlightIDs) < 2 {
		return
	}

	a, okA := schedules[c.FlightIDs[0]]
	b, okB := schedules[c.FlightIDs[1]]
	if !okA || !okB || a.failed() || b.failed() {
		return
	}

	later := a
	if b.StartTime.After(a.StartTime) {
		later = b
	}

	if delayed[later.FlightID] {
		return
	}

	applyDelay(later, resolveDelay)
	delayed[later.FlightID] = true
}

// applyDelay shifts start, end, every waypoint, and the accumulated delay
// field uniformly by delta (spec.md §4.7 Phase 2, step 4).
func applyDelay(fs *FlightSchedule, delta time.Duration) {
	fs.StartTime = fs.StartTime.Add(delta)
	fs.EndTime = fs.EndTime.Add(delta)
	fs.DelaySeconds += delta.Seconds()

	for i := range fs.Waypoints {
		fs.Waypoints[i].Time = fs.Waypoints[i].Time.Add(delta)
	}
}
