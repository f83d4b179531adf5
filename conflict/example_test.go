package conflict_test

import (
	"fmt"
	"time"

	"github.com/elidrissi/taxiway/conflict"
)

// ExampleDetectAll flags two flights crossing the same node 10 seconds apart.
func ExampleDetectAll() {
	base := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)

	schedules := []conflict.ScheduleInput{
		{FlightID: "UA100", Waypoints: []conflict.TimedWaypoint{{NodeKey: 42, Time: base}}},
		{FlightID: "DL200", Waypoints: []conflict.TimedWaypoint{{NodeKey: 42, Time: base.Add(10 * time.Second)}}},
	}

	conflicts := conflict.DetectAll(schedules, conflict.DefaultSafetyMargin)
	fmt.Printf("conflicts=%d severity=%s\n", len(conflicts), conflicts[0].Severity)
	// Output:
	// conflicts=1 severity=high
}
