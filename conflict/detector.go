package conflict

import (
	"fmt"
	"time"
)

// DefaultSafetyMargin is the minimum temporal gap two flights may share a
// node without conflicting. spec.md §4.6 names 30s as the detector
// default while noting the reference source's own default is 60s
// (preserved as an available, non-default option — see DESIGN.md).
const DefaultSafetyMargin = 30 * time.Second

// severityThreshold is the inner margin below which a node conflict is
// "high" rather than "medium" severity (spec.md §4.6; original_source
// hardcodes 15s).
const severityThreshold = 15 * time.Second

// DetectAll scans every unordered pair of schedules for same-node
// temporal overlaps under margin, then deduplicates by (nodeKey, focal
// time) across the whole result (spec.md §4.6).
//
// Complexity: O(|schedules|^2 * maxWaypoints^2), matching the reference
// pairwise scan; acceptable at the tens-of-flights/tens-of-waypoints
// scale spec.md targets.
func DetectAll(schedules []ScheduleInput, margin time.Duration) []Conflict {
	if margin <= 0 {
		margin = DefaultSafetyMargin
	}

	var conflicts []Conflict
	seen := make(map[dedupeKey]bool)

	for i := 0; i < len(schedules); i++ {
		for j := i + 1; j < len(schedules); j++ {
			for _, c := range detectPair(schedules[i], schedules[j], margin) {
				key := dedupeKey{nodeKey: c.NodeKey, focalTime: c.Time.UnixNano()}
				if seen[key] {
					continue
				}
				seen[key] = true
				conflicts = append(conflicts, c)
			}
		}
	}

	return conflicts
}

type dedupeKey struct {
	nodeKey   int
	focalTime int64
}

// detectPair finds all node conflicts between two schedules.
func detectPair(a, b ScheduleInput, margin time.Duration) []Conflict {
	var out []Conflict

	for _, wa := range a.Waypoints {
		for _, wb := range b.Waypoints {
			if wa.NodeKey != wb.NodeKey {
				continue
			}

			delta := wa.Time.Sub(wb.Time)
			if delta < 0 {
				delta = -delta
			}
			if delta >= margin {
				continue
			}

			focal := wa.Time
			if wb.Time.Before(focal) {
				focal = wb.Time
			}

			severity := SeverityMedium
			if delta < severityThreshold {
				severity = SeverityHigh
			}

			out = append(out, Conflict{
				ID:        fmt.Sprintf("node_%s_%s_%d", a.FlightID, b.FlightID, wa.NodeKey),
				Kind:      KindNode,
				FlightIDs: []string{a.FlightID, b.FlightID},
				NodeKey:   wa.NodeKey,
				Time:      focal,
				Severity:  severity,
			})
		}
	}

	return out
}
