package scheduler

import "sort"

// orderFlights returns a new slice of flights sorted per strategy, with
// ties broken by input order (a stable sort over the original index).
func orderFlights(flights []Flight, strategy Strategy) ([]Flight, error) {
	ordered := make([]Flight, len(flights))
	copy(ordered, flights)

	var less func(i, j int) bool
	switch strategy {
	case StrategyFCFS:
		less = func(i, j int) bool {
			return ordered[i].ScheduledTime.Before(ordered[j].ScheduledTime)
		}
	case StrategyPriority:
		less = func(i, j int) bool {
			pi, pj := priorityRank[ordered[i].Priority], priorityRank[ordered[j].Priority]
			if pi != pj {
				return pi > pj // descending priority
			}
			return ordered[i].ScheduledTime.Before(ordered[j].ScheduledTime)
		}
	case StrategyTimeWindow:
		less = func(i, j int) bool {
			oi, oj := departureRank(ordered[i]), departureRank(ordered[j])
			if oi != oj {
				return oi < oj
			}
			return ordered[i].ScheduledTime.Before(ordered[j].ScheduledTime)
		}
	default:
		return nil, ErrUnknownStrategy
	}

	sort.SliceStable(ordered, less)

	return ordered, nil
}

// departureRank sorts departures before arrivals for the time_window
// strategy.
func departureRank(f Flight) int {
	if f.Operation == OperationDeparture {
		return 0
	}
	return 1
}
