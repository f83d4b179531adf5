package scheduler

import (
	"time"

	"github.com/elidrissi/taxiway/astar"
	"github.com/elidrissi/taxiway/conflict"
	"github.com/elidrissi/taxiway/graphmodel"
)

// Option mutates a Scheduler's resolved config before Schedule runs.
type Option func(s *Scheduler)

// WithConflictMargin overrides the safety margin resolveConflicts' node
// check uses. Defaults to conflict.DefaultSafetyMargin.
func WithConflictMargin(margin time.Duration) Option {
	return func(s *Scheduler) {
		s.conflictMargin = margin
	}
}

// Scheduler orchestrates Schedule calls against one Graph and Planner.
// Per spec.md §5, a Scheduler invocation owns its own mutable
// schedules-under-construction state; the Graph it reads is shared and
// never mutated.
type Scheduler struct {
	graph          *graphmodel.Graph
	planner        *astar.Planner
	conflictMargin time.Duration
}

// New returns a Scheduler over g, using planner for Phase 1 routing.
func New(g *graphmodel.Graph, planner *astar.Planner, opts ...Option) *Scheduler {
	s := &Scheduler{
		graph:          g,
		planner:        planner,
		conflictMargin: conflict.DefaultSafetyMargin,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result is Schedule's return value: the per-flight schedule map plus
// whatever conflicts survived the resolution cap.
type Result struct {
	Schedules          map[string]*FlightSchedule
	RemainingConflicts []conflict.Conflict
}

// Schedule orders flights per strategy, routes each sequentially (Phase 1,
// spec.md §4.7), then runs the bounded iterative conflict-resolution loop
// (Phase 2). Every input flight appears in the output, including flights
// that failed to route.
func (s *Scheduler) Schedule(flights []Flight, strategy Strategy) (*Result, error) {
	ordered, err := orderFlights(flights, strategy)
	if err != nil {
		return nil, err
	}

	schedules := make(map[string]*FlightSchedule, len(ordered))
	for _, flight := range ordered {
		schedules[flight.FlightID] = routeFlight(flight, s.planner, s.graph)
	}

	remaining := resolveConflicts(schedules, s.conflictMargin)

	return &Result{Schedules: schedules, RemainingConflicts: remaining}, nil
}
