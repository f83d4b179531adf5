package astar

import "errors"

// ErrPathNotFound indicates the search exhausted its frontier (or hit the
// safety cap) without reaching the goal node.
var ErrPathNotFound = errors.New("astar: no path to goal")

// ErrStartNotFound and ErrGoalNotFound indicate the caller passed a node
// key absent from the graph.
var (
	ErrStartNotFound = errors.New("astar: start node not found")
	ErrGoalNotFound  = errors.New("astar: goal node not found")
)
