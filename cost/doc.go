// Package cost implements the single scalar edge-cost model shared by
// astar, kalt, and scheduler: a weighted sum of distance, time, and a fuel
// proxy term, parameterized by a plain Weights struct whose defaults come
// from DefaultWeights.
package cost
