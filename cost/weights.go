package cost

// Weights parameterizes the scalar cost function: cost(d, t) = w_d*d +
// w_t*t + w_f*(0.1*d + 0.05*t). The coefficients inside the fuel term
// (0.1, 0.05) are NOT part of Weights — spec.md §4.3 calls them an
// uncalibrated linear proxy that implementers must preserve exactly to
// match reference outputs, so they are hardcoded constants, not knobs.
type Weights struct {
	Distance float64 // w_d
	Time     float64 // w_t
	Fuel     float64 // w_f
	NominalSpeed float64 // s_a, in m/s
}

// DefaultWeights returns the spec defaults: w_d=1.0, w_t=1.0, w_f=0.5,
// s_a=15 m/s.
func DefaultWeights() Weights {
	return Weights{
		Distance:     1.0,
		Time:         1.0,
		Fuel:         0.5,
		NominalSpeed: 15.0,
	}
}

const (
	fuelDistanceCoefficient = 0.1
	fuelTimeCoefficient     = 0.05
)

// Compute returns the scalar cost of traversing an edge (or path segment)
// of the given distance (meters) and time (seconds) under w.
func (w Weights) Compute(distance, time float64) float64 {
	fuel := fuelDistanceCoefficient*distance + fuelTimeCoefficient*time
	return w.Distance*distance + w.Time*time + w.Fuel*fuel
}

// FuelProxy returns the fuel-proxy term alone, for callers (Stats) that
// report it separately from the combined cost.
func (w Weights) FuelProxy(distance, time float64) float64 {
	return fuelDistanceCoefficient*distance + fuelTimeCoefficient*time
}

// TraversalTime returns the time to cross an edge of length L with speed
// cap speedCap, at the lesser of speedCap and w.NominalSpeed.
func (w Weights) TraversalTime(length, speedCap float64) float64 {
	speed := speedCap
	if w.NominalSpeed < speed {
		speed = w.NominalSpeed
	}
	if speed <= 0 {
		return 0
	}
	return length / speed
}
