package topology

// Option mutates a config before Build runs. Options are resolved in the
// order they are passed; later options win over earlier ones for the same
// field.
//
// This mirrors the teacher's BuilderOption / builderConfig pattern: a
// functional-option config resolved once at the top of the orchestrator,
// rather than a long positional-argument Build signature.
type Option func(cfg *config)

// config holds the resolved, immutable-after-construction build parameters.
// It is never exported; callers only ever see Option values.
type config struct {
	proximityThreshold float64
	proximityK         int
	defaultEdgeSpeedCap float64
}

// newConfig returns a config seeded with spec defaults, then applies opts in
// order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		proximityThreshold:  defaultProximityThreshold,
		proximityK:          defaultProximityK,
		defaultEdgeSpeedCap: defaultEdgeSpeedCap,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Spec default values for the proximity stitch step and edge speed cap
// (spec.md §6: "Configuration options for build").
const (
	defaultProximityThreshold = 500.0
	defaultProximityK         = 5
	defaultEdgeSpeedCap       = 15.0
)

// WithProximityThreshold sets the maximum Euclidean distance (meters) a
// semantic point may be stitched across. Values <= 0 are rejected by Build
// via ErrInvalidThreshold rather than here, so option composition never
// panics.
func WithProximityThreshold(meters float64) Option {
	return func(cfg *config) {
		cfg.proximityThreshold = meters
	}
}

// WithProximityK sets the number of nearest road endpoints stitched to each
// semantic point.
func WithProximityK(k int) Option {
	return func(cfg *config) {
		cfg.proximityK = k
	}
}

// WithDefaultEdgeSpeedCap sets the speed cap (m/s) applied to synthesized
// road and proximity-stitch edges.
func WithDefaultEdgeSpeedCap(speed float64) Option {
	return func(cfg *config) {
		cfg.defaultEdgeSpeedCap = speed
	}
}
