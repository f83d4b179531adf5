package topology

import "errors"

// Sentinel errors for topology.Build and its configuration options.
var (
	// ErrInvalidThreshold indicates a non-positive proximity threshold.
	ErrInvalidThreshold = errors.New("topology: proximity threshold must be positive")

	// ErrInvalidK indicates a non-positive proximity K.
	ErrInvalidK = errors.New("topology: proximity K must be positive")

	// ErrInvalidSpeedCap indicates a non-positive default edge speed cap.
	ErrInvalidSpeedCap = errors.New("topology: default edge speed cap must be positive")
)
