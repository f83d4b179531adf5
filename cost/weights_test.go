package cost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elidrissi/taxiway/cost"
)

func TestDefaultWeights_Compute(t *testing.T) {
	w := cost.DefaultWeights()

	got := w.Compute(100, 10)
	// fuel = 0.1*100 + 0.05*10 = 10.5; cost = 1*100 + 1*10 + 0.5*10.5 = 115.25
	require.InDelta(t, 115.25, got, 1e-9)
}

func TestWeights_TraversalTime_UsesLesserSpeed(t *testing.T) {
	w := cost.DefaultWeights() // NominalSpeed = 15

	require.InDelta(t, 10.0, w.TraversalTime(100, 10), 1e-9, "edge speed cap 10 < nominal 15")
	require.InDelta(t, 100.0/15.0, w.TraversalTime(100, 30), 1e-9, "nominal speed 15 caps it")
}

func TestWeights_TraversalTime_ZeroSpeed(t *testing.T) {
	w := cost.Weights{NominalSpeed: 0}
	require.Equal(t, 0.0, w.TraversalTime(100, 0))
}
