package bandit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anchorx/bandit"
)

func TestPrecisionLowerBound_ZeroSamples(t *testing.T) {
	require.Equal(t, 0.0, bandit.PrecisionLowerBound(0, 0.5, 10, 0.05))
}

func TestPrecisionUpperBound_ZeroSamples(t *testing.T) {
	require.Equal(t, 1.0, bandit.PrecisionUpperBound(0, 0.5, 10, 0.05))
}

func TestPrecisionBounds_SqueezeAroundEstimateAsSamplesGrow(t *testing.T) {
	lowBound10 := bandit.PrecisionLowerBound(10, 0.9, 5, 0.05)
	lowBound1000 := bandit.PrecisionLowerBound(1000, 0.9, 5, 0.05)
	require.Greater(t, lowBound1000, lowBound10, "more samples tighten the lower bound upward")

	upBound10 := bandit.PrecisionUpperBound(10, 0.9, 5, 0.05)
	upBound1000 := bandit.PrecisionUpperBound(1000, 0.9, 5, 0.05)
	require.Less(t, upBound1000, upBound10, "more samples tighten the upper bound downward")

	require.LessOrEqual(t, lowBound1000, 0.9)
	require.GreaterOrEqual(t, upBound1000, 0.9)
}
