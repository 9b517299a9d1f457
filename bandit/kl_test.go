package bandit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKLBernoulli_ClosedFormBoundaries(t *testing.T) {
	// KL(1, q) = -ln(q) exactly, since the (1-p) term vanishes.
	require.InDelta(t, 0.6931471805, klBernoulli(1.0, 0.5), 1e-6)
	require.InDelta(t, 1.3862943611, klBernoulli(1.0, 0.25), 1e-6)
	require.Equal(t, 0.0, klBernoulli(0.3, 0.3))
	require.Equal(t, 0.0, klBernoulli(0, 0))
	require.Equal(t, 0.0, klBernoulli(1, 1))
}

func TestKLBernoulli_ZeroMassIsInfinite(t *testing.T) {
	require.True(t, math.IsInf(klBernoulli(0.5, 0), 1))
	require.True(t, math.IsInf(klBernoulli(0.5, 1), 1))
}

func TestKLBernoulli_Asymmetric(t *testing.T) {
	// KL is not symmetric: KL(p,q) != KL(q,p) in general.
	require.NotEqual(t, klBernoulli(0.2, 0.8), klBernoulli(0.8, 0.2))
}

// up's defining property is the boundary it brackets: the returned q still
// satisfies KL(p, q) <= level, and one klTolerance further out KL(p, ·)
// already exceeds level. klTolerance bounds the bisection interval in q,
// not the KL value, which can sit well below level where KL(p, ·) is
// steep. The same holds for low, mirrored towards 0.
func TestUp_HitsTargetLevel(t *testing.T) {
	cases := []struct{ p, level float64 }{
		{0.2, 1.3926867786},
		{0.4, 0.2458933742},
		{0.1, 0.05},
		{0.6, 2.0},
	}
	for _, c := range cases {
		q := up(c.p, c.level)
		require.GreaterOrEqual(t, q, c.p)
		require.LessOrEqual(t, q, 1.0)
		require.LessOrEqual(t, klBernoulli(c.p, q), c.level, "p=%v level=%v", c.p, c.level)
		require.Greater(t, klBernoulli(c.p, q+klTolerance), c.level, "p=%v level=%v", c.p, c.level)
	}
}

func TestLow_HitsTargetLevel(t *testing.T) {
	cases := []struct{ p, level float64 }{
		{0.5, 2.32114463107},
		{0.9, 1.0},
		{0.3, 0.2},
	}
	for _, c := range cases {
		q := low(c.p, c.level)
		require.GreaterOrEqual(t, q, 0.0)
		require.LessOrEqual(t, q, c.p)
		require.LessOrEqual(t, klBernoulli(c.p, q), c.level, "p=%v level=%v", c.p, c.level)
		require.Greater(t, klBernoulli(c.p, q-klTolerance), c.level, "p=%v level=%v", c.p, c.level)
	}
}

// low(1, level) has the closed form exp(-level), since KL(1,q) = -ln(q).
func TestLow_AtPOne_MatchesClosedForm(t *testing.T) {
	level := 2.9957322735
	q := low(1.0, level)
	require.InDelta(t, math.Exp(-level), q, 2e-4)
}

func TestUp_Monotonic(t *testing.T) {
	// Widening the confidence level can only push the upper bound up.
	require.Less(t, up(0.3, 0.5), up(0.3, 2.0))
}

func TestLow_Monotonic(t *testing.T) {
	require.Greater(t, low(0.7, 0.5), low(0.7, 2.0))
}

func TestBeta_MonotonicInArmCountAndRound(t *testing.T) {
	require.Less(t, beta(5, 1, 0.05), beta(5, 100, 0.05), "more rounds widens the bound")
	require.Less(t, beta(1, 12, 0.05), beta(5, 12, 0.05), "more arms widens the bound")
	require.Less(t, beta(12, 5, 0.1), beta(12, 5, 0.01), "stricter delta widens the bound")
}

func TestBeta_ReferenceValues(t *testing.T) {
	require.InDelta(t, 13.9268677864, beta(12, 1, 0.05), 1e-6)
	require.InDelta(t, 15.8406024551, beta(12, 5, 0.05), 1e-6)
}

// Boundary values for the two one-sided inversions at the bisection's
// fixed tolerance.
func TestUpLow_ReferenceValues(t *testing.T) {
	require.InDelta(t, 0.9037841797, up(0.2, 1.3926867786), 2e-4)
	require.InDelta(t, 0.7343833193, up(0.4, 0.2458933742), 2e-4)
	require.InDelta(t, 0.04998779296875, low(1.0, 2.9957322735), 2e-4)
	require.InDelta(t, 0.002410888671875, low(0.5, 2.32114463107), 2e-4)
}
