package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anchorx/coverage"
	"github.com/katalvlaran/anchorx/internal/fixture"
	"github.com/katalvlaran/anchorx/perturb"
)

func TestDisabled_LengthPenalty(t *testing.T) {
	d := coverage.Disabled{}
	require.Equal(t, 1.0, d.CalculateCoverage(nil))
	require.Equal(t, 0.5, d.CalculateCoverage([]int{0}))
	require.Equal(t, 0.25, d.CalculateCoverage([]int{0, 1}))
	require.Equal(t, 0.125, d.CalculateCoverage([]int{0, 1, 2}))
}

func TestPerturbationBased_SingleFeature(t *testing.T) {
	// 5 binary features, flipped independently with p=0.5: a singleton
	// feature set should match roughly half the drawn rows.
	oracle := fixture.NewBinaryOracle([]float64{0, 0, 0, 0, 0}, 0.5, 42)
	ident, err := coverage.NewPerturbationBased(perturb.NewSamplingFunction[[]float64](oracle, fixture.ConstantClassifier{}), 2000)
	require.NoError(t, err)

	cov := ident.CalculateCoverage([]int{0})
	require.InDelta(t, 0.5, cov, 0.05)
}

func TestPerturbationBased_EmptyFeatureSetIsFullCoverage(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0, 0}, 0.5, 1)
	ident, err := coverage.NewPerturbationBased(perturb.NewSamplingFunction[[]float64](oracle, fixture.ConstantClassifier{}), 500)
	require.NoError(t, err)

	require.Equal(t, 1.0, ident.CalculateCoverage(nil))
}

func TestPerturbationBased_InvalidSampleCount(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0}, 0.5, 1)
	_, err := coverage.NewPerturbationBased(perturb.NewSamplingFunction[[]float64](oracle, fixture.ConstantClassifier{}), -1)
	require.ErrorIs(t, err, coverage.ErrInvalidSampleCount)
}

func TestPerturbationBased_DefaultK(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0}, 0.5, 1)
	ident, err := coverage.NewPerturbationBased(perturb.NewSamplingFunction[[]float64](oracle, fixture.ConstantClassifier{}), 0)
	require.NoError(t, err)
	require.NotNil(t, ident)
}
