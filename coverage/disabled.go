package coverage

import "math"

// Disabled returns 2^-|A|, a length penalty used when true coverage is
// inapplicable (e.g. images, where no perturbation-based estimate makes
// sense). Longer rules are penalized monotonically: |A|=0 -> 1.0,
// |A|=1 -> 0.5, |A|=2 -> 0.25, |A|=3 -> 0.125.
type Disabled struct{}

// CalculateCoverage implements Identifier.
func (Disabled) CalculateCoverage(features []int) float64 {
	return math.Pow(2, -float64(len(features)))
}
