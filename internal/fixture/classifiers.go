// Package fixture provides small, deterministic ClassificationFunction and
// PerturbationFunction test doubles shared by every package's test suite
// (perturb/coverage/bandit/session/anchor/explain): a constant classifier, a
// single-discriminative-feature classifier, and a label-independent
// coin-flip classifier, all operating over dense binary feature vectors.
package fixture

import (
	"sync"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/anchorx/internal/randutil"
)

// ConstantClassifier always returns Label, regardless of input.
type ConstantClassifier struct {
	Label int
}

// Predict implements perturb.ClassificationFunction.
func (c ConstantClassifier) Predict(_ []float64) int { return c.Label }

// FeatureClassifier returns the binary value of one feature, thresholded
// at 0.5.
type FeatureClassifier struct {
	Feature int
}

// Predict implements perturb.ClassificationFunction.
func (c FeatureClassifier) Predict(x []float64) int {
	if x[c.Feature] >= 0.5 {
		return 1
	}
	return 0
}

// CoinFlipClassifier returns an independent fair-coin label, ignoring x —
// backed by a
// mutex-protected distuv.Bernoulli since ClassificationFunction must be
// safe to call from every sampling session's worker pool concurrently.
type CoinFlipClassifier struct {
	mu   sync.Mutex
	coin distuv.Bernoulli
}

// NewCoinFlipClassifier builds a CoinFlipClassifier with P(label=1)=p,
// deterministic under seed. The seed is run through randutil.SeedFor on
// its own "coin" stream so a classifier and an oracle sharing one numeric
// seed in a test never draw correlated values.
func NewCoinFlipClassifier(p float64, seed int64) *CoinFlipClassifier {
	return &CoinFlipClassifier{
		coin: distuv.Bernoulli{P: p, Src: exprand.NewSource(uint64(randutil.SeedFor(seed, "coin", 0)))},
	}
}

// Predict implements perturb.ClassificationFunction.
func (c *CoinFlipClassifier) Predict(_ []float64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.coin.Rand())
}
