package fixture

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/anchorx/internal/randutil"
	"github.com/katalvlaran/anchorx/perturb"
)

// BinaryOracle is a PerturbationFunction over dense binary feature
// vectors: each non-immutable feature is flipped independently with
// probability FlipProb.
//
// BinaryOracle implements perturb.ReconfigurablePerturbationFunction so it
// can back explain.BatchExplainer's global mode: CreateForInstance returns
// a fresh BinaryOracle on its own "instance" child stream of the root
// seed (randutil.SeedFor), so concurrent per-instance workers never
// share mutable state.
type BinaryOracle struct {
	mu       sync.Mutex
	base     []float64
	flipProb float64
	seed     int64
	rng      *rand.Rand
	stream   int // next child stream index, for CreateForInstance
}

// NewBinaryOracle builds a BinaryOracle over base with the given
// per-feature flip probability, deterministic under seed.
func NewBinaryOracle(base []float64, flipProb float64, seed int64) *BinaryOracle {
	cp := make([]float64, len(base))
	copy(cp, base)
	return &BinaryOracle{
		base:     cp,
		flipProb: flipProb,
		seed:     seed,
		rng:      randutil.FromSeed(seed),
	}
}

// Perturb implements perturb.PerturbationFunction.
func (o *BinaryOracle) Perturb(immutableFeatureIndices []int, n int) (perturb.Batch[[]float64], error) {
	if n < 0 {
		return perturb.Batch[[]float64]{}, perturb.ErrNegativeSampleCount
	}

	immutable := make(map[int]struct{}, len(immutableFeatureIndices))
	for _, idx := range immutableFeatureIndices {
		immutable[idx] = struct{}{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	f := len(o.base)
	surrogates := make([][]float64, n)
	changed := make([][]bool, n)
	for i := 0; i < n; i++ {
		row := make([]float64, f)
		copy(row, o.base)
		rowChanged := make([]bool, f)
		for j := 0; j < f; j++ {
			if _, locked := immutable[j]; locked {
				continue
			}
			if o.rng.Float64() < o.flipProb {
				if row[j] == 0 {
					row[j] = 1
				} else {
					row[j] = 0
				}
				rowChanged[j] = true
			}
		}
		surrogates[i] = row
		changed[i] = rowChanged
	}

	return perturb.Batch[[]float64]{Surrogates: surrogates, Changed: changed}, nil
}

// CreateForInstance implements perturb.ReconfigurablePerturbationFunction.
func (o *BinaryOracle) CreateForInstance(base []float64) (perturb.PerturbationFunction[[]float64], error) {
	o.mu.Lock()
	stream := o.stream
	o.stream++
	o.mu.Unlock()

	childSeed := randutil.SeedFor(o.seed, "instance", stream)
	return &BinaryOracle{
		base:     append([]float64(nil), base...),
		flipProb: o.flipProb,
		seed:     childSeed,
		rng:      randutil.FromSeed(childSeed),
	}, nil
}
