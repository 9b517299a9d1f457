package anchor

import (
	"github.com/katalvlaran/anchorx/bandit"
	"github.com/katalvlaran/anchorx/coverage"
	"github.com/katalvlaran/anchorx/session"
)

// config holds every tunable knob a Construction[T] is built with. Its
// zero value is never used directly; newConfig seeds the defaults before
// Options are applied.
type config[T any] struct {
	tau     float64
	delta   float64
	epsilon float64

	beamWidth       int
	maxAnchorSize   int // 0 = uncapped (up to numFeatures)
	initialSamples  int
	batchSize       int
	maxSamplesPerID int // per-candidate sample cap during τ-refinement
	allowSuboptimal bool
	immutable       map[int]struct{} // feature indices never adjoined to any candidate

	identifier bandit.Identifier[T]
	strategy   session.ExecutionStrategy
	coverageID coverage.Identifier
}

func newConfig[T any]() *config[T] {
	return &config[T]{
		tau:             1.0,
		delta:           0.1,
		epsilon:         0.1,
		beamWidth:       2,
		maxAnchorSize:   0,
		initialSamples:  1,
		batchSize:       100,
		maxSamplesPerID: 100000,
		allowSuboptimal: false,
		strategy:        session.Linear(),
		coverageID:      coverage.Disabled{},
	}
}
