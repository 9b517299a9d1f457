package anchor

import (
	"github.com/katalvlaran/anchorx/bandit"
	"github.com/katalvlaran/anchorx/coverage"
	"github.com/katalvlaran/anchorx/session"
)

// Option customizes a Construction[T] by mutating its config before the
// first Explain call. Option constructors validate and panic on
// meaningless inputs — Explain itself never panics.
type Option[T any] func(*config[T])

// WithTau sets the target precision τ ∈ (0,1]. Panics outside that range.
func WithTau[T any](tau float64) Option[T] {
	if tau <= 0 || tau > 1 {
		panic("anchor: WithTau(tau) requires tau in (0,1]")
	}
	return func(c *config[T]) { c.tau = tau }
}

// WithDelta sets the confidence parameter δ ∈ (0,1). Panics outside that
// range.
func WithDelta[T any](delta float64) Option[T] {
	if delta <= 0 || delta >= 1 {
		panic("anchor: WithDelta(delta) requires delta in (0,1)")
	}
	return func(c *config[T]) { c.delta = delta }
}

// WithEpsilon sets the bandit stopping tolerance ε > 0. Panics on ε <= 0.
func WithEpsilon[T any](epsilon float64) Option[T] {
	if epsilon <= 0 {
		panic("anchor: WithEpsilon(epsilon) requires epsilon > 0")
	}
	return func(c *config[T]) { c.epsilon = epsilon }
}

// WithBeamWidth sets B, the number of survivors carried from one depth to
// the next. Panics on B <= 0.
func WithBeamWidth[T any](width int) Option[T] {
	if width <= 0 {
		panic("anchor: WithBeamWidth(width) requires width > 0")
	}
	return func(c *config[T]) { c.beamWidth = width }
}

// WithMaxAnchorSize caps the number of features a returned anchor may use.
// 0 (the default) leaves it uncapped (limited only by the feature count).
// Panics on a negative size.
func WithMaxAnchorSize[T any](size int) Option[T] {
	if size < 0 {
		panic("anchor: WithMaxAnchorSize(size) requires size >= 0")
	}
	return func(c *config[T]) { c.maxAnchorSize = size }
}

// WithInitialSamples sets the number of samples every newly generated
// candidate receives before the bandit ranks it. Panics on n <= 0.
func WithInitialSamples[T any](n int) Option[T] {
	if n <= 0 {
		panic("anchor: WithInitialSamples(n) requires n > 0")
	}
	return func(c *config[T]) { c.initialSamples = n }
}

// WithBatchSize sets the starting batch size for τ-refinement's geometric
// backoff (doubled each round a candidate remains undecided). Panics on
// n <= 0.
func WithBatchSize[T any](n int) Option[T] {
	if n <= 0 {
		panic("anchor: WithBatchSize(n) requires n > 0")
	}
	return func(c *config[T]) { c.batchSize = n }
}

// WithMaxSamplesPerCandidate caps how many total samples τ-refinement will
// spend on one candidate before giving up on it as undecided. Panics on
// n <= 0.
func WithMaxSamplesPerCandidate[T any](n int) Option[T] {
	if n <= 0 {
		panic("anchor: WithMaxSamplesPerCandidate(n) requires n > 0")
	}
	return func(c *config[T]) { c.maxSamplesPerID = n }
}

// WithAllowSuboptimal makes Explain return the highest-precision candidate
// seen, with IsAnchor=false, instead of ErrNoCandidateFound, when no
// candidate ever clears τ.
func WithAllowSuboptimal[T any](allow bool) Option[T] {
	return func(c *config[T]) { c.allowSuboptimal = allow }
}

// WithIdentifier overrides the default bandit.Identifier (KL-LUCB) used to
// rank candidates within a depth. Panics on nil.
func WithIdentifier[T any](id bandit.Identifier[T]) Option[T] {
	if id == nil {
		panic("anchor: WithIdentifier(nil)")
	}
	return func(c *config[T]) { c.identifier = id }
}

// WithExecutionStrategy overrides the session.ExecutionStrategy used to
// run every sampling round.
func WithExecutionStrategy[T any](strategy session.ExecutionStrategy) Option[T] {
	return func(c *config[T]) { c.strategy = strategy }
}

// WithCoverage overrides the coverage.Identifier used to annotate the
// terminal result. Panics on nil.
func WithCoverage[T any](id coverage.Identifier) Option[T] {
	if id == nil {
		panic("anchor: WithCoverage(nil)")
	}
	return func(c *config[T]) { c.coverageID = id }
}

// WithImmutableFeatures marks feature indices the search must never
// adjoin to any candidate at any depth (distinct from a Candidate's own
// per-pull immutable set, which is always its own Features()). Indices
// may repeat; duplicates are harmless. Panics on a negative index.
func WithImmutableFeatures[T any](indices ...int) Option[T] {
	for _, idx := range indices {
		if idx < 0 {
			panic("anchor: WithImmutableFeatures requires non-negative indices")
		}
	}
	return func(c *config[T]) {
		if c.immutable == nil {
			c.immutable = make(map[int]struct{}, len(indices))
		}
		for _, idx := range indices {
			c.immutable[idx] = struct{}{}
		}
	}
}
