package perturb

import (
	"github.com/katalvlaran/anchorx/core"
)

// SamplingFunction evaluates a Candidate: draw N perturbations holding the
// Candidate's features fixed, classify them, register the outcome on the
// Candidate, and return the empirical precision. Every bandit
// implementation calls this indirectly, through a session.Service.
type SamplingFunction[T any] interface {
	// Evaluate draws n perturbations immutable on candidate's features,
	// classifies them, calls candidate.RegisterSamples(n, matches), and
	// returns matches/n (0 if n == 0).
	Evaluate(candidate *core.Candidate, n int, label int) (float64, error)
}

// Reconfigurable is a SamplingFunction that can be rebased onto a new
// instance without sharing mutable state with the original — required by
// explain.BatchExplainer's global (per-instance) mode.
type Reconfigurable[T any] interface {
	SamplingFunction[T]
	ForInstance(base T) (SamplingFunction[T], error)
}

// CoverageSource supplies the coverage package with K pre-drawn
// perturbation rows over the empty immutable set, built from the same
// perturbation oracle a SamplingFunction samples from. coverage.PerturbationBased
// is the only consumer.
type CoverageSource interface {
	// DrawCoverageRows returns k perturbation rows' Changed matrices
	// (using an empty immutable set), for later coverage estimation.
	DrawCoverageRows(k int) ([][]bool, error)
}

// DefaultSamplingFunction is the reference SamplingFunction: it wraps one
// PerturbationFunction and one ClassificationFunction, both supplied by
// the caller, and adds no behavior beyond the contract in Evaluate's
// doc comment.
type DefaultSamplingFunction[T any] struct {
	perturbation PerturbationFunction[T]
	classifier   ClassificationFunction[T]
}

// NewSamplingFunction builds a DefaultSamplingFunction over the given
// perturbation oracle and classifier.
func NewSamplingFunction[T any](perturbation PerturbationFunction[T], classifier ClassificationFunction[T]) *DefaultSamplingFunction[T] {
	return &DefaultSamplingFunction[T]{perturbation: perturbation, classifier: classifier}
}

// Evaluate implements SamplingFunction.
func (f *DefaultSamplingFunction[T]) Evaluate(candidate *core.Candidate, n int, label int) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeSampleCount
	}
	if n == 0 {
		if err := candidate.RegisterSamples(0, 0); err != nil {
			return 0, err
		}
		return 0, nil
	}

	batch, err := f.perturbation.Perturb(candidate.Features(), n)
	if err != nil {
		return 0, err
	}
	if err := batch.Validate(); err != nil {
		return 0, err
	}

	labels := classifyBatch[T](f.classifier, batch.Surrogates)
	matches := 0
	for _, l := range labels {
		if l == label {
			matches++
		}
	}

	if err := candidate.RegisterSamples(n, matches); err != nil {
		return 0, err
	}
	return float64(matches) / float64(n), nil
}

// ForInstance implements Reconfigurable. It requires the wrapped
// PerturbationFunction to implement ReconfigurablePerturbationFunction;
// otherwise it returns ErrNotReconfigurable. The returned
// DefaultSamplingFunction shares the classifier (pure, thread-safe by
// contract) but gets a brand-new perturbation oracle rebased on base, so
// no mutable state is shared with f.
func (f *DefaultSamplingFunction[T]) ForInstance(base T) (SamplingFunction[T], error) {
	reconf, ok := f.perturbation.(ReconfigurablePerturbationFunction[T])
	if !ok {
		return nil, ErrNotReconfigurable
	}
	fresh, err := reconf.CreateForInstance(base)
	if err != nil {
		return nil, err
	}
	return &DefaultSamplingFunction[T]{perturbation: fresh, classifier: f.classifier}, nil
}

// DrawCoverageRows implements CoverageSource by asking the wrapped
// PerturbationFunction for k perturbations over the empty immutable set
// and returning their Changed matrices; the surrogates themselves are not
// needed for coverage estimation and are discarded.
func (f *DefaultSamplingFunction[T]) DrawCoverageRows(k int) ([][]bool, error) {
	if k < 0 {
		return nil, ErrNegativeSampleCount
	}
	batch, err := f.perturbation.Perturb(nil, k)
	if err != nil {
		return nil, err
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}
	return batch.Changed, nil
}
