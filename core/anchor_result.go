package core

import "time"

// AnchorResult extends a Candidate with the explained instance, the
// explained label, whether the τ-constraint was actually satisfied, and
// elapsed wall-clock totals. It is the terminal value a Construction hands
// back to a caller; every other Candidate considered during the search is
// discarded.
type AnchorResult struct {
	*Candidate

	// Instance is the explained instance (opaque to core; see package
	// instance for the typed contract).
	Instance interface{}

	// Label is ŷ = f(Instance), the label being explained.
	Label int

	// IsAnchor is true iff the τ-constraint was satisfied (p̂ ≥ τ and
	// KL-low(p̂,·) ≥ τ−ε) when this result was produced. When false, this is the
	// highest-precision fallback returned under allowSuboptimal.
	IsAnchor bool

	// Elapsed is the overall wall-clock duration of the construction that
	// produced this result.
	Elapsed time.Duration

	// SamplingElapsed is the portion of Elapsed spent inside sampling
	// sessions (perturbation + classification), as opposed to beam
	// bookkeeping, coverage computation, and bandit arithmetic.
	SamplingElapsed time.Duration
}

// NewAnchorResult wraps candidate as a terminal AnchorResult.
func NewAnchorResult(candidate *Candidate, instance interface{}, label int, isAnchor bool, elapsed, samplingElapsed time.Duration) *AnchorResult {
	return &AnchorResult{
		Candidate:       candidate,
		Instance:        instance,
		Label:           label,
		IsAnchor:        isAnchor,
		Elapsed:         elapsed,
		SamplingElapsed: samplingElapsed,
	}
}
