package session

import (
	"context"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/perturb"
)

// Service is a SamplingFunction bound to one ExecutionStrategy. It is
// stateless between sessions: every CreateSession call starts a fresh
// collector, and the Service itself may be shared by many concurrent
// constructions (its only state is the immutable SamplingFunction and
// strategy it was built with).
type Service[T any] struct {
	sampling perturb.SamplingFunction[T]
	strategy ExecutionStrategy
}

// NewService builds a Service over sampling using strategy to execute
// every Session it creates.
func NewService[T any](sampling perturb.SamplingFunction[T], strategy ExecutionStrategy) *Service[T] {
	return &Service[T]{sampling: sampling, strategy: strategy}
}

// CreateSession returns a new collector bound to label (ŷ, the label
// being explained). RegisterCandidateEvaluation accumulates pulls on it;
// Run executes them all.
func (s *Service[T]) CreateSession(label int) *Session[T] {
	return &Session[T]{
		service: s,
		label:   label,
		pulls:   make(map[*core.Candidate]int),
	}
}

// ForInstance rebases this Service onto a new base instance, for global
// (per-instance) explanation mode. It requires the wrapped
// perturb.SamplingFunction to implement perturb.Reconfigurable; otherwise
// it returns perturb.ErrNotReconfigurable. The returned Service shares no
// mutable state with s: it wraps a freshly rebased SamplingFunction and
// keeps the same ExecutionStrategy.
func (s *Service[T]) ForInstance(base T) (*Service[T], error) {
	reconf, ok := s.sampling.(perturb.Reconfigurable[T])
	if !ok {
		return nil, perturb.ErrNotReconfigurable
	}
	fresh, err := reconf.ForInstance(base)
	if err != nil {
		return nil, err
	}
	return &Service[T]{sampling: fresh, strategy: s.strategy}, nil
}

// pullEntry pairs a candidate with its accumulated pull count, preserving
// first-registration order for Linear execution and for BalancedParallel's
// deterministic chunk assignment.
type pullEntry struct {
	candidate *core.Candidate
	n         int
}

// Session accumulates RegisterCandidateEvaluation calls for many
// candidates, then executes them all in one Run call according to its
// Service's ExecutionStrategy.
type Session[T any] struct {
	service *Service[T]
	label   int

	order []*core.Candidate
	pulls map[*core.Candidate]int
}

// RegisterCandidateEvaluation adds n to the accumulated pull count for
// candidate (additive if already present). n must be >= 0.
func (sess *Session[T]) RegisterCandidateEvaluation(candidate *core.Candidate, n int) error {
	if n < 0 {
		return ErrNegativePulls
	}
	if n == 0 {
		return nil
	}
	if _, seen := sess.pulls[candidate]; !seen {
		sess.order = append(sess.order, candidate)
	}
	sess.pulls[candidate] += n
	return nil
}

// entries returns the accumulated pulls as an ordered slice.
func (sess *Session[T]) entries() []pullEntry {
	out := make([]pullEntry, 0, len(sess.order))
	for _, c := range sess.order {
		if n := sess.pulls[c]; n > 0 {
			out = append(out, pullEntry{candidate: c, n: n})
		}
	}
	return out
}

// Run executes every accumulated pull according to the Service's
// ExecutionStrategy and blocks until all of them complete. It returns the
// first error from any sub-evaluation (cancellation included).
func (sess *Session[T]) Run(ctx context.Context) error {
	entries := sess.entries()
	if len(entries) == 0 {
		return nil
	}

	switch sess.service.strategy.kind {
	case kindLinear:
		return sess.runLinear(ctx, entries)
	case kindParallelPerCandidate:
		return sess.runParallelPerCandidate(ctx, entries)
	case kindBalancedParallel:
		return sess.runBalancedParallel(ctx, entries)
	default:
		return sess.runLinear(ctx, entries)
	}
}

// evaluate runs one sub-pull of size n on candidate, checking ctx first.
func (sess *Session[T]) evaluate(ctx context.Context, candidate *core.Candidate, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := sess.service.sampling.Evaluate(candidate, n, sess.label)
	return err
}

func (sess *Session[T]) runLinear(ctx context.Context, entries []pullEntry) error {
	for _, e := range entries {
		if err := sess.evaluate(ctx, e.candidate, e.n); err != nil {
			return err
		}
	}
	return nil
}
