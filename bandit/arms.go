package bandit

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/session"
)

// pullEach opens one session.Session, registers n pulls against each of
// candidates, and runs it through svc in a single call so that, under a
// parallel ExecutionStrategy, all of this round's evaluations can overlap.
func pullEach[T any](ctx context.Context, svc *session.Service[T], label int, candidates []*core.Candidate, n int) error {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}
	sess := svc.CreateSession(label)
	for _, c := range candidates {
		if err := sess.RegisterCandidateEvaluation(c, n); err != nil {
			return err
		}
	}
	return sess.Run(ctx)
}

// distributePulls is the round-robin pull distributor shared by the
// batched identifiers: it spreads at most min(b, len(candidates)*r) pulls
// across candidates one at a time, cycling over the arms sorted ascending
// by current sample count so the least-sampled arms are served first, and
// never assigning more than r pulls to any single arm. The whole round is
// registered on one session and executed in a single Run call.
func distributePulls[T any](ctx context.Context, svc *session.Service[T], label int, candidates []*core.Candidate, b, r int) error {
	if b <= 0 || r <= 0 || len(candidates) == 0 {
		return nil
	}

	order := append([]*core.Candidate(nil), candidates...)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Total() < order[j].Total()
	})

	budget := b
	if most := len(order) * r; most < budget {
		budget = most
	}

	counts := make([]int, len(order))
	for i := 0; budget > 0; i = (i + 1) % len(order) {
		if counts[i] >= r {
			continue
		}
		counts[i]++
		budget--
	}

	sess := svc.CreateSession(label)
	for i, c := range order {
		if counts[i] == 0 {
			continue
		}
		if err := sess.RegisterCandidateEvaluation(c, counts[i]); err != nil {
			return err
		}
	}
	return sess.Run(ctx)
}

// sortedByPrecision returns a new slice holding candidates ordered by
// empirical precision, ascending or descending, via gonum/floats.Argsort.
func sortedByPrecision(candidates []*core.Candidate, descending bool) []*core.Candidate {
	means := make([]float64, len(candidates))
	idx := make([]int, len(candidates))
	for i, c := range candidates {
		means[i] = c.Precision()
		idx[i] = i
	}
	floats.Argsort(means, idx)

	out := make([]*core.Candidate, len(candidates))
	for i, j := range idx {
		if descending {
			out[len(candidates)-1-i] = candidates[j]
		} else {
			out[i] = candidates[j]
		}
	}
	return out
}

// unsampled returns the subset of candidates that have never been pulled,
// used by identifiers that require at least one observation per arm before
// their confidence-bound machinery is well defined.
func unsampled(candidates []*core.Candidate) []*core.Candidate {
	var out []*core.Candidate
	for _, c := range candidates {
		if total, _, _ := c.Snapshot(); total == 0 {
			out = append(out, c)
		}
	}
	return out
}
