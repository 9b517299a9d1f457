package bandit

import (
	"context"
	"fmt"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/session"
)

// KLLUCB is the default BestAnchorIdentification strategy. Each round it
// samples exactly two arms — the weakest of the current empirical top-k
// and the strongest of the rest — and stops once their KL confidence
// bounds no longer overlap by more than the caller's epsilon.
type KLLUCB[T any] struct {
	batch     int
	maxRounds int
}

// NewKLLUCB builds a KLLUCB identifier pulling batch samples for each of
// the two tracked arms per round.
func NewKLLUCB[T any](batch int) (*KLLUCB[T], error) {
	if batch <= 0 {
		return nil, ErrInvalidBudget
	}
	return &KLLUCB[T]{batch: batch, maxRounds: 10000}, nil
}

type armStat struct {
	candidate *core.Candidate
	mean      float64
	total     int
}

func snapshotArms(candidates []*core.Candidate) []armStat {
	out := make([]armStat, len(candidates))
	for i, c := range candidates {
		total, _, mean := c.Snapshot()
		out[i] = armStat{candidate: c, mean: mean, total: total}
	}
	return out
}

// Identify implements Identifier.
func (b *KLLUCB[T]) Identify(ctx context.Context, svc *session.Service[T], label int, candidates []*core.Candidate, delta, epsilon float64, k int) ([]*core.Candidate, error) {
	if err := validateIdentify(candidates, delta, epsilon, k); err != nil {
		return nil, err
	}
	if k == len(candidates) {
		return sortedByPrecision(candidates, true), nil
	}

	if need := unsampled(candidates); len(need) > 0 {
		if err := pullEach(ctx, svc, label, need, 1); err != nil {
			return nil, err
		}
	}

	n := len(candidates)
	for round := 1; round <= b.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stats := snapshotArms(candidates)
		// sort descending by empirical mean: [0,k) is the current top-k.
		sortedStats := append([]armStat(nil), stats...)
		for i := 1; i < len(sortedStats); i++ {
			for j := i; j > 0 && sortedStats[j].mean > sortedStats[j-1].mean; j-- {
				sortedStats[j], sortedStats[j-1] = sortedStats[j-1], sortedStats[j]
			}
		}

		rate := beta(n, round, delta)
		level := func(s armStat) float64 { return rate / float64(s.total) }

		// l: the top-k arm with the lowest lower confidence bound.
		lIdx := 0
		lLCB := low(sortedStats[0].mean, level(sortedStats[0]))
		for i := 1; i < k; i++ {
			lcb := low(sortedStats[i].mean, level(sortedStats[i]))
			if lcb < lLCB {
				lLCB, lIdx = lcb, i
			}
		}

		// h: the rest-arm with the highest upper confidence bound.
		hIdx := k
		hUCB := up(sortedStats[k].mean, level(sortedStats[k]))
		for i := k + 1; i < n; i++ {
			ucb := up(sortedStats[i].mean, level(sortedStats[i]))
			if ucb > hUCB {
				hUCB, hIdx = ucb, i
			}
		}

		if hUCB-lLCB < epsilon {
			winners := make([]*core.Candidate, k)
			for i := 0; i < k; i++ {
				winners[i] = sortedStats[i].candidate
			}
			return winners, nil
		}

		if err := pullEach(ctx, svc, label, []*core.Candidate{sortedStats[lIdx].candidate, sortedStats[hIdx].candidate}, b.batch); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("bandit: kl-lucb exceeded %d rounds without converging", b.maxRounds)
}
