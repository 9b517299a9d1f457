package bandit

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/session"
)

// BatchRacing is a batched racing identifier (Jun et al., 2016): every
// round it spreads at most b pulls over the active arms (at most r each,
// least-sampled arms first), then drops every arm whose upper confidence
// bound falls below the lower confidence bound of the current k-th best
// arm — eliminating however many arms the evidence supports in one pass,
// rather than BatchSAR's fixed one-per-round quota. Arms that are tied
// with the k-th best never separate by domination, so the race also stops
// once no excluded arm's upper bound exceeds the k-th best's lower bound
// by epsilon or more.
type BatchRacing[T any] struct {
	b         int // per-round total pull budget
	r         int // per-round per-arm pull cap
	maxRounds int
}

// NewBatchRacing builds a BatchRacing identifier with per-round batch
// size b and per-arm cap r. Requires 0 < r <= b.
func NewBatchRacing[T any](b, r int) (*BatchRacing[T], error) {
	if b <= 0 || r <= 0 || r > b {
		return nil, ErrInvalidBudget
	}
	return &BatchRacing[T]{b: b, r: r, maxRounds: 100000}, nil
}

// Identify implements Identifier.
func (b *BatchRacing[T]) Identify(ctx context.Context, svc *session.Service[T], label int, candidates []*core.Candidate, delta, epsilon float64, k int) ([]*core.Candidate, error) {
	if err := validateIdentify(candidates, delta, epsilon, k); err != nil {
		return nil, err
	}
	if k == len(candidates) {
		return sortedByPrecision(candidates, true), nil
	}

	n := len(candidates)
	active := append([]*core.Candidate(nil), candidates...)

	for round := 1; round <= b.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(active) <= k {
			return sortedByPrecision(active, true), nil
		}

		if err := distributePulls(ctx, svc, label, active, b.b, b.r); err != nil {
			return nil, err
		}

		sorted := sortedByPrecision(active, true)
		rate := beta(n, round, delta)
		level := func(c *core.Candidate) float64 {
			total, _, _ := c.Snapshot()
			if total == 0 {
				return math.Inf(1)
			}
			return rate / float64(total)
		}

		kthLCB := low(sorted[k-1].Precision(), level(sorted[k-1]))

		maxRestUCB := 0.0
		survivors := make([]*core.Candidate, 0, len(sorted))
		survivors = append(survivors, sorted[:k]...)
		for _, c := range sorted[k:] {
			ucb := up(c.Precision(), level(c))
			if ucb > maxRestUCB {
				maxRestUCB = ucb
			}
			if ucb >= kthLCB {
				survivors = append(survivors, c)
			}
		}

		// Ties (or near-ties) never separate by domination alone; once no
		// excluded arm can exceed the k-th best by more than epsilon, the
		// current top-k is good enough.
		if maxRestUCB-kthLCB < epsilon {
			return sorted[:k], nil
		}
		active = survivors
	}

	return nil, fmt.Errorf("bandit: batch racing exceeded %d rounds without converging", b.maxRounds)
}
