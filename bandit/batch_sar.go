package bandit

import (
	"context"
	"fmt"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/session"
)

// BatchSAR is a batched Successive Accepts and Rejects identifier (Jun et
// al., 2016). Each round it spreads a batch of at most b pulls across the
// active arms — never more than r per arm — then resolves the fate of the
// arm with the largest empirical gap: the top arm is accepted into the
// winner set when its gap to the first excluded rank is at least the bottom
// arm's gap to the last included rank, otherwise the bottom arm is
// rejected. Either way the active pool shrinks by one per round, so the
// identifier always terminates in len(candidates)-1 rounds or fewer.
//
// SAR's stopping rule is budget-driven rather than confidence-driven: the
// per-call delta and epsilon are validated but otherwise unused.
type BatchSAR[T any] struct {
	b int // per-round total pull budget
	r int // per-round per-arm pull cap
}

// NewBatchSAR builds a BatchSAR identifier with per-round batch size b and
// per-arm cap r. Requires 0 < r <= b.
func NewBatchSAR[T any](b, r int) (*BatchSAR[T], error) {
	if b <= 0 || r <= 0 || r > b {
		return nil, ErrInvalidBudget
	}
	return &BatchSAR[T]{b: b, r: r}, nil
}

// Identify implements Identifier.
func (s *BatchSAR[T]) Identify(ctx context.Context, svc *session.Service[T], label int, candidates []*core.Candidate, delta, epsilon float64, k int) ([]*core.Candidate, error) {
	if err := validateIdentify(candidates, delta, epsilon, k); err != nil {
		return nil, err
	}

	active := append([]*core.Candidate(nil), candidates...)
	accepted := make([]*core.Candidate, 0, k)

	for len(accepted) < k {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		need := k - len(accepted)
		if len(active) == need {
			accepted = append(accepted, sortedByPrecision(active, true)...)
			break
		}
		if len(active) < need {
			return nil, fmt.Errorf("bandit: batch sar shrank the active pool below k")
		}

		if err := distributePulls(ctx, svc, label, active, s.b, s.r); err != nil {
			return nil, err
		}

		sorted := sortedByPrecision(active, true)
		// gap of the best arm to the first rank it must beat, vs gap of the
		// worst arm to the last rank that must beat it.
		topGap := sorted[0].Precision() - sorted[need].Precision()
		bottomGap := sorted[need-1].Precision() - sorted[len(sorted)-1].Precision()

		var resolved *core.Candidate
		if topGap >= bottomGap {
			resolved = sorted[0]
			accepted = append(accepted, resolved)
		} else {
			resolved = sorted[len(sorted)-1]
		}

		next := active[:0]
		for _, c := range active {
			if c != resolved {
				next = append(next, c)
			}
		}
		active = next
	}

	return accepted, nil
}
