package bandit

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/session"
)

// MedianElimination implements the classic (epsilon, delta) median
// elimination algorithm: each phase it pulls every surviving arm
// ceil((2/eps1)^2 * ln(3/delta1)) times, discards the worse half by
// empirical precision, then tightens eps1 <- 3*eps1/4 and delta1 <-
// delta1/2 until one arm remains. Top-k selection runs the single-winner
// elimination k times, removing each winner from the pool before the next
// run.
type MedianElimination[T any] struct {
	maxPhases int
}

// NewMedianElimination builds a MedianElimination identifier. Its only
// tunables (epsilon, delta) arrive per Identify call.
func NewMedianElimination[T any]() *MedianElimination[T] {
	return &MedianElimination[T]{maxPhases: 64}
}

// Identify implements Identifier.
func (m *MedianElimination[T]) Identify(ctx context.Context, svc *session.Service[T], label int, candidates []*core.Candidate, delta, epsilon float64, k int) ([]*core.Candidate, error) {
	if err := validateIdentify(candidates, delta, epsilon, k); err != nil {
		return nil, err
	}
	if epsilon >= 1 {
		return nil, ErrInvalidConfidence
	}

	pool := append([]*core.Candidate(nil), candidates...)
	winners := make([]*core.Candidate, 0, k)

	for len(winners) < k {
		if len(pool) == k-len(winners) {
			winners = append(winners, sortedByPrecision(pool, true)...)
			break
		}

		w, err := m.eliminate(ctx, svc, label, pool, delta, epsilon)
		if err != nil {
			return nil, err
		}
		winners = append(winners, w)

		next := pool[:0]
		for _, c := range pool {
			if c != w {
				next = append(next, c)
			}
		}
		pool = next
	}

	return winners, nil
}

// eliminate runs one single-winner median elimination over pool.
func (m *MedianElimination[T]) eliminate(ctx context.Context, svc *session.Service[T], label int, pool []*core.Candidate, delta, epsilon float64) (*core.Candidate, error) {
	remaining := append([]*core.Candidate(nil), pool...)
	eps := epsilon / 4
	del := delta / 2

	for phase := 0; len(remaining) > 1; phase++ {
		if phase >= m.maxPhases {
			return nil, fmt.Errorf("bandit: median elimination exceeded %d phases without converging", m.maxPhases)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := int(math.Ceil((2 / eps) * (2 / eps) * math.Log(3/del)))
		if n <= 0 {
			n = 1
		}
		if err := pullEach(ctx, svc, label, remaining, n); err != nil {
			return nil, err
		}

		sorted := sortedByPrecision(remaining, true)
		keep := (len(sorted) + 1) / 2
		remaining = sorted[:keep]

		eps = eps * 3 / 4
		del = del / 2
	}

	return remaining[0], nil
}
