package bandit

import (
	"context"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/session"
)

// Identifier is BestAnchorIdentification: given a pool of candidates (the
// bandit's arms, already registered with a sampling Service) and a target
// count k, it pulls further samples through svc until it can name the k
// candidates with the highest true precision at confidence 1-delta up to
// tolerance epsilon, and returns them ordered best-first.
//
// delta and epsilon are per-call so a caller running one identification
// per beam depth can shrink its confidence budget level by level; an
// identifier whose stopping rule is purely budget-driven (BatchSAR) may
// ignore them beyond validation.
//
// Implementations may over-pull, need not guarantee any precision
// threshold, and must terminate. They must treat ctx cancellation as
// fatal and return whatever error session.Session.Run surfaces; they must
// never silently truncate a round's sampling because the budget looked
// tight.
type Identifier[T any] interface {
	Identify(ctx context.Context, svc *session.Service[T], label int, candidates []*core.Candidate, delta, epsilon float64, k int) ([]*core.Candidate, error)
}

// validateIdentify is the shared argument check every Identifier runs
// before touching its arms.
func validateIdentify(candidates []*core.Candidate, delta, epsilon float64, k int) error {
	if len(candidates) == 0 {
		return ErrEmptyCandidateSet
	}
	if k <= 0 || k > len(candidates) {
		return ErrInvalidK
	}
	if delta <= 0 || delta >= 1 {
		return ErrInvalidConfidence
	}
	if epsilon <= 0 {
		return ErrInvalidConfidence
	}
	return nil
}
