package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/internal/fixture"
	"github.com/katalvlaran/anchorx/perturb"
	"github.com/katalvlaran/anchorx/session"
)

func newCandidates(t *testing.T, n int) []*core.Candidate {
	t.Helper()
	out := make([]*core.Candidate, n)
	for i := 0; i < n; i++ {
		c, err := core.NewRootCandidate(i)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func TestSession_Linear(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0, 0, 0}, 0.5, 1)
	clf := fixture.ConstantClassifier{Label: 1}
	sf := perturb.NewSamplingFunction[[]float64](oracle, clf)

	svc := session.NewService[[]float64](sf, session.Linear())
	sess := svc.CreateSession(1)

	cands := newCandidates(t, 3)
	for _, c := range cands {
		require.NoError(t, sess.RegisterCandidateEvaluation(c, 10))
	}
	require.NoError(t, sess.Run(context.Background()))

	for _, c := range cands {
		total, positive, _ := c.Snapshot()
		require.Equal(t, 10, total)
		require.Equal(t, 10, positive)
	}
}

func TestSession_RegisterCandidateEvaluation_Additive(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0}, 0.5, 1)
	clf := fixture.ConstantClassifier{Label: 0}
	sf := perturb.NewSamplingFunction[[]float64](oracle, clf)
	svc := session.NewService[[]float64](sf, session.Linear())
	sess := svc.CreateSession(0)

	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)
	require.NoError(t, sess.RegisterCandidateEvaluation(c, 4))
	require.NoError(t, sess.RegisterCandidateEvaluation(c, 6))
	require.NoError(t, sess.Run(context.Background()))

	total, _, _ := c.Snapshot()
	require.Equal(t, 10, total)
}

func TestSession_NegativePulls(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0}, 0.5, 1)
	clf := fixture.ConstantClassifier{Label: 0}
	sf := perturb.NewSamplingFunction[[]float64](oracle, clf)
	svc := session.NewService[[]float64](sf, session.Linear())
	sess := svc.CreateSession(0)

	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)
	require.ErrorIs(t, sess.RegisterCandidateEvaluation(c, -1), session.ErrNegativePulls)
}

func TestSession_ParallelPerCandidate(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0, 0}, 0.5, 2)
	clf := fixture.ConstantClassifier{Label: 1}
	sf := perturb.NewSamplingFunction[[]float64](oracle, clf)

	strategy, err := session.ParallelPerCandidate(4)
	require.NoError(t, err)
	svc := session.NewService[[]float64](sf, strategy)
	sess := svc.CreateSession(1)

	cands := newCandidates(t, 10)
	for _, c := range cands {
		require.NoError(t, sess.RegisterCandidateEvaluation(c, 5))
	}
	require.NoError(t, sess.Run(context.Background()))

	for _, c := range cands {
		total, _, _ := c.Snapshot()
		require.Equal(t, 5, total)
	}
}

func TestSession_BalancedParallel(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0, 0, 0}, 0.5, 3)
	clf := fixture.ConstantClassifier{Label: 1}
	sf := perturb.NewSamplingFunction[[]float64](oracle, clf)

	strategy, err := session.BalancedParallel(3)
	require.NoError(t, err)
	svc := session.NewService[[]float64](sf, strategy)
	sess := svc.CreateSession(1)

	cands := newCandidates(t, 4)
	wants := []int{7, 11, 2, 5}
	for i, c := range cands {
		require.NoError(t, sess.RegisterCandidateEvaluation(c, wants[i]))
	}
	require.NoError(t, sess.Run(context.Background()))

	for i, c := range cands {
		total, _, _ := c.Snapshot()
		require.Equal(t, wants[i], total, "every requested pull must be delivered regardless of chunking")
	}
}

func TestSession_InvalidWorkerCount(t *testing.T) {
	_, err := session.ParallelPerCandidate(0)
	require.ErrorIs(t, err, session.ErrInvalidWorkerCount)

	_, err = session.BalancedParallel(-3)
	require.ErrorIs(t, err, session.ErrInvalidWorkerCount)
}

func TestSession_EmptyRunIsNoop(t *testing.T) {
	oracle := fixture.NewBinaryOracle([]float64{0}, 0.5, 1)
	clf := fixture.ConstantClassifier{Label: 0}
	sf := perturb.NewSamplingFunction[[]float64](oracle, clf)
	svc := session.NewService[[]float64](sf, session.Linear())
	sess := svc.CreateSession(0)

	require.NoError(t, sess.Run(context.Background()))
}
