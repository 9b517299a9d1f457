package session

import (
	"testing"

	"github.com/katalvlaran/anchorx/core"
	"github.com/stretchr/testify/require"
)

func TestPlanBalancedChunks_NoPullLost(t *testing.T) {
	a, err := core.NewRootCandidate(0)
	require.NoError(t, err)
	b, err := core.NewRootCandidate(1)
	require.NoError(t, err)
	c, err := core.NewRootCandidate(2)
	require.NoError(t, err)

	entries := []pullEntry{{a, 7}, {b, 10}, {c, 3}}
	chunks := planBalancedChunks(entries, 4)

	got := map[*core.Candidate]int{}
	for _, ch := range chunks {
		for _, part := range ch.parts {
			got[part.candidate] += part.n
		}
	}
	require.Equal(t, 7, got[a])
	require.Equal(t, 10, got[b])
	require.Equal(t, 3, got[c])
}

func TestPlanBalancedChunks_WorkersExceedTotal(t *testing.T) {
	a, err := core.NewRootCandidate(0)
	require.NoError(t, err)
	entries := []pullEntry{{a, 2}}

	chunks := planBalancedChunks(entries, 8)
	total := 0
	for _, ch := range chunks {
		for _, p := range ch.parts {
			total += p.n
		}
	}
	require.Equal(t, 2, total)
}

func TestPlanBalancedChunks_EmptyEntries(t *testing.T) {
	require.Nil(t, planBalancedChunks(nil, 4))
}
