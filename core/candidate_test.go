package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/anchorx/core"
	"github.com/stretchr/testify/require"
)

func TestNewCandidate_EmptyFeatureSet(t *testing.T) {
	_, err := core.NewCandidate(nil, nil)
	require.ErrorIs(t, err, core.ErrEmptyFeatureSet)
}

func TestNewCandidate_RootHasNoParent(t *testing.T) {
	c, err := core.NewRootCandidate(3)
	require.NoError(t, err)
	require.Nil(t, c.Parent())
	require.Equal(t, []int{3}, c.Features())
	require.Equal(t, "3", c.Key())
}

func TestNewCandidate_ValidExtension(t *testing.T) {
	parent, err := core.NewRootCandidate(1)
	require.NoError(t, err)

	child, err := core.NewCandidate([]int{1, 4}, parent)
	require.NoError(t, err)
	require.Same(t, parent, child.Parent())
	require.Equal(t, 2, child.Size())
}

func TestNewCandidate_InvalidExtension(t *testing.T) {
	parent, err := core.NewRootCandidate(1)
	require.NoError(t, err)

	// wrong size (same size as parent)
	_, err = core.NewCandidate([]int{1}, parent)
	require.ErrorIs(t, err, core.ErrInvalidParent)

	// doesn't contain parent's feature
	_, err = core.NewCandidate([]int{2, 3}, parent)
	require.ErrorIs(t, err, core.ErrInvalidParent)

	// duplicate index, right length by accident
	_, err = core.NewCandidate([]int{1, 1}, parent)
	require.ErrorIs(t, err, core.ErrInvalidParent)
}

func TestCandidate_KeyIsOrderInvariant(t *testing.T) {
	a, err := core.NewCandidate([]int{3, 1, 2}, nil)
	require.NoError(t, err)
	b, err := core.NewCandidate([]int{1, 2, 3}, nil)
	require.NoError(t, err)
	require.Equal(t, a.Key(), b.Key())
	require.Equal(t, []int{3, 1, 2}, a.Features(), "construction order preserved")
}

func TestCandidate_RegisterSamples(t *testing.T) {
	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)

	require.NoError(t, c.RegisterSamples(10, 7))
	require.NoError(t, c.RegisterSamples(5, 5))

	total, positive, precision := c.Snapshot()
	require.Equal(t, 15, total)
	require.Equal(t, 12, positive)
	require.InDelta(t, 12.0/15.0, precision, 1e-9)
}

func TestCandidate_RegisterSamples_Invalid(t *testing.T) {
	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)

	require.ErrorIs(t, c.RegisterSamples(-1, 0), core.ErrInvalidSampleCount)
	require.ErrorIs(t, c.RegisterSamples(5, -1), core.ErrInvalidSampleCount)
	require.ErrorIs(t, c.RegisterSamples(5, 6), core.ErrInvalidSampleCount)
}

func TestCandidate_PrecisionZeroTotal(t *testing.T) {
	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, c.Precision())
}

func TestCandidate_Coverage(t *testing.T) {
	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)

	_, set := c.Coverage()
	require.False(t, set)

	require.NoError(t, c.SetCoverage(0.42))
	cov, set := c.Coverage()
	require.True(t, set)
	require.Equal(t, 0.42, cov)

	require.ErrorIs(t, c.SetCoverage(0.1), core.ErrCoverageAlreadySet)
}

func TestCandidate_SetCoverage_OutOfRange(t *testing.T) {
	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)
	require.ErrorIs(t, c.SetCoverage(-0.01), core.ErrCoverageOutOfRange)
	require.ErrorIs(t, c.SetCoverage(1.01), core.ErrCoverageOutOfRange)
}

// TestConcurrentRegisterSamples: many goroutines mutate one shared
// Candidate's counters, and the final totals must equal the sum of every
// individual contribution.
func TestConcurrentRegisterSamples(t *testing.T) {
	c, err := core.NewRootCandidate(0)
	require.NoError(t, err)

	const workers = 200
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, c.RegisterSamples(10, id%11))
		}(i)
	}
	wg.Wait()

	total, _, _ := c.Snapshot()
	require.Equal(t, workers*10, total, fmt.Sprintf("expected %d total samples", workers*10))
}
