package core

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Candidate is an immutable feature-set identity plus synchronized sample
// counters — the "arm" pulled by the bandit packages.
//
// Determinism:
//   - Features preserves construction order (the order features were
//     adjoined during beam search); Key is the sorted-set canonical form
//     used for equality, deduplication, and map lookups.
//
// Concurrency:
//   - total, positive, coverage and coverageSet are guarded by mu. Reads
//     go through Precision/Total/Positive/Coverage, which take the lock;
//     there is no lock-free fast path because contention here is never
//     the bottleneck (classification, not counter update, dominates).
type Candidate struct {
	mu sync.Mutex

	features []int  // construction order, immutable after NewCandidate
	key      string // canonical sorted-set form, immutable after NewCandidate
	parent   *Candidate

	total    int
	positive int

	coverage    float64
	coverageSet bool
}

// NewRootCandidate constructs a singleton Candidate (one feature, no
// parent). It is equivalent to NewCandidate([]int{feature}, nil) but reads
// better at beam-search depth 1 call sites.
func NewRootCandidate(feature int) (*Candidate, error) {
	return NewCandidate([]int{feature}, nil)
}

// NewCandidate constructs a Candidate over the given features (construction
// order preserved), optionally extending parent by exactly one new index.
//
// Validation:
//   - features must be non-empty (ErrEmptyFeatureSet).
//   - if parent is non-nil, len(features) must equal len(parent.features)+1
//     and parent's feature set must be a subset of features
//     (ErrInvalidParent otherwise).
//
// Complexity: O(F log F) for canonicalization, where F = len(features).
func NewCandidate(features []int, parent *Candidate) (*Candidate, error) {
	if len(features) == 0 {
		return nil, ErrEmptyFeatureSet
	}

	own := make([]int, len(features))
	copy(own, features)

	if parent != nil {
		if len(own) != len(parent.features)+1 {
			return nil, ErrInvalidParent
		}
		parentSet := make(map[int]struct{}, len(parent.features))
		for _, f := range parent.features {
			parentSet[f] = struct{}{}
		}
		seen := make(map[int]struct{}, len(own))
		for _, f := range own {
			seen[f] = struct{}{}
			delete(parentSet, f)
		}
		if len(parentSet) != 0 || len(seen) != len(own) {
			// parentSet non-empty => some parent feature missing from own;
			// seen shorter than own => own has duplicate indices.
			return nil, ErrInvalidParent
		}
	}

	return &Candidate{
		features: own,
		key:      canonicalKey(own),
		parent:   parent,
	}, nil
}

// canonicalKey builds the sorted-set string form used for equality and map
// lookups: ascending indices joined by commas.
func canonicalKey(features []int) string {
	sorted := make([]int, len(features))
	copy(sorted, features)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, f := range sorted {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}

// Features returns a copy of the feature indices in construction order.
func (c *Candidate) Features() []int {
	out := make([]int, len(c.features))
	copy(out, c.features)
	return out
}

// Key returns the canonical sorted-set form: the equality/hash basis for
// this Candidate. Two Candidates with the same feature set (in any
// construction order) share the same Key.
func (c *Candidate) Key() string {
	return c.key
}

// Size returns |features|, the depth of this Candidate in the beam lattice.
func (c *Candidate) Size() int {
	return len(c.features)
}

// Parent returns the Candidate this one was extended from, or nil for a
// singleton (depth-1) Candidate.
func (c *Candidate) Parent() *Candidate {
	return c.parent
}

// HasFeature reports whether idx is one of this Candidate's features.
func (c *Candidate) HasFeature(idx int) bool {
	for _, f := range c.features {
		if f == idx {
			return true
		}
	}
	return false
}

// RegisterSamples atomically adds n pulls and matches positives to this
// Candidate's counters. It is the only way a SamplingFunction reports
// results; many goroutines may call it concurrently on the same or
// different Candidates.
//
// Validation: n must be >= 0, matches must be in [0, n]
// (ErrInvalidSampleCount otherwise).
func (c *Candidate) RegisterSamples(n, matches int) error {
	if n < 0 || matches < 0 || matches > n {
		return ErrInvalidSampleCount
	}

	c.mu.Lock()
	c.total += n
	c.positive += matches
	c.mu.Unlock()

	return nil
}

// Total returns the number of samples drawn so far.
func (c *Candidate) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Positive returns the number of samples so far that matched the explained
// label.
func (c *Candidate) Positive() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positive
}

// Precision returns positive/total, or 0 if no samples have been drawn yet.
func (c *Candidate) Precision() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.total == 0 {
		return 0
	}
	return float64(c.positive) / float64(c.total)
}

// Snapshot returns (total, positive, precision) under a single lock
// acquisition, for callers that need a consistent triple (e.g. the bandit's
// confidence-bound computations).
func (c *Candidate) Snapshot() (total, positive int, precision float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	total, positive = c.total, c.positive
	if total == 0 {
		return total, positive, 0
	}
	return total, positive, float64(positive) / float64(total)
}

// SetCoverage records this Candidate's estimated coverage. It may be called
// at most once (ErrCoverageAlreadySet on a second call) and only with a
// value in [0,1] (ErrCoverageOutOfRange otherwise).
func (c *Candidate) SetCoverage(coverage float64) error {
	if coverage < 0 || coverage > 1 {
		return ErrCoverageOutOfRange
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coverageSet {
		return ErrCoverageAlreadySet
	}
	c.coverage = coverage
	c.coverageSet = true
	return nil
}

// Coverage returns the previously-set coverage and true, or (0, false) if
// SetCoverage has not yet been called.
func (c *Candidate) Coverage() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coverage, c.coverageSet
}
