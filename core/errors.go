package core

import "errors"

// Sentinel errors for Candidate construction and mutation. Callers branch
// with errors.Is; messages are stable and never stringify parameters.
var (
	// ErrEmptyFeatureSet indicates NewCandidate was given no feature indices.
	ErrEmptyFeatureSet = errors.New("core: feature set is empty")

	// ErrInvalidParent indicates the child's feature set is not exactly the
	// parent's feature set plus one new index.
	ErrInvalidParent = errors.New("core: child feature set does not extend parent by one index")

	// ErrInvalidSampleCount indicates RegisterSamples was called with a
	// negative n, a negative matches, or matches > n.
	ErrInvalidSampleCount = errors.New("core: invalid sample count")

	// ErrCoverageOutOfRange indicates SetCoverage was given a value outside [0,1].
	ErrCoverageOutOfRange = errors.New("core: coverage out of range")

	// ErrCoverageAlreadySet indicates SetCoverage was called more than once.
	ErrCoverageAlreadySet = errors.New("core: coverage already set")
)
