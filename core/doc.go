// Package core defines the central Candidate and AnchorResult types shared
// by every other anchorx package: a feature-set identity plus thread-safe
// sample counters, and the terminal result a Construction hands back to a
// caller.
//
// A Candidate is the "arm" the bandit packages pull: it never perturbs or
// classifies anything itself. SamplingFunction implementations (package
// perturb) call RegisterSamples to report the outcome of N perturbations;
// CoverageIdentification implementations (package coverage) call
// SetCoverage exactly once. Both are guarded by a per-Candidate mutex so
// many goroutines can sample distinct (or the same) Candidate concurrently
// without a package-wide lock.
//
// Configuration Options: none — Candidate has no functional options; its
// shape is fixed by the feature-set lattice it models (see NewCandidate,
// NewRootCandidate).
//
// Errors:
//
//	ErrEmptyFeatureSet    – NewCandidate called with no feature indices.
//	ErrInvalidParent      – child feature set is not parent ∪ {one index}.
//	ErrInvalidSampleCount – negative N, negative matches, or matches > N.
//	ErrCoverageOutOfRange – SetCoverage called with a value outside [0,1].
//	ErrCoverageAlreadySet – SetCoverage called twice on the same Candidate.
package core
