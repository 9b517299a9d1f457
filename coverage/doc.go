// Package coverage implements CoverageIdentification: estimating
// Pr_{z~D}[A(z)] for a Candidate's feature set A, either by perturbation
// sampling or by a length-penalty fallback for domains where true
// coverage is inapplicable (e.g. images).
//
// Both Identifier implementations are called at most once per Candidate —
// Candidate.SetCoverage enforces that invariant and returns
// core.ErrCoverageAlreadySet on a second call, so a second computation for
// the same Candidate never overwrites the first value.
package coverage
