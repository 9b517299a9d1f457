package anchor

import "errors"

var (
	// ErrNoCandidateFound is returned as soon as depth 1 completes with
	// zero positive samples across every candidate (nothing ever matched
	// the explained label, so no deeper conjunction can either), and when
	// the search exhausts the feature lattice without an accepted
	// candidate while AllowSuboptimal is false.
	ErrNoCandidateFound = errors.New("anchor: no candidate satisfies the precision threshold")

	// ErrInvalidFeatureCount is returned when NewConstruction is given a
	// non-positive feature count.
	ErrInvalidFeatureCount = errors.New("anchor: invalid feature count")
)
