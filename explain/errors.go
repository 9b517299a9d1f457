package explain

import "errors"

// Sentinel errors for the explain package. Callers branch with errors.Is.
var (
	// ErrInvalidPickSize indicates NewSubmodularPick/NewCoveragePick was
	// built with a non-positive B.
	ErrInvalidPickSize = errors.New("explain: pick size must be positive")
)
