package session

import "errors"

// Sentinel errors for the session package. Callers branch with errors.Is.
var (
	// ErrNegativePulls indicates RegisterCandidateEvaluation was called
	// with a negative pull count.
	ErrNegativePulls = errors.New("session: negative pull count")

	// ErrInvalidWorkerCount indicates a parallel ExecutionStrategy was
	// built with a non-positive worker count.
	ErrInvalidWorkerCount = errors.New("session: worker count must be positive")
)
