package bandit

import "errors"

var (
	// ErrEmptyCandidateSet is returned when Identify is called with no arms.
	ErrEmptyCandidateSet = errors.New("bandit: empty candidate set")

	// ErrInvalidK is returned when the requested winner count is <= 0 or
	// exceeds the number of candidates supplied.
	ErrInvalidK = errors.New("bandit: invalid k")

	// ErrInvalidBudget is returned when a batch size or per-round per-arm
	// cap is <= 0, or when the per-arm cap exceeds the batch size.
	ErrInvalidBudget = errors.New("bandit: invalid sample budget")

	// ErrInvalidConfidence is returned when Identify is called with delta
	// outside (0,1) or epsilon <= 0.
	ErrInvalidConfidence = errors.New("bandit: invalid confidence parameters")
)
