package perturb

import "errors"

// Sentinel errors for the perturb package. Callers branch with errors.Is.
var (
	// ErrNegativeSampleCount indicates a caller asked for a negative number
	// of perturbations or samples.
	ErrNegativeSampleCount = errors.New("perturb: negative sample count")

	// ErrBatchSizeMismatch indicates a PerturbationFunction returned a
	// Batch whose Changed row count does not equal len(Surrogates).
	ErrBatchSizeMismatch = errors.New("perturb: batch row count mismatch")

	// ErrNotReconfigurable indicates global (per-instance) mode was
	// requested against a PerturbationFunction that does not implement
	// ReconfigurablePerturbationFunction.
	ErrNotReconfigurable = errors.New("perturb: perturbation function is not reconfigurable")
)
