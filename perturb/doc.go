// Package perturb declares the two external collaborators every
// construction depends on — ClassificationFunction and
// PerturbationFunction — plus the default SamplingFunction that turns N
// pulls on a Candidate into an empirical precision.
//
// The classifier and the perturbation oracle are domain-specific and
// intentionally left to the caller: this package only fixes their
// contracts and the glue that calls them correctly. A tabular adapter, a
// text adapter, or an image adapter each implement PerturbationFunction
// once and the rest of anchorx is unaffected.
//
// Configuration Options: none on the contracts themselves. The default
// SamplingFunction is constructed directly (NewSamplingFunction) since it
// has exactly two collaborators and no optional knobs; functional options
// live further up, on anchor.Construction and explain.BatchExplainer, where
// there are real choices to make.
//
// Errors:
//
//	ErrNegativeSampleCount – Perturb or Evaluate called with n < 0.
//	ErrBatchSizeMismatch   – a PerturbationFunction returned a Batch whose
//	                         Changed row count does not match len(Surrogates).
//	ErrNotReconfigurable   – global mode requested a fresh-per-instance
//	                         PerturbationFunction from one that does not
//	                         implement ReconfigurablePerturbationFunction.
package perturb
