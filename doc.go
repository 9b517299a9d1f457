// Package anchorx explains one prediction of an arbitrary black-box
// classifier by finding an anchor: a short, high-precision rule over the
// instance's features such that the classifier's output is preserved
// whenever the rule holds.
//
// Given an instance x, its predicted label ŷ = f(x), a perturbation oracle
// that resamples the rest of x's features, and confidence parameters
// (τ, δ, ε), anchorx returns a minimal feature-index set A such that, with
// probability ≥ 1−δ, Pr_{z~D|A}[f(z)=ŷ] ≥ τ, while maximizing estimated
// coverage Pr_{z~D}[A(z)].
//
// Everything is organized one concern per package, in dependency order:
//
//	core/    — Candidate (the bandit's arm) and AnchorResult
//	instance/ — typed per-feature values for tabular instances
//	perturb/ — ClassificationFunction, PerturbationFunction, SamplingFunction
//	session/ — SamplingService: linear, parallel, and balanced-parallel pulls
//	coverage/ — perturbation-based and length-penalty coverage estimators
//	bandit/  — KL-LUCB, Median Elimination, Batch-SAR, Batch-Racing
//	anchor/  — beam-search AnchorConstruction tying every layer together
//	explain/ — BatchExplainer, SubmodularPick, CoveragePick
//
// The classifier, the perturbation oracle's domain logic, logging, and any
// CLI or network wrapper are deliberately out of scope: anchorx consumes
// them through the interfaces in perturb and instance and never assumes a
// particular data modality.
package anchorx
