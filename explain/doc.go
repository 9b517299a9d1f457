// Package explain implements the global aggregation layer: BatchExplainer
// obtains one AnchorResult per instance across a dataset on a fixed-size
// outer worker pool, and the two Picker implementations — SubmodularPick
// (default) and CoveragePick — choose B representative explanations from
// the resulting batch.
//
// BatchExplainer's outer pool is independent of each Construction's own
// inner sampling pool: effective parallelism is workers × (the inner pool
// size baked into the template Construction's session.ExecutionStrategy).
// Each worker gets its own Construction clone via
// anchor.Construction.ForInstance, which in turn requires the
// perturbation function wired into the template to implement
// perturb.ReconfigurablePerturbationFunction; if it does not,
// ObtainAnchors surfaces perturb.ErrNotReconfigurable and aborts the
// whole call.
//
// Errors:
//
//	ErrInvalidPickSize – NewSubmodularPick/NewCoveragePick built with B <= 0.
package explain
