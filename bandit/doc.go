// Package bandit implements BestAnchorIdentification: pure-exploration
// multi-armed bandits that select the top-k Candidates (arms) by
// empirical precision, pulling more samples through a session.Service
// until a stopping rule separates the winners from the rest.
//
// KL-LUCB is the default: it tracks, each round, the Bernoulli-KL lower
// confidence bound of the weakest empirical top-k arm and the upper
// confidence bound of the strongest remaining arm, pulling both one fixed
// batch at a time until the two bounds separate by less than ε. Median
// Elimination, Batch-SAR, and Batch-Racing (Jun et al., 2016) are the
// three alternative identifiers; the batched pair shares the round-robin
// pull distributor in arms.go, which cycles over the arms least-sampled
// first and caps each round at min(b, |arms|·r) pulls.
//
// This is the hardest numeric corner of anchorx — KL-LUCB, Batch-Racing,
// and anchor's τ-refinement depend on the Bernoulli KL divergence and its two one-sided bisection
// inversions (up/low), and on an exploration-rate function β(n,t,δ).
// Constants here (k1≈405.5, α=1.1) are the Kaufmann & Kalyanakrishnan
// KL-LUCB reference values; the literature quotes several variants, so
// they are overridable package variables rather than a fixed law.
//
// Configuration: each identifier is a small struct built with a
// constructor (NewKLLUCB, NewMedianElimination, NewBatchSAR,
// NewBatchRacing) rather than functional options — none of the four have
// enough independent knobs to justify an options type; anchor.Construction
// is where a caller actually chooses between them. The confidence
// parameters δ and ε arrive per Identify call, so a beam search can
// shrink its confidence budget depth by depth.
//
// Errors:
//
//	ErrEmptyCandidateSet – Identify called with no candidates.
//	ErrInvalidK          – Identify asked for k <= 0 or k > len(candidates).
//	ErrInvalidBudget     – a batch size or per-arm cap <= 0, or a per-arm cap above the batch size.
//	ErrInvalidConfidence – delta outside (0,1) or epsilon <= 0.
package bandit
