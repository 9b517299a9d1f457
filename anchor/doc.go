// Package anchor implements AnchorConstruction: the beam-search state
// machine that builds a minimal, high-precision rule over an instance's
// features such that the wrapped classifier's prediction is preserved
// whenever the rule holds.
//
// At depth d the construction generates every size-d extension of its
// surviving depth-(d-1) beam, gives each a small number of initial
// samples, asks a bandit.Identifier to pick the top BeamWidth candidates
// by empirical precision, then refines each in descending coverage order:
// pulling progressively larger batches (doubling each round) until either
// its KL lower bound on precision clears τ at tolerance ε (ACCEPT), its
// upper bound falls below τ+ε (reject without wasting further samples on
// it), or a per-candidate sample cap is hit. A
// depth with no legal extensions left (every feature already used, or the
// configured maximum anchor size reached) is EXHAUSTED; construction then
// either returns the best candidate seen so far under AllowSuboptimal, or
// ErrNoCandidateFound.
//
// Construction is built once per (classifier, perturbation oracle) pair
// via NewConstruction and reused across many Explain calls. Explain takes
// the instance and the label to explain, but samples from the perturbation
// oracle as configured: it records the instance on the result without
// rebasing the oracle onto it. ForInstance returns a Construction whose
// oracle is rebased onto a new instance.
package anchor
