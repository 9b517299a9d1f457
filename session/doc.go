// Package session implements SamplingService and SamplingSession: the
// aggregation layer that turns many independent "pull N more samples on
// this Candidate" requests into one execution, linear or concurrent.
//
// A Service is configured once with a SamplingFunction and an
// ExecutionStrategy (Linear, ParallelPerCandidate(T), or
// BalancedParallel(T)). A caller opens a Session per sampling round via
// CreateSession(label), accumulates RegisterCandidateEvaluation calls for
// every candidate under consideration, then calls Session.Run once to
// execute them all and block until done.
//
// Concurrency: within one Session.Run, concurrent workers may update
// different Candidates freely; updates to the same Candidate are
// serialized by that Candidate's own lock (core.Candidate.RegisterSamples).
// No ordering is guaranteed between workers — the bandit packages depend
// only on final totals, never on interleaving. Session.Run uses
// golang.org/x/sync/errgroup for its worker pools: the first worker error
// cancels the group's context and is returned to the caller.
//
// Errors:
//
//	ErrNegativePulls    – RegisterCandidateEvaluation called with n < 0.
//	ErrInvalidWorkerCount – ParallelPerCandidate/BalancedParallel built with workers <= 0.
package session
