package session

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runParallelPerCandidate submits one task per candidate to an errgroup
// limited to the strategy's worker count. errgroup cancels the group's
// derived context on the first error, which the next evaluate call (or
// the next iteration of a multi-sub-call worker) observes via ctx.Err().
func (sess *Session[T]) runParallelPerCandidate(ctx context.Context, entries []pullEntry) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sess.service.strategy.workers)

	for _, e := range entries {
		e := e
		g.Go(func() error {
			return sess.evaluate(gctx, e.candidate, e.n)
		})
	}
	return g.Wait()
}

// chunk is one worker's share of the balanced-parallel plan: a sequence of
// (candidate, size) sub-evaluations whose sizes sum to the worker's budget.
type chunk struct {
	parts []pullEntry
}

// planBalancedChunks splits the total pulls across entries into `workers`
// near-equal chunks (remainder spread over the first chunks), each
// possibly spanning several candidates and possibly taking only part of a
// candidate's remaining pulls. Every entry's remaining pulls are drained
// completely across consecutive chunks, so no pull is ever lost even when
// a chunk boundary falls mid-candidate.
func planBalancedChunks(entries []pullEntry, workers int) []chunk {
	total := 0
	for _, e := range entries {
		total += e.n
	}
	if total == 0 {
		return nil
	}
	if workers > total {
		workers = total
	}

	base := total / workers
	remainder := total % workers

	chunks := make([]chunk, workers)

	// remaining tracks how much of each entry's pull count is still
	// unassigned; we drain it front-to-back across chunk budgets.
	remaining := make([]pullEntry, len(entries))
	copy(remaining, entries)

	idx := 0 // index into remaining of the entry currently being drained
	for w := 0; w < workers; w++ {
		budget := base
		if w < remainder {
			budget++
		}
		for budget > 0 && idx < len(remaining) {
			take := remaining[idx].n
			if take > budget {
				take = budget
			}
			chunks[w].parts = append(chunks[w].parts, pullEntry{
				candidate: remaining[idx].candidate,
				n:         take,
			})
			remaining[idx].n -= take
			budget -= take
			if remaining[idx].n == 0 {
				idx++
			}
		}
	}

	return chunks
}

// runBalancedParallel executes the plan from planBalancedChunks, one
// errgroup task per worker; each task issues its sub-evaluate calls
// sequentially.
func (sess *Session[T]) runBalancedParallel(ctx context.Context, entries []pullEntry) error {
	chunks := planBalancedChunks(entries, sess.service.strategy.workers)

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		c := c
		if len(c.parts) == 0 {
			continue
		}
		g.Go(func() error {
			for _, part := range c.parts {
				if err := sess.evaluate(gctx, part.candidate, part.n); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
