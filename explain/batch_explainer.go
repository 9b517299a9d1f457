package explain

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/anchorx/anchor"
	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/perturb"
)

// SkipObserver is called once per instance BatchExplainer drops because
// Construction.Explain returned anchor.ErrNoCandidateFound. It is a
// caller-supplied hook rather than a log line: logging is the caller's
// concern, not this package's.
type SkipObserver func(index int, err error)

// Option customizes a BatchExplainer.
type Option[T any] func(*BatchExplainer[T])

// WithOuterWorkers sets T_outer, the outer worker pool size. workers <= 1
// runs every instance sequentially on a single worker goroutine.
func WithOuterWorkers[T any](workers int) Option[T] {
	return func(b *BatchExplainer[T]) { b.workers = workers }
}

// WithSkipObserver registers a SkipObserver called for every instance
// dropped for lack of a candidate.
func WithSkipObserver[T any](fn SkipObserver) Option[T] {
	return func(b *BatchExplainer[T]) { b.onSkip = fn }
}

// BatchExplainer obtains one AnchorResult per instance across a dataset,
// running one Construction per instance on a fixed-size outer worker
// pool.
type BatchExplainer[T any] struct {
	template   *anchor.Construction[T]
	classifier perturb.ClassificationFunction[T]
	workers    int
	onSkip     SkipObserver
}

// NewBatchExplainer builds a BatchExplainer. template is reused as the
// read-only configuration seed for every instance: ObtainAnchors rebases a
// fresh Construction off it per instance (anchor.Construction.ForInstance)
// so no perturbation oracle is ever shared across workers. classifier
// computes ŷ = f(x) for each instance before its Construction.Explain
// call.
func NewBatchExplainer[T any](template *anchor.Construction[T], classifier perturb.ClassificationFunction[T], opts ...Option[T]) *BatchExplainer[T] {
	b := &BatchExplainer[T]{template: template, classifier: classifier, workers: 1}
	for _, opt := range opts {
		opt(b)
	}
	if b.workers < 1 {
		b.workers = 1
	}
	return b
}

// slot holds one instance's outcome, written by exactly one worker, so
// ObtainAnchors can assemble results in input order without a lock.
type slot struct {
	result *core.AnchorResult
	err    error
}

// ObtainAnchors runs one Construction per instance, returning one
// AnchorResult per instance that produced one, in input order. Instances
// for which Explain returns anchor.ErrNoCandidateFound are dropped (their
// SkipObserver, if any, is invoked) rather than failing the whole call;
// any other error — including perturb.ErrNotReconfigurable, or ctx
// cancellation — aborts ObtainAnchors and is returned as-is (cooperative
// cancellation: an outer worker's interruption aborts the remaining
// instances in its chunk).
func (b *BatchExplainer[T]) ObtainAnchors(ctx context.Context, instances []T) ([]*core.AnchorResult, error) {
	if len(instances) == 0 {
		return nil, nil
	}

	chunks := partition(len(instances), b.workers)
	slots := make([]slot, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	for _, ch := range chunks {
		ch := ch
		g.Go(func() error {
			for i := ch.start; i < ch.end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := b.explainOne(gctx, instances[i])
				if err != nil {
					if errors.Is(err, anchor.ErrNoCandidateFound) {
						slots[i] = slot{err: err}
						if b.onSkip != nil {
							b.onSkip(i, err)
						}
						continue
					}
					return fmt.Errorf("explain: instance %d: %w", i, err)
				}
				slots[i] = slot{result: res}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*core.AnchorResult, 0, len(instances))
	for _, s := range slots {
		if s.result != nil {
			out = append(out, s.result)
		}
	}
	return out, nil
}

// explainOne rebases the template Construction onto raw, predicts its
// label, and runs one beam search for it.
func (b *BatchExplainer[T]) explainOne(ctx context.Context, raw T) (*core.AnchorResult, error) {
	construction, err := b.template.ForInstance(raw)
	if err != nil {
		return nil, err
	}
	label := b.classifier.Predict(raw)
	return construction.Explain(ctx, raw, label)
}

// chunkRange is one worker's contiguous span of instance indices.
type chunkRange struct{ start, end int }

// partition splits [0,n) into at most workers contiguous, near-equal
// chunks, remainder spread over the first chunks.
func partition(n, workers int) []chunkRange {
	if workers > n {
		workers = n
	}
	base := n / workers
	remainder := n % workers

	chunks := make([]chunkRange, 0, workers)
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < remainder {
			size++
		}
		chunks = append(chunks, chunkRange{start: start, end: start + size})
		start += size
	}
	return chunks
}
