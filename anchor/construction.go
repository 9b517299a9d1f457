package anchor

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/anchorx/bandit"
	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/perturb"
	"github.com/katalvlaran/anchorx/session"
)

// Construction runs beam-search anchor construction for one
// (ClassificationFunction, PerturbationFunction) pair, over instances of
// caller type T. Build one with NewConstruction and reuse it across many
// Explain calls. Its perturbation oracle stays based on the instance it was
// built with; Explain does not rebase it, and ForInstance returns a
// Construction rebased onto another instance.
type Construction[T any] struct {
	cfg             *config[T]
	numFeatures     int
	featureUniverse []int
	service         *session.Service[T]
}

// NewConstruction builds a Construction over numFeatures perturbable
// feature positions, wrapping classifier and perturbation into a sampling
// service. Returns ErrInvalidFeatureCount if numFeatures <= 0.
func NewConstruction[T any](
	numFeatures int,
	classifier perturb.ClassificationFunction[T],
	perturbation perturb.PerturbationFunction[T],
	opts ...Option[T],
) (*Construction[T], error) {
	if numFeatures <= 0 {
		return nil, ErrInvalidFeatureCount
	}

	cfg := newConfig[T]()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.identifier == nil {
		id, err := bandit.NewKLLUCB[T](cfg.batchSize)
		if err != nil {
			return nil, fmt.Errorf("anchor: building default identifier: %w", err)
		}
		cfg.identifier = id
	}

	sf := perturb.NewSamplingFunction[T](perturbation, classifier)
	svc := session.NewService[T](sf, cfg.strategy)

	universe := make([]int, 0, numFeatures)
	for i := 0; i < numFeatures; i++ {
		if _, locked := cfg.immutable[i]; locked {
			continue
		}
		universe = append(universe, i)
	}

	return &Construction[T]{
		cfg:             cfg,
		numFeatures:     numFeatures,
		featureUniverse: universe,
		service:         svc,
	}, nil
}

// ForInstance rebases this Construction onto a new base instance, for
// explain.BatchExplainer's global mode: it shares cfg, numFeatures, and
// featureUniverse with c (all immutable after NewConstruction) but wraps a
// freshly rebased session.Service, so the returned Construction shares no
// per-instance mutable state with c. It requires the underlying
// perturbation function to implement perturb.ReconfigurablePerturbationFunction
// (returns perturb.ErrNotReconfigurable otherwise).
func (c *Construction[T]) ForInstance(raw T) (*Construction[T], error) {
	svc, err := c.service.ForInstance(raw)
	if err != nil {
		return nil, err
	}
	return &Construction[T]{
		cfg:             c.cfg,
		numFeatures:     c.numFeatures,
		featureUniverse: c.featureUniverse,
		service:         svc,
	}, nil
}

// Explain constructs an anchor for the classifier's prediction `label` on
// raw, and returns it as a terminal AnchorResult. ctx cancellation aborts
// the search and is returned as-is (wrapped, where session plumbing
// itself does not already return ctx.Err() directly).
func (c *Construction[T]) Explain(ctx context.Context, raw T, label int) (*core.AnchorResult, error) {
	start := time.Now()

	maxSize := c.cfg.maxAnchorSize
	if maxSize <= 0 || maxSize > c.numFeatures {
		maxSize = c.numFeatures
	}

	var (
		beam            []*core.Candidate
		best            *core.Candidate
		bestPrecision   float64
		samplingElapsed time.Duration
	)

	for depth := 1; depth <= maxSize; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates, err := c.generateCandidates(beam, depth)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			break // EXHAUSTED: no legal extension left at this depth
		}

		sampleStart := time.Now()
		sess := c.service.CreateSession(label)
		for _, cand := range candidates {
			if err := sess.RegisterCandidateEvaluation(cand, c.cfg.initialSamples); err != nil {
				return nil, err
			}
		}
		if err := sess.Run(ctx); err != nil {
			return nil, err
		}
		samplingElapsed += time.Since(sampleStart)

		k := c.cfg.beamWidth
		if k > len(candidates) {
			k = len(candidates)
		}

		// Bonferroni-style correction: each depth's statistical tests run
		// at delta/(depth*beamWidth), so the overall confidence budget
		// stays within the configured delta however deep the search goes.
		deltaLevel := c.cfg.delta / float64(depth*c.cfg.beamWidth)

		winners, err := c.cfg.identifier.Identify(ctx, c.service, label, candidates, deltaLevel, c.cfg.epsilon, k)
		if err != nil {
			return nil, err
		}

		for _, cand := range winners {
			c.annotateCoverage(cand)
		}
		// highest coverage first, so the first accepted candidate is the
		// best-covered one among this level's winners.
		sortByCoverageDesc(winners)

		for _, cand := range winners {
			accepted, precision, elapsed, err := c.refine(ctx, cand, label, deltaLevel)
			if err != nil {
				return nil, err
			}
			samplingElapsed += elapsed

			if precision > 0 && (best == nil || precision > bestPrecision) {
				best, bestPrecision = cand, precision
			}

			if accepted {
				return core.NewAnchorResult(cand, raw, label, true, time.Since(start), samplingElapsed), nil
			}
		}

		// If no singleton ever matched the explained label, no extension
		// can either — a conjunction only narrows the conditional — so
		// deeper levels would re-run the same identify/refine cycle for
		// nothing.
		if depth == 1 && !anyPositive(candidates) {
			return nil, ErrNoCandidateFound
		}

		beam = winners
	}

	if best == nil {
		return nil, ErrNoCandidateFound
	}
	if !c.cfg.allowSuboptimal {
		return nil, ErrNoCandidateFound
	}

	c.annotateCoverage(best)
	return core.NewAnchorResult(best, raw, label, false, time.Since(start), samplingElapsed), nil
}

// refine pulls progressively larger batches for cand (doubling each round)
// until its precision estimate is decided against τ at tolerance ε:
// accepted once p̂ ≥ τ and the KL lower bound clears τ−ε, rejected once
// p̂ < τ and the KL upper bound falls below τ+ε, undecided (reported as
// not accepted) once the per-candidate sample cap is hit. The ε margin is
// what makes τ=1.0 decidable at all — a KL lower bound never reaches 1
// at any finite sample size, but it does clear 1−ε.
func (c *Construction[T]) refine(ctx context.Context, cand *core.Candidate, label int, delta float64) (accepted bool, precision float64, elapsed time.Duration, err error) {
	batch := c.cfg.batchSize
	var spent time.Duration

	for {
		total, _, p := cand.Snapshot()
		precision = p

		if total > 0 {
			if p >= c.cfg.tau {
				lb := bandit.PrecisionLowerBound(total, p, c.numFeatures, delta)
				if lb >= c.cfg.tau-c.cfg.epsilon {
					return true, p, spent, nil
				}
			} else {
				ub := bandit.PrecisionUpperBound(total, p, c.numFeatures, delta)
				if ub < c.cfg.tau+c.cfg.epsilon {
					return false, p, spent, nil
				}
			}
			if total >= c.cfg.maxSamplesPerID {
				return false, p, spent, nil
			}
		}

		if err := ctx.Err(); err != nil {
			return false, precision, spent, err
		}

		pull := batch
		if left := c.cfg.maxSamplesPerID - total; pull > left {
			pull = left
		}

		pullStart := time.Now()
		sess := c.service.CreateSession(label)
		if regErr := sess.RegisterCandidateEvaluation(cand, pull); regErr != nil {
			return false, precision, spent, regErr
		}
		if runErr := sess.Run(ctx); runErr != nil {
			return false, precision, spent, runErr
		}
		spent += time.Since(pullStart)

		batch *= 2
	}
}

// anyPositive reports whether at least one candidate has recorded a
// positive sample.
func anyPositive(candidates []*core.Candidate) bool {
	for _, c := range candidates {
		if c.Positive() > 0 {
			return true
		}
	}
	return false
}

// sortByCoverageDesc orders candidates by descending coverage, ties broken
// by input order (stable insertion sort — beam widths are small).
func sortByCoverageDesc(candidates []*core.Candidate) {
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0; j-- {
			cj, _ := candidates[j].Coverage()
			cjPrev, _ := candidates[j-1].Coverage()
			if cj <= cjPrev {
				break
			}
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
}

// annotateCoverage sets cand's coverage if it has not already been set
// (refine may visit the same candidate only once per Explain call, but
// guarding here keeps annotateCoverage safe to call more than once).
func (c *Construction[T]) annotateCoverage(cand *core.Candidate) {
	if _, ok := cand.Coverage(); ok {
		return
	}
	_ = cand.SetCoverage(c.cfg.coverageID.CalculateCoverage(cand.Features()))
}

// generateCandidates extends beam (the previous depth's survivors) by one
// feature each, deduplicated by canonical key. At depth 1 (empty beam) it
// returns one singleton Candidate per feature in the universe.
func (c *Construction[T]) generateCandidates(beam []*core.Candidate, depth int) ([]*core.Candidate, error) {
	if depth == 1 {
		out := make([]*core.Candidate, 0, len(c.featureUniverse))
		for _, f := range c.featureUniverse {
			cand, err := core.NewRootCandidate(f)
			if err != nil {
				return nil, err
			}
			out = append(out, cand)
		}
		return out, nil
	}

	seen := make(map[string]struct{})
	var out []*core.Candidate
	for _, parent := range beam {
		for _, f := range c.featureUniverse {
			if parent.HasFeature(f) {
				continue
			}
			features := append(append([]int{}, parent.Features()...), f)
			cand, err := core.NewCandidate(features, parent)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[cand.Key()]; dup {
				continue
			}
			seen[cand.Key()] = struct{}{}
			out = append(out, cand)
		}
	}
	return out, nil
}
