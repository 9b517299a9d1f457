package explain

import (
	"github.com/katalvlaran/anchorx/core"
	"github.com/katalvlaran/anchorx/instance"
)

// CoveragePick is the coverage-maximizing global aggregator: it
// repeatedly takes the surviving result with the largest coverage, then
// removes every other survivor sharing any (feature, value) pair with the
// one just picked — optionally restricted to survivors with the same
// label (IncludeTargetValue).
type CoveragePick struct {
	b                  int
	includeTargetValue bool
}

// NewCoveragePick builds a CoveragePick selecting at most b results.
// Returns ErrInvalidPickSize if b <= 0. When includeTargetValue is true,
// the (feature, value)-overlap exclusion only applies between survivors
// sharing the just-picked result's Label; when false, it applies
// regardless of label.
func NewCoveragePick(b int, includeTargetValue bool) (*CoveragePick, error) {
	if b <= 0 {
		return nil, ErrInvalidPickSize
	}
	return &CoveragePick{b: b, includeTargetValue: includeTargetValue}, nil
}

// Pick implements the repeated max-coverage selection. The returned slice
// is in selection order and has length <= min(b, len(results)).
func (p *CoveragePick) Pick(results []*core.AnchorResult) []*core.AnchorResult {
	survivors := make([]*core.AnchorResult, len(results))
	copy(survivors, results)

	out := make([]*core.AnchorResult, 0, p.b)
	for len(out) < p.b && len(survivors) > 0 {
		bestIdx := 0
		bestCov, _ := survivors[0].Coverage()
		for i := 1; i < len(survivors); i++ {
			cov, _ := survivors[i].Coverage()
			if cov > bestCov {
				bestCov, bestIdx = cov, i
			}
		}

		picked := survivors[bestIdx]
		out = append(out, picked)
		pickedPairs := valuePairs(picked)

		remaining := make([]*core.AnchorResult, 0, len(survivors)-1)
		for i, r := range survivors {
			if i == bestIdx {
				continue
			}
			if p.includeTargetValue && r.Label != picked.Label {
				remaining = append(remaining, r)
				continue
			}
			if sharesAnyPair(valuePairs(r), pickedPairs) {
				continue
			}
			remaining = append(remaining, r)
		}
		survivors = remaining
	}
	return out
}

// valuePairs returns r's (feature, value) pairs, keyed by feature index.
// If r.Instance does not implement instance.DataInstance, it has no typed
// values and contributes no pairs — it can never be excluded from, or
// exclude, another result via the (feature, value) overlap rule.
func valuePairs(r *core.AnchorResult) map[int]instance.Value {
	di, ok := r.Instance.(instance.DataInstance)
	if !ok {
		return nil
	}
	out := make(map[int]instance.Value, r.Size())
	for _, f := range r.Features() {
		if v, ok := di.Value(f); ok {
			out[f] = v
		}
	}
	return out
}

// sharesAnyPair reports whether a and b agree on any feature index's value.
func sharesAnyPair(a, b map[int]instance.Value) bool {
	for f, v := range a {
		if other, ok := b[f]; ok && v.Equal(other) {
			return true
		}
	}
	return false
}
