package explain

import (
	"math"

	"github.com/katalvlaran/anchorx/core"
)

// SubmodularPick is the default global aggregator: it greedily selects B
// results maximizing column-union feature importance, where a result's
// per-feature weight is √precision and a feature's importance is the sum
// of weights of every result containing it.
//
// Each greedy step picks the result with the largest marginal gain in
// total covered importance — the importance of its features not yet
// covered by an earlier pick — so no running coverage term needs to be
// tracked separately.
type SubmodularPick struct {
	b int
}

// NewSubmodularPick builds a SubmodularPick selecting at most b results.
// Returns ErrInvalidPickSize if b <= 0.
func NewSubmodularPick(b int) (*SubmodularPick, error) {
	if b <= 0 {
		return nil, ErrInvalidPickSize
	}
	return &SubmodularPick{b: b}, nil
}

// Pick implements the greedy submodular selection. Ties in marginal gain
// are broken by input order (the first-seen maximal result wins), and the
// returned slice is in selection order. Returns min(b, len(results))
// results, fewer only if every remaining result has zero marginal gain.
func (p *SubmodularPick) Pick(results []*core.AnchorResult) []*core.AnchorResult {
	n := len(results)
	if n == 0 {
		return nil
	}

	featuresOf := make([][]int, n)
	importance := make(map[int]float64)
	for i, r := range results {
		feats := r.Features()
		featuresOf[i] = feats
		weight := math.Sqrt(r.Precision())
		for _, f := range feats {
			importance[f] += weight
		}
	}

	covered := make(map[int]bool, len(importance))
	chosen := make([]bool, n)

	b := p.b
	if b > n {
		b = n
	}

	out := make([]*core.AnchorResult, 0, b)
	for round := 0; round < b; round++ {
		bestIdx := -1
		bestGain := 0.0
		for i := 0; i < n; i++ {
			if chosen[i] {
				continue
			}
			gain := 0.0
			for _, f := range featuresOf[i] {
				if !covered[f] {
					gain += importance[f]
				}
			}
			if bestIdx == -1 || gain > bestGain {
				bestIdx, bestGain = i, gain
			}
		}
		if bestIdx == -1 || bestGain <= 0 {
			break
		}

		chosen[bestIdx] = true
		for _, f := range featuresOf[bestIdx] {
			covered[f] = true
		}
		out = append(out, results[bestIdx])
	}
	return out
}
