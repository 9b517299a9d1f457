package explain

import "github.com/katalvlaran/anchorx/core"

// Picker is the global aggregator contract: given the full
// batch of local explanations produced by BatchExplainer, choose at most B
// representative results. SubmodularPick and CoveragePick are the two
// provided implementations; callers may supply their own.
type Picker interface {
	Pick(results []*core.AnchorResult) []*core.AnchorResult
}
