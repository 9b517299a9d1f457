package coverage

import (
	"errors"

	"github.com/katalvlaran/anchorx/perturb"
)

// ErrInvalidSampleCount indicates NewPerturbationBased was given a
// negative K.
var ErrInvalidSampleCount = errors.New("coverage: invalid sample count")

// DefaultPerturbationSamples is the K used when a caller does not
// override it.
const DefaultPerturbationSamples = 1000

// PerturbationBased estimates coverage by drawing K perturbation rows once
// (over the empty immutable set) and, for each later-queried Candidate,
// reporting the fraction of those rows in which every feature in the
// Candidate's set was left unchanged — a feature counts as "matched" iff
// it was NOT changed.
type PerturbationBased struct {
	rows [][]bool // K rows, each of length F
}

// NewPerturbationBased draws k rows from source and returns a ready
// Identifier. k == 0 uses DefaultPerturbationSamples; a negative k returns
// ErrInvalidSampleCount.
func NewPerturbationBased(source perturb.CoverageSource, k int) (*PerturbationBased, error) {
	if k < 0 {
		return nil, ErrInvalidSampleCount
	}
	if k == 0 {
		k = DefaultPerturbationSamples
	}

	rows, err := source.DrawCoverageRows(k)
	if err != nil {
		return nil, err
	}

	return &PerturbationBased{rows: rows}, nil
}

// CalculateCoverage implements Identifier.
func (p *PerturbationBased) CalculateCoverage(features []int) float64 {
	if len(p.rows) == 0 {
		return 0
	}

	matched := 0
	for _, row := range p.rows {
		if rowMatches(row, features) {
			matched++
		}
	}
	return float64(matched) / float64(len(p.rows))
}

// rowMatches reports whether none of features were changed in row.
func rowMatches(row []bool, features []int) bool {
	for _, f := range features {
		if f < 0 || f >= len(row) {
			continue
		}
		if row[f] {
			return false
		}
	}
	return true
}
