// Package collate turns a relaxed probability matrix into a sequence.
//
// Two strategies:
//   - MajorityVote reads the argmax row of every column, no further
//     simulation.
//   - IncrementalFixation alternates threshold fixing, fixing the single
//     most confident free cell, and re-simulating, until every column is
//     fixed.
package collate

import (
	"context"
	"fmt"

	"rnadesign/core/anneal"
	"rnadesign/core/matrix"
)

// Reasons reported to anneal.Observer.ColumnFixed.
const (
	ReasonThreshold = "threshold"
	ReasonArgmax    = "argmax"
)

// MajorityVote returns the argmax row of every column, ties to the lowest
// row. Fixed columns report their pinned base. It does not modify m.
func MajorityVote(m *matrix.Matrix) []int {
	out := make([]int, m.Cols())
	for j := range out {
		out[j], _ = m.Argmax(j)
	}
	return out
}

// Params configures IncrementalFixation.
type Params struct {
	Threshold float64 // fix every free cell at or above this probability
	Steps     int     // re-simulation steps after each forced fixation
	T0        float64 // re-simulation starting temperature
}

func (p Params) validate() error {
	if !(p.Threshold > 0 && p.Threshold <= 1) {
		return &matrix.PreconditionError{Op: "collate", Detail: fmt.Sprintf("threshold %v must be in (0,1]", p.Threshold)}
	}
	if p.Steps < 0 {
		return &matrix.PreconditionError{Op: "collate", Detail: fmt.Sprintf("steps %d must be ≥ 0", p.Steps)}
	}
	return nil
}

// Report summarizes an IncrementalFixation run.
type Report struct {
	Sequence       []int
	Rounds         int // forced fixations, each followed by a re-simulation
	ThresholdFixed int
	ForcedFixed    int
}

// IncrementalFixation fixes columns until none are free. Each round fixes
// every free column whose argmax reaches the threshold, then the globally
// most probable free cell (lowest column, then lowest row, on ties), then
// re-runs sim on m. Every round fixes at least one column, so at most N
// rounds run.
func IncrementalFixation(ctx context.Context, m *matrix.Matrix, sim *anneal.Simulator, p Params) (Report, error) {
	var rep Report
	if err := p.validate(); err != nil {
		return rep, err
	}
	if sim == nil {
		return rep, &matrix.PreconditionError{Op: "collate", Detail: "nil simulator"}
	}
	obs := sim.Observer
	if obs == nil {
		obs = anneal.NopObserver{}
	}

	for {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		for j := 0; j < m.Cols(); j++ {
			if m.Fixed(j) {
				continue
			}
			if row, pr := m.Argmax(j); pr >= p.Threshold {
				if err := m.Fix(row, j); err != nil {
					return rep, err
				}
				rep.ThresholdFixed++
				obs.ColumnFixed(j, row, ReasonThreshold)
			}
		}

		col, row := mostConfident(m)
		if col < 0 {
			break
		}
		if err := m.Fix(row, col); err != nil {
			return rep, err
		}
		rep.ForcedFixed++
		obs.ColumnFixed(col, row, ReasonArgmax)

		rep.Rounds++
		if err := sim.Run(ctx, m, p.Steps, p.T0); err != nil {
			return rep, err
		}
	}
	rep.Sequence = MajorityVote(m)
	return rep, nil
}

// mostConfident scans free columns for the largest current probability.
// It returns col −1 when every column is fixed.
func mostConfident(m *matrix.Matrix) (col, row int) {
	col, row = -1, -1
	best := -1.0
	for j := 0; j < m.Cols(); j++ {
		if m.Fixed(j) {
			continue
		}
		if r, p := m.Argmax(j); p > best {
			col, row, best = j, r, p
		}
	}
	return col, row
}
