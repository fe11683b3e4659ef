// Package engine is the boundary API of the design core: build a probability
// matrix for a target structure, relax it, and collate it into a sequence.
//
//	d, err := engine.Construct(pairing, R, N, presets)
//	err = engine.Simulate(ctx, d, steps, t0, model)
//	err = engine.CollateMajority(d)        // or CollateIncremental
//	seq, err := engine.GetSequence(d)
//
// Engine bundles the same calls behind one Config for callers that run the
// whole pipeline.
package engine

import (
	"context"
	"fmt"

	"rnadesign/core/anneal"
	"rnadesign/core/collate"
	"rnadesign/core/energy"
	"rnadesign/core/matrix"
	"rnadesign/core/structure"
)

// Preset pins column Col (0-based) to alphabet row Base before any step.
type Preset struct {
	Col  int
	Base int
}

// Design is one run's state: the matrix and, once collated, its sequence.
type Design struct {
	m   *matrix.Matrix
	seq []int
}

// Construct validates the pairing list (0 = unpaired, k+1 = partner k),
// allocates a uniform R×N matrix and applies presets. Presets are not
// checked for duplicates; a later preset for the same column wins.
func Construct(pairing []int, r, n int, presets []Preset) (*Design, error) {
	if len(pairing) != n {
		return nil, &matrix.PreconditionError{Op: "construct", Detail: fmt.Sprintf("pairing has %d entries, want N=%d", len(pairing), n)}
	}
	pm, err := structure.New(pairing)
	if err != nil {
		return nil, &matrix.PreconditionError{Op: "construct", Detail: err.Error()}
	}
	return FromPairing(pm, r, presets)
}

// FromPairing is Construct for an already validated pairing map.
func FromPairing(pm structure.PairingMap, r int, presets []Preset) (*Design, error) {
	m, err := matrix.New(pm, r)
	if err != nil {
		return nil, err
	}
	for i, p := range presets {
		if err := m.Fix(p.Base, p.Col); err != nil {
			return nil, fmt.Errorf("preset %d: %w", i+1, err)
		}
	}
	return &Design{m: m}, nil
}

// Matrix exposes the probability matrix for diagnostics (dump, confidence).
func (d *Design) Matrix() *matrix.Matrix { return d.m }

// Confidence is the largest current probability of every column.
func (d *Design) Confidence() []float64 {
	out := make([]float64, d.m.Cols())
	for j := range out {
		_, out[j] = d.m.Argmax(j)
	}
	return out
}

// Collated reports whether a collator has produced a sequence.
func (d *Design) Collated() bool { return d.seq != nil }

// Option tunes a simulation.
type Option func(*anneal.Simulator)

// WithTargetRatio sets T_final/T0 of the cooling schedule.
func WithTargetRatio(r float64) Option {
	return func(s *anneal.Simulator) { s.TargetRatio = r }
}

// WithObserver attaches run diagnostics.
func WithObserver(o anneal.Observer) Option {
	return func(s *anneal.Simulator) { s.Observer = o }
}

func simulator(model energy.Model, opts []Option) *anneal.Simulator {
	s := &anneal.Simulator{Model: model}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Simulate runs steps annealing steps from t0. When steps > 0 a previously
// collated sequence is discarded, even if the run fails part way.
func Simulate(ctx context.Context, d *Design, steps int, t0 float64, model energy.Model, opts ...Option) error {
	if d == nil {
		return &matrix.PreconditionError{Op: "simulate", Detail: "nil design"}
	}
	if steps > 0 {
		d.seq = nil
	}
	return simulator(model, opts).Run(ctx, d.m, steps, t0)
}

// CollateMajority takes the per-column argmax. The matrix is not modified.
func CollateMajority(d *Design) error {
	if d == nil {
		return &matrix.PreconditionError{Op: "collate", Detail: "nil design"}
	}
	d.seq = collate.MajorityVote(d.m)
	return nil
}

// CollateIncremental decimates the matrix until every column is fixed,
// re-simulating steps steps from t0 after each forced fixation.
func CollateIncremental(ctx context.Context, d *Design, threshold float64, steps int, t0 float64, model energy.Model, opts ...Option) error {
	_, err := collateIncremental(ctx, d, threshold, steps, t0, simulator(model, opts))
	return err
}

func collateIncremental(ctx context.Context, d *Design, threshold float64, steps int, t0 float64, sim *anneal.Simulator) (collate.Report, error) {
	if d == nil {
		return collate.Report{}, &matrix.PreconditionError{Op: "collate", Detail: "nil design"}
	}
	rep, err := collate.IncrementalFixation(ctx, d.m, sim, collate.Params{Threshold: threshold, Steps: steps, T0: t0})
	if err != nil {
		return rep, err
	}
	d.seq = rep.Sequence
	return rep, nil
}

// GetSequence returns the collated sequence.
func GetSequence(d *Design) (Sequence, error) {
	if d == nil || d.seq == nil {
		return Sequence{}, ErrNotCollated
	}
	return Sequence{rows: append([]int(nil), d.seq...)}, nil
}
