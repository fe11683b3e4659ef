// Package anneal runs the SCMF mean-field relaxation with geometric cooling.
//
// Each step, for every free column j and row i:
//
//	E[i][j] = model.CellEnergy(i, j)              (current generation only)
//	p'[i][j] ∝ exp(−(E[i][j] − min_i E[i][j]) / (R·T))
//	next[i][j] = 0.2·p'[i][j] + 0.8·cur[i][j]
//
// then the generations swap and T is multiplied by the cooling ratio.
// Subtracting the column minimum cancels in the renormalization and keeps
// the exponent finite at low T. T == 0 is the zero-temperature limit:
// the rows at the column minimum share the mass.
package anneal

import (
	"context"
	"errors"
	"fmt"
	"math"

	"rnadesign/core/energy"
	"rnadesign/core/matrix"
)

// Damping is the weight of the renormalized Boltzmann distribution in the
// update; 1−Damping comes from the pre-step generation.
const Damping = 0.2

// ErrNumericDegeneracy marks a non-finite energy or an empty Boltzmann sum.
var ErrNumericDegeneracy = errors.New("numeric degeneracy")

// DegeneracyError locates the cell that broke the step.
type DegeneracyError struct {
	Step   int
	Col    int
	Row    int
	Energy float64
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("step %d: non-finite energy %v at row %d col %d", e.Step, e.Energy, e.Row, e.Col+1)
}

func (e *DegeneracyError) Is(target error) bool { return target == ErrNumericDegeneracy }

// Simulator drives Init → {Step}* → Done over one matrix.
type Simulator struct {
	Model       energy.Model
	TargetRatio float64  // T_final/T0; 0 means DefaultTargetRatio
	Observer    Observer // nil means NopObserver
}

func (s *Simulator) observer() Observer {
	if s.Observer == nil {
		return NopObserver{}
	}
	return s.Observer
}

func (s *Simulator) targetRatio() float64 {
	if s.TargetRatio == 0 {
		return DefaultTargetRatio
	}
	return s.TargetRatio
}

func (s *Simulator) validate(m *matrix.Matrix, steps int, t0 float64) error {
	switch {
	case m == nil:
		return &matrix.PreconditionError{Op: "simulate", Detail: "nil matrix"}
	case s.Model == nil:
		return &matrix.PreconditionError{Op: "simulate", Detail: "nil energy model"}
	case s.Model.Rows() != m.Rows():
		return &matrix.PreconditionError{Op: "simulate", Detail: fmt.Sprintf("model %s expects %d rows, matrix has %d", s.Model.Name(), s.Model.Rows(), m.Rows())}
	case steps < 0:
		return &matrix.PreconditionError{Op: "simulate", Detail: fmt.Sprintf("steps %d must be ≥ 0", steps)}
	case t0 < 0 || math.IsNaN(t0) || math.IsInf(t0, 0):
		return &matrix.PreconditionError{Op: "simulate", Detail: fmt.Sprintf("temperature %v must be finite and ≥ 0", t0)}
	}
	if r := s.targetRatio(); !(r > 0 && r <= 1) {
		return &matrix.PreconditionError{Op: "simulate", Detail: fmt.Sprintf("target ratio %v must be in (0,1]", r)}
	}
	return nil
}

// Run performs exactly steps steps starting at temperature t0. steps == 0
// leaves m untouched. The context is checked between steps; on
// cancellation m holds the last completed step.
func (s *Simulator) Run(ctx context.Context, m *matrix.Matrix, steps int, t0 float64) error {
	if err := s.validate(m, steps, t0); err != nil {
		return err
	}
	if steps == 0 {
		return nil
	}
	sched := NewSchedule(t0, steps, s.targetRatio())
	obs := s.observer()

	r := m.Rows()
	energies := make([]float64, r)
	weights := make([]float64, r)

	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		stat := StepStat{Step: step, Steps: steps, Temperature: sched.T}
		for j := 0; j < m.Cols(); j++ {
			if m.Fixed(j) {
				continue
			}
			emin := math.Inf(1)
			for i := 0; i < r; i++ {
				e := s.Model.CellEnergy(i, j, m)
				if math.IsNaN(e) || math.IsInf(e, 0) {
					return &DegeneracyError{Step: step, Col: j, Row: i, Energy: e}
				}
				energies[i] = e
				if e < emin {
					emin = e
				}
			}
			sum := boltzmann(energies, emin, sched.T, weights)
			if !(sum > 0) || math.IsInf(sum, 0) {
				return &DegeneracyError{Step: step, Col: j, Row: -1, Energy: sum}
			}
			prev, next := m.Column(j), m.NextColumn(j)
			for i := 0; i < r; i++ {
				p := Damping*(weights[i]/sum) + (1-Damping)*prev[i]
				if d := math.Abs(p - prev[i]); d > stat.MaxShift {
					stat.MaxShift = d
				}
				next[i] = p
			}
		}
		m.Swap()
		stat.MeanEntropy, stat.Free = MeanEntropy(m)
		obs.StepDone(stat)
		sched.Cool()
	}
	return nil
}

// boltzmann fills w with unnormalized weights and returns their sum.
func boltzmann(energies []float64, emin, t float64, w []float64) float64 {
	sum := 0.0
	if t == 0 {
		for i, e := range energies {
			w[i] = 0
			if e == emin {
				w[i] = 1
			}
			sum += w[i]
		}
		return sum
	}
	rt := energy.RgasKcal * t
	for i, e := range energies {
		w[i] = math.Exp(-(e - emin) / rt)
		sum += w[i]
	}
	return sum
}

// MeanEntropy averages column entropy over free columns and returns the
// number of free columns.
func MeanEntropy(m *matrix.Matrix) (float64, int) {
	h, free := 0.0, 0
	for j := 0; j < m.Cols(); j++ {
		if m.Fixed(j) {
			continue
		}
		h += m.ColumnEntropy(j)
		free++
	}
	if free == 0 {
		return 0, 0
	}
	return h / float64(free), free
}
