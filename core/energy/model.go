// Package energy provides the per-cell energy models driving SCMF relaxation.
//
// A model scores one (row, column) cell against the current generation of a
// probability matrix: the expected energy of placing base `row` at column
// `col` given every other column's distribution. Lower is more favorable;
// the simulator Boltzmann-transforms the value. Models are read-only after
// construction and safe to share between runs.
package energy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"rnadesign/core/alphabet"
	"rnadesign/core/matrix"
)

// ErrInvalidAlphabet is returned at construction when a model cannot score
// the requested alphabet.
var ErrInvalidAlphabet = errors.New("invalid alphabet")

const (
	// NegativeDesignScale weights expected pairing with non-partner columns (÷N).
	NegativeDesignScale = 1.25
	// HeterogeneityScale weights the same-base crowding penalty.
	HeterogeneityScale = 3.0
	// farthestWeight is the decay weight of the most distant column.
	farthestWeight = 1e-6
)

// Model is the closed set of energy providers (Nussinov, NearestNeighbor).
type Model interface {
	Name() string
	// Rows is the alphabet size the model was built for.
	Rows() int
	// CellEnergy reads only the current generation of m.
	CellEnergy(row, col int, m *matrix.Matrix) float64
}

// Names lists the accepted model names.
var Names = []string{"nn", "nussinov"}

// New builds a model by name.
func New(name string, a alphabet.Alphabet) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nn", "nearest-neighbor", "nearestneighbor":
		return NewNearestNeighbor(a)
	case "nussinov":
		return NewNussinov(a)
	default:
		return nil, fmt.Errorf("unknown energy model %q (want one of %s)", name, strings.Join(Names, ", "))
	}
}

// base holds the row→canonical mapping shared by both models.
type base struct {
	canon []int
}

func newBase(a alphabet.Alphabet) base {
	b := base{canon: make([]int, a.Size())}
	for i := range b.canon {
		b.canon[i] = a.Canonical(i)
	}
	return b
}

func (b base) Rows() int { return len(b.canon) }

// pairExpect is Σ_b P(b,k)·S[ci][b].
func (b base) pairExpect(m *matrix.Matrix, ci, k int) float64 {
	e := 0.0
	for row, p := range m.Column(k) {
		if p != 0 {
			e += p * pairScore[ci][b.canon[row]]
		}
	}
	return e
}

// negativeDesign is (1.25/N)·Σ over every column other than col and its
// partner of the expected pair score. It is ≤ 0; callers subtract it so
// favorable unintended pairing raises the energy.
func (b base) negativeDesign(m *matrix.Matrix, ci, col, partner int) float64 {
	n := m.Cols()
	sum := 0.0
	for k := 0; k < n; k++ {
		if k == col || k == partner {
			continue
		}
		sum += b.pairExpect(m, ci, k)
	}
	return NegativeDesignScale / float64(n) * sum
}

// heterogeneity penalizes row dominating nearby columns. Column k weighs
// exp(−λ|col−k|) with λ chosen so the farthest column weighs 1e-6; the sum
// is normalized by the weights used.
func heterogeneity(m *matrix.Matrix, row, col int) float64 {
	n := m.Cols()
	if n < 2 {
		return 0
	}
	lambda := -math.Log(farthestWeight) / float64(n-1)
	num, den := 0.0, 0.0
	for k := 0; k < n; k++ {
		if k == col {
			continue
		}
		d := col - k
		if d < 0 {
			d = -d
		}
		w := math.Exp(-lambda * float64(d))
		num += w * m.At(row, k)
		den += w
	}
	return HeterogeneityScale * num / den
}
