package energy

import (
	"fmt"

	"rnadesign/core/alphabet"
	"rnadesign/core/matrix"
)

// Nussinov scores isolated base pairs with the fixed 4×4 pair table.
// Any 4-symbol alphabet works; standard RNA rows are mapped to A,C,G,U and
// other alphabets are read positionally.
type Nussinov struct {
	base
}

// NewNussinov builds the model for a 4-symbol alphabet.
func NewNussinov(a alphabet.Alphabet) (*Nussinov, error) {
	if a.Size() != alphabet.NumCanonical {
		return nil, fmt.Errorf("%w: nussinov needs %d symbols, got %d (%s)", ErrInvalidAlphabet, alphabet.NumCanonical, a.Size(), a)
	}
	return &Nussinov{base: newBase(a)}, nil
}

func (*Nussinov) Name() string { return "nussinov" }

// CellEnergy = partner pair term − negative design + heterogeneity.
func (n *Nussinov) CellEnergy(row, col int, m *matrix.Matrix) float64 {
	ci := n.canon[row]
	e := 0.0
	partner, ok := m.Partner(col)
	if ok {
		e = n.pairExpect(m, ci, partner)
	}
	return e - n.negativeDesign(m, ci, col, partner) + heterogeneity(m, row, col)
}
