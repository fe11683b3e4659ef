// core/energy/nn.go
// Nearest-neighbor model: the interaction term of a paired column is the
// expected stacking free energy of its pair on the adjacent pairs.
//
// For the pair (a,b), a < b, two stacks can exist:
//  1. outward: outer pair (a−1, b+1) on inner (a, b)
//  2. inward:  outer pair (a, b) on inner (a+1, b−1), when a+1 < b−1
//
// If the adjacent columns are themselves paired to each other the Turner
// stack table applies; otherwise the terminal mismatch table scores the
// closing pair against the unpaired neighbours. A pair with no neighbour
// context at all (both ends of the chain, or a two-column hairpin) falls
// back to the isolated pair table.

package energy

import (
	"fmt"

	"rnadesign/core/alphabet"
	"rnadesign/core/matrix"
)

// NearestNeighbor scores base-pair stacks. It needs the standard RNA
// alphabet.
type NearestNeighbor struct {
	base
}

// NewNearestNeighbor builds the model; non-RNA alphabets are rejected.
func NewNearestNeighbor(a alphabet.Alphabet) (*NearestNeighbor, error) {
	if !a.IsStandardRNA() {
		return nil, fmt.Errorf("%w: nearest-neighbor tables need the A,C,G,U alphabet, got %q", ErrInvalidAlphabet, a.String())
	}
	return &NearestNeighbor{base: newBase(a)}, nil
}

func (*NearestNeighbor) Name() string { return "nn" }

// CellEnergy = stack term − negative design + heterogeneity.
func (nn *NearestNeighbor) CellEnergy(row, col int, m *matrix.Matrix) float64 {
	ci := nn.canon[row]
	e := 0.0
	partner, ok := m.Partner(col)
	if ok {
		e = nn.stackTerm(m, ci, col, partner)
	}
	return e - nn.negativeDesign(m, ci, col, partner) + heterogeneity(m, row, col)
}

// dist is a canonical base distribution for one column.
type dist [alphabet.NumCanonical]float64

// column returns pos's current distribution, or one-hot(ci) for the column
// being scored.
func (nn *NearestNeighbor) column(m *matrix.Matrix, pos, col, ci int) dist {
	var d dist
	if pos == col {
		d[ci] = 1
		return d
	}
	for row, p := range m.Column(pos) {
		d[nn.canon[row]] += p
	}
	return d
}

func (nn *NearestNeighbor) stackTerm(m *matrix.Matrix, ci, col, partner int) float64 {
	a, b := col, partner
	if a > b {
		a, b = b, a
	}
	n := m.Cols()
	at := func(pos int) dist { return nn.column(m, pos, col, ci) }

	total, contexts := 0.0, 0
	if a-1 >= 0 && b+1 < n {
		if m.Pairing().Paired(a-1, b+1) {
			total += expectStack(at(a-1), at(b+1), at(a), at(b))
		} else {
			// exterior side: closing pair read from outside as (b, a)
			total += expectMismatch(at(b), at(a), at(b+1), at(a-1))
		}
		contexts++
	}
	if a+1 < b-1 {
		if m.Pairing().Paired(a+1, b-1) {
			total += expectStack(at(a), at(b), at(a+1), at(b-1))
		} else {
			total += expectMismatch(at(a), at(b), at(a+1), at(b-1))
		}
		contexts++
	}
	if contexts == 0 {
		return nn.pairExpect(m, ci, partner)
	}
	return total
}

// expectStack averages stack[type(i,j)][type(l,k)] over the four columns of
// outer pair (i,j) and inner pair (k,l).
func expectStack(di, dj, dk, dl dist) float64 {
	e := 0.0
	for xi, pi := range di {
		if pi == 0 {
			continue
		}
		for xj, pj := range dj {
			outer := pairType[xi][xj]
			if pj == 0 || outer == pNone {
				continue
			}
			for xk, pk := range dk {
				if pk == 0 {
					continue
				}
				for xl, pl := range dl {
					if pl == 0 {
						continue
					}
					e += pi * pj * pk * pl * stack[outer][pairType[xl][xk]]
				}
			}
		}
	}
	return e
}

// expectMismatch averages mismatchStack[type(p,q)][x][y].
func expectMismatch(dp, dq, dx, dy dist) float64 {
	e := 0.0
	for xp, pp := range dp {
		if pp == 0 {
			continue
		}
		for xq, pq := range dq {
			t := pairType[xp][xq]
			if pq == 0 || t == pNone {
				continue
			}
			for xx, px := range dx {
				for xy, py := range dy {
					e += pp * pq * px * py * mismatchStack[t][xx][xy]
				}
			}
		}
	}
	return e
}
