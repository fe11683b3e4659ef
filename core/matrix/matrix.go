// Package matrix holds the double-buffered R×N probability table of an SCMF
// run together with its pairing map and fixed-site set.
//
// The two generations are plain slices swapped by reference: a step reads
// the current generation and writes the next one, so no column update can
// observe another column's in-progress write. Fixed columns are one-hot in
// both generations and are never written by a step.
package matrix

import (
	"fmt"
	"math"

	"rnadesign/core/structure"
)

// MaxCells bounds R·N for a single matrix.
const MaxCells = 1 << 28

// Matrix is the SCMF probability matrix. Storage is column-major: the R
// probabilities of column j are contiguous.
type Matrix struct {
	rows, cols int
	cur, next  []float64
	pairs      structure.PairingMap
	fixed      []bool
	pinned     []int
}

// New allocates a matrix with a uniform 1/R distribution in both generations.
func New(pairs structure.PairingMap, rows int) (*Matrix, error) {
	cols := pairs.Len()
	if rows <= 0 {
		return nil, &PreconditionError{Op: "new", Detail: fmt.Sprintf("alphabet size %d must be > 0", rows)}
	}
	if cols > 0 && rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %d×%d cells exceed limit %d", ErrAllocation, rows, cols, MaxCells)
	}
	m := &Matrix{
		rows:   rows,
		cols:   cols,
		cur:    make([]float64, rows*cols),
		next:   make([]float64, rows*cols),
		pairs:  pairs,
		fixed:  make([]bool, cols),
		pinned: make([]int, cols),
	}
	u := 1.0 / float64(rows)
	for i := range m.cur {
		m.cur[i] = u
		m.next[i] = u
	}
	for j := range m.pinned {
		m.pinned[j] = -1
	}
	return m, nil
}

// Rows is R.
func (m *Matrix) Rows() int { return m.rows }

// Cols is N.
func (m *Matrix) Cols() int { return m.cols }

// Pairing returns the structure the matrix was built for.
func (m *Matrix) Pairing() structure.PairingMap { return m.pairs }

// Partner returns the 0-based structural partner of column j.
func (m *Matrix) Partner(j int) (int, bool) { return m.pairs.Partner(j) }

// At reads the current generation. Callers guarantee bounds.
func (m *Matrix) At(row, col int) float64 { return m.cur[col*m.rows+row] }

// Column returns the current generation of column j. The slice aliases the
// matrix and must be treated as read-only.
func (m *Matrix) Column(j int) []float64 { return m.cur[j*m.rows : (j+1)*m.rows] }

// NextColumn returns the writable next-generation slice of column j.
func (m *Matrix) NextColumn(j int) []float64 { return m.next[j*m.rows : (j+1)*m.rows] }

// Swap exchanges the current and next generations.
func (m *Matrix) Swap() { m.cur, m.next = m.next, m.cur }

// Fixed is the unchecked fast path used by scans.
func (m *Matrix) Fixed(col int) bool { return m.fixed[col] }

// IsFixed reports whether col has been pinned.
func (m *Matrix) IsFixed(col int) (bool, error) {
	if col < 0 || col >= m.cols {
		return false, &PreconditionError{Op: "is_fixed", Col: col, Base: -1}
	}
	return m.fixed[col], nil
}

// Fix pins col to base: one-hot in both generations. Fixing an already
// fixed column overwrites the previous base; the column stays fixed.
func (m *Matrix) Fix(base, col int) error {
	if col < 0 || col >= m.cols || base < 0 || base >= m.rows {
		return &PreconditionError{Op: "fix", Col: col, Base: base}
	}
	cur, next := m.Column(col), m.NextColumn(col)
	for i := range cur {
		cur[i], next[i] = 0, 0
	}
	cur[base], next[base] = 1, 1
	m.fixed[col] = true
	m.pinned[col] = base
	return nil
}

// Pinned returns the base col was fixed to, or -1.
func (m *Matrix) Pinned(col int) int { return m.pinned[col] }

// FixedCount is the number of fixed columns.
func (m *Matrix) FixedCount() int {
	n := 0
	for _, f := range m.fixed {
		if f {
			n++
		}
	}
	return n
}

// Argmax returns the row with the largest current probability in col,
// ties broken by the lowest row index.
func (m *Matrix) Argmax(col int) (int, float64) {
	c := m.Column(col)
	best, bp := 0, c[0]
	for i := 1; i < len(c); i++ {
		if c[i] > bp {
			best, bp = i, c[i]
		}
	}
	return best, bp
}

// ColumnSum sums the current generation of col.
func (m *Matrix) ColumnSum(col int) float64 {
	s := 0.0
	for _, v := range m.Column(col) {
		s += v
	}
	return s
}

// ColumnEntropy is the Shannon entropy (bits) of col's current distribution.
func (m *Matrix) ColumnEntropy(col int) float64 {
	h := 0.0
	for _, p := range m.Column(col) {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// Snapshot copies the current generation as [row][col].
func (m *Matrix) Snapshot() [][]float64 { return m.snapshot(m.cur) }

// NextSnapshot copies the next generation as [row][col].
func (m *Matrix) NextSnapshot() [][]float64 { return m.snapshot(m.next) }

func (m *Matrix) snapshot(buf []float64) [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		for j := 0; j < m.cols; j++ {
			out[i][j] = buf[j*m.rows+i]
		}
	}
	return out
}
