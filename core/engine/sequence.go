package engine

import "rnadesign/core/alphabet"

// Sequence is an immutable collated design: one alphabet row per column.
type Sequence struct {
	rows []int
}

// Len is N.
func (s Sequence) Len() int { return len(s.rows) }

// Rows returns a copy of the row indices.
func (s Sequence) Rows() []int { return append([]int(nil), s.rows...) }

// Render maps rows to symbols of a.
func (s Sequence) Render(a alphabet.Alphabet) (string, error) { return a.Render(s.rows) }
