// internal/output/result.go
package output

import (
	"rnadesign/core/alphabet"
	"rnadesign/core/energy"
	"rnadesign/core/engine"
	"rnadesign/core/structure"
	"rnadesign/internal/pretty"
)

// Result is one finished design, with everything the writers print.
type Result struct {
	RunID    string
	Pairing  structure.PairingMap
	Alphabet alphabet.Alphabet
	Rows     []int
	Sequence string

	Model           string
	Collate         string
	Steps           int
	T0              float64
	TargetRatio     float64
	Threshold       float64
	DecimationSteps int
	Rounds          int
	Presets         []engine.Preset

	Confidence  []float64 // per-column max probability before collation
	MeanEntropy float64
}

// PairStats sums the pair-table score over target pairs and counts pairs
// that score 0 (no canonical or wobble pair).
func (r Result) PairStats() (score float64, mismatched int) {
	for j, row := range r.Rows {
		k, ok := r.Pairing.Partner(j)
		if !ok || k < j || k >= len(r.Rows) {
			continue
		}
		s := energy.PairScore(r.Alphabet.Canonical(row), r.Alphabet.Canonical(r.Rows[k]))
		score += s
		if s == 0 {
			mismatched++
		}
	}
	return score, mismatched
}

// PrettyDesign adapts r for the ASCII renderer.
func (r Result) PrettyDesign() pretty.Design {
	d := pretty.Design{
		Structure:  r.Pairing.DotBracket(),
		Sequence:   r.Sequence,
		Partner:    make([]int, len(r.Rows)),
		Canon:      make([]int, len(r.Rows)),
		Confidence: r.Confidence,
	}
	for j, row := range r.Rows {
		d.Partner[j] = -1
		if k, ok := r.Pairing.Partner(j); ok {
			d.Partner[j] = k
		}
		d.Canon[j] = r.Alphabet.Canonical(row)
	}
	return d
}
