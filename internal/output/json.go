// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"math"

	"rnadesign/pkg/api"
)

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }

// ToAPIDesign converts a Result to the stable wire schema (v1).
func ToAPIDesign(r Result) api.DesignV1 {
	score, mism := r.PairStats()
	v := api.DesignV1{
		RunID:           r.RunID,
		Structure:       r.Pairing.DotBracket(),
		Length:          len(r.Rows),
		Sequence:        r.Sequence,
		Alphabet:        r.Alphabet.String(),
		Model:           r.Model,
		Collate:         r.Collate,
		Steps:           r.Steps,
		Temperature:     r.T0,
		TargetRatio:     r.TargetRatio,
		Rounds:          r.Rounds,
		PairScore:       score,
		MismatchedPairs: mism,
		MeanEntropy:     round4(r.MeanEntropy),
	}
	if r.Collate == "incremental" {
		v.Threshold = r.Threshold
		v.DecimationSteps = r.DecimationSteps
	}
	for _, p := range r.Presets {
		v.Presets = append(v.Presets, api.PresetV1{Col: p.Col + 1, Base: string(r.Alphabet.Base(p.Base))})
	}
	if len(r.Confidence) > 0 {
		v.Confidence = make([]float64, len(r.Confidence))
		for i, c := range r.Confidence {
			v.Confidence[i] = round4(c)
		}
	}
	return v
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes one v1 design object (pretty-indented).
func WriteJSON(w io.Writer, r Result) error {
	return EncodePretty(w, ToAPIDesign(r))
}
