// Package pretty draws a designed sequence against its target structure as
// a comment-prefixed ASCII block:
//
//	# pos        1         11
//	# structure  ((((....))))
//	# sequence   GGUCAAAAAGCC
//	# pairs      ||¦x....x¦||
//	# confidence 995299410699
//
// Pair glyphs: Watson-Crick (score ≤ −2), wobble (−1), no pair (0).
// Confidence is the column's largest probability in tenths, capped at 9.
package pretty

import (
	"fmt"
	"strings"

	"rnadesign/core/energy"
)

// Design is what one block shows. Partner and Canon must have the same
// length as Sequence (in runes).
type Design struct {
	Structure  string    // dot-bracket
	Sequence   string    // rendered symbols
	Partner    []int     // 0-based partner, −1 when unpaired
	Canon      []int     // canonical base index (A,C,G,U order) per column
	Confidence []float64 // optional
}

// Options control the ASCII rendering.
type Options struct {
	// Columns per block. If <=0, use default (60).
	Width int

	ShowRuler      bool
	ShowPairs      bool
	ShowConfidence bool // ignored when Design.Confidence is empty

	// Glyphs
	ExactGlyph    string // default "|"
	PartialGlyph  string // default "¦"
	MismatchGlyph string // default "x"
	DotGlyph      string // default "."
}

// DefaultOptions is the CLI look.
var DefaultOptions = Options{
	Width:          60,
	ShowRuler:      true,
	ShowPairs:      true,
	ShowConfidence: true,
	ExactGlyph:     "|",
	PartialGlyph:   "¦",
	MismatchGlyph:  "x",
	DotGlyph:       ".",
}

const (
	linePrefix = "# "
	labelWidth = 10
)

func orDefault(v, d string) string {
	if v != "" {
		return v
	}
	return d
}

// pairGlyphs renders one glyph per column.
func pairGlyphs(d Design, opt Options) []string {
	out := make([]string, len(d.Partner))
	for j, k := range d.Partner {
		switch {
		case k < 0 || j >= len(d.Canon) || k >= len(d.Canon):
			out[j] = orDefault(opt.DotGlyph, DefaultOptions.DotGlyph)
		case energy.PairScore(d.Canon[j], d.Canon[k]) <= -2:
			out[j] = orDefault(opt.ExactGlyph, DefaultOptions.ExactGlyph)
		case energy.PairScore(d.Canon[j], d.Canon[k]) < 0:
			out[j] = orDefault(opt.PartialGlyph, DefaultOptions.PartialGlyph)
		default:
			out[j] = orDefault(opt.MismatchGlyph, DefaultOptions.MismatchGlyph)
		}
	}
	return out
}

func confidenceDigit(p float64) string {
	d := int(p * 10)
	switch {
	case d < 0:
		d = 0
	case d > 9:
		d = 9
	}
	return fmt.Sprintf("%d", d)
}

// ruler labels every tenth column (1, 11, 21, ...) of [from, to).
func ruler(from, to int) string {
	b := []byte(strings.Repeat(" ", to-from))
	for col := from; col < to; col++ {
		if col%10 != 0 {
			continue
		}
		label := fmt.Sprintf("%d", col+1)
		copy(b[col-from:], label)
	}
	return strings.TrimRight(string(b), " ")
}

func line(sb *strings.Builder, label, body string) {
	fmt.Fprintf(sb, "%s%-*s %s\n", linePrefix, labelWidth, label, body)
}

// RenderWithOptions prints the block, wrapped at opt.Width columns.
func RenderWithOptions(d Design, opt Options) string {
	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	seq := []rune(d.Sequence)
	db := []rune(d.Structure)
	n := len(seq)
	glyphs := pairGlyphs(d, opt)

	var sb strings.Builder
	for from := 0; from < n; from += width {
		to := from + width
		if to > n {
			to = n
		}
		if from > 0 {
			sb.WriteString("#\n")
		}
		if opt.ShowRuler {
			line(&sb, "pos", ruler(from, to))
		}
		if to <= len(db) {
			line(&sb, "structure", string(db[from:to]))
		}
		line(&sb, "sequence", string(seq[from:to]))
		if opt.ShowPairs && len(glyphs) == n {
			line(&sb, "pairs", strings.Join(glyphs[from:to], ""))
		}
		if opt.ShowConfidence && len(d.Confidence) == n {
			var c strings.Builder
			for _, p := range d.Confidence[from:to] {
				c.WriteString(confidenceDigit(p))
			}
			line(&sb, "confidence", c.String())
		}
	}
	return sb.String()
}

// Render uses DefaultOptions.
func Render(d Design) string { return RenderWithOptions(d, DefaultOptions) }
