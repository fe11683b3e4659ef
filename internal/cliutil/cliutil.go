// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"rnadesign/core/alphabet"
	"rnadesign/core/engine"
	"rnadesign/core/structure"
)

// Normalize NFC-composes and trims user text so look-alike input (pasted
// from documents) reaches the parsers in one canonical form.
func Normalize(s string) string { return strings.TrimSpace(norm.NFC.String(s)) }

// splitList splits repeated flag values on commas and whitespace.
func splitList(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, f := range strings.FieldsFunc(Normalize(v), func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			if f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

// ParsePresets parses "COL:BASE" items (1-based column, BASE a symbol of a).
// A column may be preset once.
func ParsePresets(vals []string, a alphabet.Alphabet, n int) ([]engine.Preset, error) {
	items := splitList(vals)
	seen := make(map[int]string, len(items))
	out := make([]engine.Preset, 0, len(items))
	for _, it := range items {
		colStr, baseStr, ok := strings.Cut(it, ":")
		if !ok {
			return nil, fmt.Errorf("bad preset %q (want COL:BASE)", it)
		}
		col, err := strconv.Atoi(colStr)
		if err != nil {
			return nil, fmt.Errorf("bad preset column in %q: %v", it, err)
		}
		if col < 1 || col > n {
			return nil, fmt.Errorf("preset %q: column outside 1..%d", it, n)
		}
		rs := []rune(baseStr)
		if len(rs) != 1 {
			return nil, fmt.Errorf("preset %q: base must be one symbol", it)
		}
		row, ok := a.Index(rs[0])
		if !ok {
			return nil, fmt.Errorf("preset %q: %q not in alphabet %s", it, rs[0], a)
		}
		if prev, dup := seen[col]; dup {
			return nil, fmt.Errorf("column %d preset twice (%s, %s)", col, prev, it)
		}
		seen[col] = it
		out = append(out, engine.Preset{Col: col - 1, Base: row})
	}
	return out, nil
}

// ParseConstraint reads a per-column pattern such as "G....NNNC": alphabet
// symbols pin the column, '.', '-', 'N' and '*' leave it free. The pattern
// must have exactly n columns.
func ParseConstraint(s string, a alphabet.Alphabet, n int) ([]engine.Preset, error) {
	rs := []rune(Normalize(s))
	if len(rs) != n {
		return nil, fmt.Errorf("constraint has %d columns, structure has %d", len(rs), n)
	}
	var out []engine.Preset
	for j, r := range rs {
		if row, ok := a.Index(r); ok {
			out = append(out, engine.Preset{Col: j, Base: row})
			continue
		}
		switch r {
		case '.', '-', 'N', 'n', '*':
		default:
			return nil, fmt.Errorf("constraint symbol %q at %d not in alphabet %s", r, j+1, a)
		}
	}
	return out, nil
}

// MergePresets appends extra to base, rejecting columns pinned to two
// different rows.
func MergePresets(base, extra []engine.Preset) ([]engine.Preset, error) {
	rows := make(map[int]int, len(base)+len(extra))
	out := make([]engine.Preset, 0, len(base)+len(extra))
	for _, p := range append(append([]engine.Preset(nil), base...), extra...) {
		if r, ok := rows[p.Col]; ok {
			if r != p.Base {
				return nil, fmt.Errorf("column %d preset to conflicting bases", p.Col+1)
			}
			continue
		}
		rows[p.Col] = p.Base
		out = append(out, p)
	}
	return out, nil
}

// ParsePairs parses "I:J" items (1-based) into 0-based pairs.
func ParsePairs(vals []string) ([][2]int, error) {
	var out [][2]int
	for _, it := range splitList(vals) {
		is, js, ok := strings.Cut(it, ":")
		if !ok {
			return nil, fmt.Errorf("bad pair %q (want I:J)", it)
		}
		i, err1 := strconv.Atoi(is)
		j, err2 := strconv.Atoi(js)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("bad pair %q: indices must be integers", it)
		}
		out = append(out, [2]int{i - 1, j - 1})
	}
	return out, nil
}

// StructureInput gathers the ways a target can be given.
type StructureInput struct {
	DotBracket string   // positional or --structure
	Pairs      []string // --pairs
	Length     int      // --length, required with --pairs
}

// ResolveStructure builds the pairing map from exactly one source.
func ResolveStructure(in StructureInput) (structure.PairingMap, error) {
	db := Normalize(in.DotBracket)
	switch {
	case db != "" && len(in.Pairs) > 0:
		return structure.PairingMap{}, fmt.Errorf("give a dot-bracket structure or --pairs, not both")
	case db != "":
		return structure.ParseDotBracket(db)
	case len(in.Pairs) > 0 || in.Length > 0:
		if in.Length <= 0 {
			return structure.PairingMap{}, fmt.Errorf("--pairs needs --length")
		}
		pairs, err := ParsePairs(in.Pairs)
		if err != nil {
			return structure.PairingMap{}, err
		}
		return structure.FromPairs(in.Length, pairs)
	default:
		return structure.PairingMap{}, fmt.Errorf("no target structure (positional, --structure, --pairs or config)")
	}
}
