// core/alphabet/alphabet.go
package alphabet

import (
	"fmt"
	"strings"
	"unicode"
)

// Canonical base indices used by the energy tables.
const (
	A = iota
	C
	G
	U
	NumCanonical
)

// canonical maps the standard RNA symbols to their table index.
var canonical = map[rune]int{'A': A, 'C': C, 'G': G, 'U': U}

// Alphabet is an ordered set of single-rune base symbols. Row i of a
// probability matrix stands for Base(i).
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// RNA returns the standard A,C,G,U alphabet.
func RNA() Alphabet {
	a, _ := New("ACGU")
	return a
}

// Normalize removes spaces/quotes/commas and uppercases symbols.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' || r == ',' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// New builds an alphabet from a symbol string such as "ACGU".
func New(raw string) (Alphabet, error) {
	s := Normalize(raw)
	if s == "" {
		return Alphabet{}, fmt.Errorf("empty alphabet")
	}
	a := Alphabet{index: make(map[rune]int, len(s))}
	for i, r := range []rune(s) {
		if !unicode.IsLetter(r) {
			return Alphabet{}, fmt.Errorf("invalid symbol %q at %d; symbols must be letters", r, i+1)
		}
		if _, dup := a.index[r]; dup {
			return Alphabet{}, fmt.Errorf("duplicate symbol %q at %d", r, i+1)
		}
		a.index[r] = i
		a.symbols = append(a.symbols, r)
	}
	return a, nil
}

// Size is R, the number of matrix rows.
func (a Alphabet) Size() int { return len(a.symbols) }

// Base returns the symbol for row i, or '?' when i is out of range.
func (a Alphabet) Base(i int) rune {
	if i < 0 || i >= len(a.symbols) {
		return '?'
	}
	return a.symbols[i]
}

// Index returns the row for symbol r (case-insensitive).
func (a Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[unicode.ToUpper(r)]
	return i, ok
}

// IsStandardRNA reports whether the alphabet is exactly {A,C,G,U} in any
// order. Nearest-neighbor tables are only defined for this capability.
func (a Alphabet) IsStandardRNA() bool {
	if len(a.symbols) != NumCanonical {
		return false
	}
	for _, r := range a.symbols {
		if _, ok := canonical[r]; !ok {
			return false
		}
	}
	return true
}

// Canonical maps row i to its canonical table index. Alphabets that are not
// standard RNA map rows onto table indices by position.
func (a Alphabet) Canonical(i int) int {
	if a.IsStandardRNA() {
		return canonical[a.symbols[i]]
	}
	return i
}

// Render turns row indices into a symbol string.
func (a Alphabet) Render(rows []int) (string, error) {
	var b strings.Builder
	b.Grow(len(rows))
	for j, r := range rows {
		if r < 0 || r >= len(a.symbols) {
			return "", fmt.Errorf("row %d at column %d outside alphabet of size %d", r, j+1, len(a.symbols))
		}
		b.WriteRune(a.symbols[r])
	}
	return b.String(), nil
}

// Symbols returns a copy of the symbol list.
func (a Alphabet) Symbols() []rune { return append([]rune(nil), a.symbols...) }

func (a Alphabet) String() string { return string(a.symbols) }
