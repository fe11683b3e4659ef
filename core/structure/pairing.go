// core/structure/pairing.go
// Target secondary structures as symmetric pairing maps.
//
// A pairing map holds, per column, 0 when the column is unpaired or the
// 1-based index of its partner. The map is immutable once built; accessors
// hand out copies.

package structure

import (
	"fmt"
	"strings"
)

// bracket pairs accepted by ParseDotBracket (pseudoknots use [] {} <>).
var openers = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}
var closers = map[byte]byte{')': '(', ']': '[', '}': '{', '>': '<'}

// PairingMap is a validated, symmetric pairing of N columns.
type PairingMap struct {
	partner []int
}

// New validates a raw pairing list (0 = unpaired, k+1 = partner k).
func New(pairing []int) (PairingMap, error) {
	n := len(pairing)
	for j, v := range pairing {
		if v < 0 || v > n {
			return PairingMap{}, fmt.Errorf("column %d: partner %d outside 0..%d", j+1, v, n)
		}
		if v == 0 {
			continue
		}
		k := v - 1
		if k == j {
			return PairingMap{}, fmt.Errorf("column %d paired with itself", j+1)
		}
		if pairing[k] != j+1 {
			return PairingMap{}, fmt.Errorf("asymmetric pairing: %d→%d but %d→%d", j+1, v, v, pairing[k])
		}
	}
	return PairingMap{partner: append([]int(nil), pairing...)}, nil
}

// Unpaired returns a map of n columns without pairs.
func Unpaired(n int) PairingMap {
	return PairingMap{partner: make([]int, n)}
}

// FromPairs builds a map of n columns from 0-based (i, j) pairs.
func FromPairs(n int, pairs [][2]int) (PairingMap, error) {
	raw := make([]int, n)
	for _, p := range pairs {
		i, j := p[0], p[1]
		if i < 0 || i >= n || j < 0 || j >= n {
			return PairingMap{}, fmt.Errorf("pair (%d,%d) outside 1..%d", i+1, j+1, n)
		}
		if i == j {
			return PairingMap{}, fmt.Errorf("column %d paired with itself", i+1)
		}
		if raw[i] != 0 || raw[j] != 0 {
			return PairingMap{}, fmt.Errorf("pair (%d,%d): column already paired", i+1, j+1)
		}
		raw[i], raw[j] = j+1, i+1
	}
	return PairingMap{partner: raw}, nil
}

// ParseDotBracket reads a dot-bracket string. '.' (or '-', ':', ',') is
// unpaired; (), [], {}, <> are independent bracket families.
func ParseDotBracket(s string) (PairingMap, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PairingMap{}, fmt.Errorf("empty structure")
	}
	raw := make([]int, len(s))
	stacks := map[byte][]int{}
	for j := 0; j < len(s); j++ {
		c := s[j]
		switch {
		case c == '.' || c == '-' || c == ':' || c == ',':
		case openers[c] != 0:
			stacks[c] = append(stacks[c], j)
		case closers[c] != 0:
			open := closers[c]
			st := stacks[open]
			if len(st) == 0 {
				return PairingMap{}, fmt.Errorf("unbalanced %q at %d", c, j+1)
			}
			i := st[len(st)-1]
			stacks[open] = st[:len(st)-1]
			raw[i], raw[j] = j+1, i+1
		default:
			return PairingMap{}, fmt.Errorf("invalid structure symbol %q at %d", c, j+1)
		}
	}
	for open, st := range stacks {
		if len(st) > 0 {
			return PairingMap{}, fmt.Errorf("unbalanced %q at %d", open, st[len(st)-1]+1)
		}
	}
	return PairingMap{partner: raw}, nil
}

// Len is N.
func (p PairingMap) Len() int { return len(p.partner) }

// Partner returns the 0-based partner of column j.
func (p PairingMap) Partner(j int) (int, bool) {
	if j < 0 || j >= len(p.partner) || p.partner[j] == 0 {
		return -1, false
	}
	return p.partner[j] - 1, true
}

// Paired reports whether columns i and j form a pair.
func (p PairingMap) Paired(i, j int) bool {
	k, ok := p.Partner(i)
	return ok && k == j
}

// Raw returns a copy of the 1-based pairing list.
func (p PairingMap) Raw() []int { return append([]int(nil), p.partner...) }

// PairCount is the number of base pairs.
func (p PairingMap) PairCount() int {
	n := 0
	for _, v := range p.partner {
		if v != 0 {
			n++
		}
	}
	return n / 2
}

// DotBracket renders the map with '(' ')' for nested pairs and '[' ']' for
// pairs crossing an enclosing '(' pair.
func (p PairingMap) DotBracket() string {
	out := make([]byte, len(p.partner))
	for j := range out {
		out[j] = '.'
	}
	var open []int // stack of '(' openers still waiting for their closer
	for j, v := range p.partner {
		if v == 0 {
			continue
		}
		k := v - 1
		if k < j {
			if len(open) > 0 && open[len(open)-1] == k {
				open = open[:len(open)-1]
			}
			continue
		}
		if len(open) > 0 && k > p.partner[open[len(open)-1]]-1 {
			out[j], out[k] = '[', ']'
			continue
		}
		open = append(open, j)
		out[j], out[k] = '(', ')'
	}
	return string(out)
}
