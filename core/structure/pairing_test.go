package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// symmetric checks pairingMap[j] != 0 ⇒ pairingMap[pairingMap[j]-1] == j+1.
func symmetric(t *testing.T, p PairingMap) {
	t.Helper()
	raw := p.Raw()
	for j, v := range raw {
		if v == 0 {
			continue
		}
		assert.Equal(t, j+1, raw[v-1], "column %d", j+1)
	}
}

func TestParseDotBracket(t *testing.T) {
	p, err := ParseDotBracket("((..))")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 0, 0, 2, 1}, p.Raw())
	assert.Equal(t, 2, p.PairCount())
	assert.True(t, p.Paired(0, 5))
	assert.False(t, p.Paired(0, 4))
	symmetric(t, p)
}

func TestParseDotBracket_Pseudoknot(t *testing.T) {
	p, err := ParseDotBracket("((..[[..))..]]")
	require.NoError(t, err)
	symmetric(t, p)
	k, ok := p.Partner(4)
	require.True(t, ok)
	assert.Equal(t, 13, k)
	assert.Equal(t, "((..[[..))..]]", p.DotBracket())
}

func TestParseDotBracket_Errors(t *testing.T) {
	for _, s := range []string{"", "(()", "())", "((x))", "(]"} {
		_, err := ParseDotBracket(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]int{2, 1, 0})
	require.NoError(t, err)

	_, err = New([]int{2, 0})
	assert.ErrorContains(t, err, "asymmetric")

	_, err = New([]int{1})
	assert.ErrorContains(t, err, "itself")

	_, err = New([]int{5, 0})
	assert.ErrorContains(t, err, "outside")
}

func TestNew_CopiesInput(t *testing.T) {
	raw := []int{2, 1}
	p, err := New(raw)
	require.NoError(t, err)
	raw[0] = 0
	assert.Equal(t, []int{2, 1}, p.Raw(), "map must not alias caller slice")

	out := p.Raw()
	out[1] = 0
	assert.Equal(t, []int{2, 1}, p.Raw(), "Raw must return a copy")
}

func TestFromPairs(t *testing.T) {
	p, err := FromPairs(4, [][2]int{{0, 3}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "(())", p.DotBracket())
	symmetric(t, p)

	_, err = FromPairs(4, [][2]int{{0, 3}, {0, 2}})
	assert.ErrorContains(t, err, "already paired")

	_, err = FromPairs(2, [][2]int{{0, 2}})
	assert.Error(t, err)
}

func TestUnpaired(t *testing.T) {
	p := Unpaired(3)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "...", p.DotBracket())
	_, ok := p.Partner(1)
	assert.False(t, ok)
}
