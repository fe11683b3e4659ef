package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnadesign/core/alphabet"
	"rnadesign/core/engine"
	"rnadesign/core/structure"
	"rnadesign/internal/pretty"
)

func fixture(t *testing.T) Result {
	t.Helper()
	p, err := structure.ParseDotBracket("((..))")
	require.NoError(t, err)
	return Result{
		RunID:           "0190a6b2-7c1d-7e3f-8a9b-0c1d2e3f4a5b",
		Pairing:         p,
		Alphabet:        alphabet.RNA(),
		Rows:            []int{alphabet.G, alphabet.G, alphabet.A, alphabet.A, alphabet.C, alphabet.C},
		Sequence:        "GGAACC",
		Model:           "nn",
		Collate:         "incremental",
		Steps:           100,
		T0:              310.15,
		TargetRatio:     0.01,
		Threshold:       0.99,
		DecimationSteps: 10,
		Rounds:          3,
		Presets:         []engine.Preset{{Col: 0, Base: alphabet.G}},
		Confidence:      []float64{1, 0.98761, 0.5, 0.5, 0.9, 1},
		MeanEntropy:     0.123456,
	}
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
}

func TestConstants_Stable(t *testing.T) {
	assert.Equal(t, "text", FormatText)
	assert.Equal(t, "json", FormatJSON)
	assert.Equal(t, "fasta", FormatFASTA)
	assert.Equal(t, 9, len(strings.Split(TSVHeader, "\t")))
}

func TestPairStats(t *testing.T) {
	r := fixture(t)
	score, mism := r.PairStats()
	assert.Equal(t, -6.0, score)
	assert.Equal(t, 0, mism)

	r.Rows = []int{alphabet.G, alphabet.U, alphabet.A, alphabet.A, alphabet.G, alphabet.A}
	score, mism = r.PairStats()
	assert.Equal(t, -1.0, score, "G·A scores 0, U·G wobble −1")
	assert.Equal(t, 1, mism)
}

func TestWriteJSON_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, fixture(t)))
	golden(t).Assert(t, "design_v1", buf.Bytes())
}

func TestToAPIDesign_MajorityOmitsDecimation(t *testing.T) {
	r := fixture(t)
	r.Collate = "majority"
	v := ToAPIDesign(r)
	assert.Zero(t, v.Threshold)
	assert.Zero(t, v.DecimationSteps)
}

func TestWriteText_Golden(t *testing.T) {
	var buf bytes.Buffer
	render := func(r Result) string { return pretty.Render(r.PrettyDesign()) }
	require.NoError(t, WriteTextWithRenderer(&buf, fixture(t), true, true, render))
	golden(t).Assert(t, "text_pretty", buf.Bytes())
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, fixture(t)))
	assert.Equal(t,
		">design_0190a6b2 len=6 model=nn collate=incremental pair_score=-6.0 mismatched=0 structure=((..))\nGGAACC\n",
		buf.String())
}
