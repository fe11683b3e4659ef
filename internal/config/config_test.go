package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Hairpin(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "hairpin.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "((((....))))", f.Structure)
	assert.Equal(t, []string{"5:G"}, f.Presets)
	require.NotNil(t, f.Steps)
	assert.Equal(t, 150, *f.Steps)
	require.NotNil(t, f.Temp)
	assert.Equal(t, 310.15, *f.Temp)
	require.NotNil(t, f.DecimationSteps)
	assert.Equal(t, 12, *f.DecimationSteps)
	assert.Nil(t, f.Length)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse([]byte("{}\n"), "empty.yaml")
	require.NoError(t, err)
	assert.Nil(t, f.Model)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("structure: \"()\"\nstep: 10\n"), "typo.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "step")
}

func TestParse_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"steps":        "steps: -3\n",
		"model":        "model: zuker\n",
		"threshold":    "threshold: 1.5\n",
		"target_ratio": "target_ratio: 0\n",
		"structure":    "structure: \"((xx))\"\n",
		"presets":      "presets: [\"G5\"]\n",
		"format":       "format: tsv\n",
	}
	for field, doc := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := Parse([]byte(doc), field+".yaml")
			require.Error(t, err)
			var se *SchemaError
			require.True(t, errors.As(err, &se), "%v", err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, se.Details, field)
		})
	}
}
