package designcli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnadesign/internal/cmdutil"
	"rnadesign/internal/writers"
)

// capture returns a root command whose design run stores the options.
func capture(got **Options) *cobra.Command {
	root := NewRootCommand(func(_ *cobra.Command, o *Options) error {
		c := *o
		*got = &c
		return nil
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil)
	for _, name := range []string{"design", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestDesignFlagDefaults(t *testing.T) {
	cmd := NewRootCommand(nil)
	design, _, err := cmd.Find([]string{"design"})
	require.NoError(t, err)

	for flag, def := range map[string]string{
		"model":            "nn",
		"steps":            "200",
		"temp":             "310.15",
		"target-ratio":     "0.01",
		"collate":          "majority",
		"threshold":        "0.99",
		"decimation-steps": "-1",
		"format":           "text",
		"alphabet":         "ACGU",
	} {
		f := design.Flags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, def, f.DefValue, flag)
	}
	assert.Equal(t, "s", design.Flags().Lookup("structure").Shorthand)
}

func TestFormatFlagFollowsRegistry(t *testing.T) {
	cmd := NewRootCommand(nil)
	design, _, err := cmd.Find([]string{"design"})
	require.NoError(t, err)
	assert.Contains(t, design.Flags().Lookup("format").Usage, "fasta | json | text")
	for _, f := range writers.Formats() {
		o := Defaults()
		o.Format = f
		assert.NoError(t, o.Validate(), f)
	}
}

func TestDesignPositionalStructure(t *testing.T) {
	var got *Options
	root := capture(&got)
	root.SetArgs([]string{"design", "((..))", "--steps", "50", "-p", "1:G"})
	require.NoError(t, root.Execute())
	require.NotNil(t, got)
	assert.Equal(t, "((..))", got.Structure)
	assert.Equal(t, 50, got.Steps)
	assert.Equal(t, []string{"1:G"}, got.Presets)
}

func TestDesignStructureTwice(t *testing.T) {
	var got *Options
	root := capture(&got)
	root.SetArgs([]string{"design", "()", "-s", "()"})
	err := root.Execute()
	assert.Equal(t, cmdutil.ExitUsage, cmdutil.Code(err))
	assert.Nil(t, got)
}

func TestDesignInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"model":      {"design", "()", "--model", "zuker"},
		"steps":      {"design", "()", "--steps", "-1"},
		"ratio":      {"design", "()", "--target-ratio", "0"},
		"threshold":  {"design", "()", "--threshold", "1.5"},
		"collate":    {"design", "()", "--collate", "random"},
		"format":     {"design", "()", "-f", "xml"},
		"decimation": {"design", "()", "--decimation-steps", "-2"},
		"verbosity":  {"design", "()", "-v", "-q"},
		"bad flag":   {"design", "()", "--nope"},
		"bad int":    {"design", "()", "--steps", "many"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var got *Options
			root := capture(&got)
			root.SetArgs(args)
			err := root.Execute()
			require.Error(t, err)
			assert.Equal(t, cmdutil.ExitUsage, cmdutil.Code(err))
		})
	}
}

func TestDesignConfigFileFlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("structure: \"((....))\"\nsteps: 80\nmodel: nussinov\ncollate: incremental\n"), 0o644))

	var got *Options
	root := capture(&got)
	root.SetArgs([]string{"design", "-c", path, "--steps", "10"})
	require.NoError(t, root.Execute())
	require.NotNil(t, got)
	assert.Equal(t, "((....))", got.Structure)
	assert.Equal(t, 10, got.Steps, "explicit flag beats the file")
	assert.Equal(t, "nussinov", got.Model)
	assert.Equal(t, "incremental", got.Collate)
	assert.Equal(t, 310.15, got.Temp, "untouched default")
}

func TestDesignConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: -4\n"), 0o644))

	var got *Options
	root := capture(&got)
	root.SetArgs([]string{"design", "()", "-c", path})
	err := root.Execute()
	assert.Equal(t, cmdutil.ExitUsage, cmdutil.Code(err))
	assert.Nil(t, got)
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand(nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "rnadesign ")
}
