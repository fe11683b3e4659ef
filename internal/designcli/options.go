package designcli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"

	"rnadesign/core/anneal"
	"rnadesign/core/energy"
	"rnadesign/internal/cmdutil"
	"rnadesign/internal/config"
	"rnadesign/internal/output"
	"rnadesign/internal/writers"
)

// Options holds every flag of `rnadesign design`.
type Options struct {
	// Target
	Structure string
	Pairs     []string
	Length    int
	Config    string

	// Sequence constraints
	Alphabet   string
	Presets    []string
	Constraint string

	// Model & schedule
	Model       string
	Steps       int
	Temp        float64
	TargetRatio float64

	// Collation
	Collate         string
	Threshold       float64
	DecimationSteps int

	// Output
	Format      string
	Pretty      bool
	NoHeader    bool
	Width       int
	Dump        string
	MetricsFile string

	// Misc
	Verbose bool
	Quiet   bool
}

// Defaults are the values used when neither a flag nor the run file sets
// a field.
func Defaults() Options {
	return Options{
		Alphabet:        "ACGU",
		Model:           "nn",
		Steps:           200,
		Temp:            310.15,
		TargetRatio:     anneal.DefaultTargetRatio,
		Collate:         "majority",
		Threshold:       0.99,
		DecimationSteps: -1,
		Format:          output.FormatText,
	}
}

var (
	validCollate = []string{"majority", "incremental"}
	validFormats = writers.Formats()
)

// Register wires the design flags onto fs with o's current values as
// defaults.
func (o *Options) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Structure, "structure", "s", o.Structure, "target structure in dot-bracket notation")
	fs.StringSliceVar(&o.Pairs, "pairs", o.Pairs, "target pairs as I:J (1-based), repeatable or comma-separated")
	fs.IntVarP(&o.Length, "length", "n", o.Length, "sequence length (with --pairs)")
	fs.StringVarP(&o.Config, "config", "c", o.Config, "YAML run file; flags override its values")

	fs.StringVarP(&o.Alphabet, "alphabet", "a", o.Alphabet, "alphabet symbols, one per row")
	fs.StringSliceVarP(&o.Presets, "preset", "p", o.Presets, "pin a column as COL:BASE (1-based), repeatable")
	fs.StringVar(&o.Constraint, "constraint", o.Constraint, "per-column pattern; symbols pin, '.' or N leave free")

	fs.StringVarP(&o.Model, "model", "m", o.Model, "energy model: nn | nussinov")
	fs.IntVar(&o.Steps, "steps", o.Steps, "annealing steps")
	fs.Float64VarP(&o.Temp, "temp", "t", o.Temp, "starting temperature (K)")
	fs.Float64Var(&o.TargetRatio, "target-ratio", o.TargetRatio, "final/starting temperature ratio, in (0,1]")

	fs.StringVar(&o.Collate, "collate", o.Collate, "collation: majority | incremental")
	fs.Float64Var(&o.Threshold, "threshold", o.Threshold, "incremental: fix columns at or above this probability")
	fs.IntVar(&o.DecimationSteps, "decimation-steps", o.DecimationSteps, "incremental: steps after each fixation (-1=auto)")

	fs.StringVarP(&o.Format, "format", "f", o.Format, "output: "+strings.Join(validFormats, " | "))
	fs.BoolVar(&o.Pretty, "pretty", o.Pretty, "text: add the ASCII structure block")
	fs.BoolVar(&o.NoHeader, "no-header", o.NoHeader, "text: suppress the header line")
	fs.IntVar(&o.Width, "width", o.Width, "pretty: columns per block (0=60)")
	fs.StringVar(&o.Dump, "dump", o.Dump, "write the relaxed probability matrix to FILE ('-' = stderr)")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "write Prometheus textfile metrics to FILE")

	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "debug logging (one record per step)")
	fs.BoolVarP(&o.Quiet, "quiet", "q", o.Quiet, "suppress warnings")
}

// ApplyFile copies run-file values into o for every flag the user did not
// set explicitly.
func (o *Options) ApplyFile(f *config.File, changed func(flag string) bool) {
	setS := func(flag string, dst *string, v *string) {
		if v != nil && !changed(flag) {
			*dst = *v
		}
	}
	setI := func(flag string, dst *int, v *int) {
		if v != nil && !changed(flag) {
			*dst = *v
		}
	}
	setF := func(flag string, dst *float64, v *float64) {
		if v != nil && !changed(flag) {
			*dst = *v
		}
	}
	if f.Structure != "" && !changed("structure") && len(o.Pairs) == 0 {
		o.Structure = f.Structure
	}
	if len(f.Pairs) > 0 && !changed("pairs") && o.Structure == "" {
		o.Pairs = f.Pairs
	}
	if len(f.Presets) > 0 && !changed("preset") {
		o.Presets = f.Presets
	}
	setI("length", &o.Length, f.Length)
	setS("alphabet", &o.Alphabet, f.Alphabet)
	setS("constraint", &o.Constraint, f.Constraint)
	setS("model", &o.Model, f.Model)
	setI("steps", &o.Steps, f.Steps)
	setF("temp", &o.Temp, f.Temp)
	setF("target-ratio", &o.TargetRatio, f.TargetRatio)
	setS("collate", &o.Collate, f.Collate)
	setF("threshold", &o.Threshold, f.Threshold)
	setI("decimation-steps", &o.DecimationSteps, f.DecimationSteps)
	setS("format", &o.Format, f.Format)
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Validate checks values the core would reject, so they fail as usage
// errors before any work.
func (o Options) Validate() error {
	switch {
	case !oneOf(o.Model, energy.Names):
		return cmdutil.Usagef("invalid --model %q: must be one of %v", o.Model, energy.Names)
	case o.Steps < 0:
		return cmdutil.Usagef("--steps must be ≥ 0")
	case !finite(o.Temp) || o.Temp < 0:
		return cmdutil.Usagef("--temp must be a finite value ≥ 0")
	case !(o.TargetRatio > 0 && o.TargetRatio <= 1):
		return cmdutil.Usagef("--target-ratio must be in (0,1]")
	case !oneOf(o.Collate, validCollate):
		return cmdutil.Usagef("invalid --collate %q: must be one of %v", o.Collate, validCollate)
	case !(o.Threshold > 0 && o.Threshold <= 1):
		return cmdutil.Usagef("--threshold must be in (0,1]")
	case o.DecimationSteps < -1:
		return cmdutil.Usagef("--decimation-steps must be ≥ 0 or -1 (auto)")
	case !oneOf(o.Format, validFormats):
		return cmdutil.Usagef("invalid --format %q: must be one of %v", o.Format, validFormats)
	case o.Width < 0:
		return cmdutil.Usagef("--width must be ≥ 0")
	case o.Verbose && o.Quiet:
		return cmdutil.Usagef("--verbose and --quiet are mutually exclusive")
	}
	return nil
}

// String summarizes the run settings for the debug log.
func (o Options) String() string {
	return fmt.Sprintf("model=%s steps=%d temp=%g target_ratio=%g collate=%s threshold=%g decimation_steps=%d",
		o.Model, o.Steps, o.Temp, o.TargetRatio, o.Collate, o.Threshold, o.DecimationSteps)
}
