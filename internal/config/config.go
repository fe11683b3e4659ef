// Package config loads YAML run files and validates them against an
// embedded CUE schema before any value reaches the engine.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSrc []byte

// ErrInvalid marks a run file that fails to parse or validate.
var ErrInvalid = errors.New("invalid run file")

// File is a run file. Pointer fields distinguish "absent" from zero.
type File struct {
	Structure       string   `yaml:"structure,omitempty" json:"structure,omitempty"`
	Pairs           []string `yaml:"pairs,omitempty" json:"pairs,omitempty"`
	Length          *int     `yaml:"length,omitempty" json:"length,omitempty"`
	Alphabet        *string  `yaml:"alphabet,omitempty" json:"alphabet,omitempty"`
	Presets         []string `yaml:"presets,omitempty" json:"presets,omitempty"`
	Constraint      *string  `yaml:"constraint,omitempty" json:"constraint,omitempty"`
	Model           *string  `yaml:"model,omitempty" json:"model,omitempty"`
	Steps           *int     `yaml:"steps,omitempty" json:"steps,omitempty"`
	Temp            *float64 `yaml:"temp,omitempty" json:"temp,omitempty"`
	TargetRatio     *float64 `yaml:"target_ratio,omitempty" json:"target_ratio,omitempty"`
	Collate         *string  `yaml:"collate,omitempty" json:"collate,omitempty"`
	Threshold       *float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	DecimationSteps *int     `yaml:"decimation_steps,omitempty" json:"decimation_steps,omitempty"`
	Format          *string  `yaml:"format,omitempty" json:"format,omitempty"`
}

// SchemaError lists every schema violation of one file.
type SchemaError struct {
	Name    string
	Details string
}

func (e *SchemaError) Error() string { return fmt.Sprintf("%s: %s", e.Name, e.Details) }

func (e *SchemaError) Is(target error) bool { return target == ErrInvalid }

// Load reads and validates path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes YAML strictly (unknown keys are errors) and validates the
// result. name labels errors.
func Parse(data []byte, name string) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	if err := Validate(&f, name); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks f against #Design.
func Validate(f *File, name string) error {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Design"))
	v := def.Unify(ctx.Encode(f))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Name: name, Details: cueerrors.Details(err, nil)}
	}
	return nil
}
