package engine

import (
	"context"
	"fmt"

	"rnadesign/core/anneal"
	"rnadesign/core/energy"
)

// Strategy selects the collator.
type Strategy string

const (
	Majority    Strategy = "majority"
	Incremental Strategy = "incremental"
)

// Config holds the run parameters of a full design pipeline.
type Config struct {
	Model           energy.Model
	Steps           int     // initial annealing steps
	T0              float64 // starting temperature, Kelvin
	TargetRatio     float64 // T_final/T0; 0 = anneal.DefaultTargetRatio
	Collate         Strategy
	Threshold       float64 // incremental only
	DecimationSteps int     // incremental only: steps per re-simulation
}

// Report summarizes a pipeline run.
type Report struct {
	Strategy       Strategy
	Rounds         int
	ThresholdFixed int
	ForcedFixed    int
}

// Engine runs Simulate followed by the configured collator.
type Engine struct {
	cfg Config
	obs anneal.Observer
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// SetObserver attaches diagnostics after creation.
func (e *Engine) SetObserver(o anneal.Observer) { e.obs = o }

func (e *Engine) options() []Option {
	opts := []Option{WithTargetRatio(e.cfg.TargetRatio)}
	if e.obs != nil {
		opts = append(opts, WithObserver(e.obs))
	}
	return opts
}

// Run relaxes d and collates it.
func (e *Engine) Run(ctx context.Context, d *Design) (Report, error) {
	if err := e.Relax(ctx, d); err != nil {
		return Report{Strategy: e.cfg.Collate}, err
	}
	return e.Collate(ctx, d)
}

// Relax runs the initial annealing schedule.
func (e *Engine) Relax(ctx context.Context, d *Design) error {
	return Simulate(ctx, d, e.cfg.Steps, e.cfg.T0, e.cfg.Model, e.options()...)
}

// Collate applies the configured collator to a relaxed design.
func (e *Engine) Collate(ctx context.Context, d *Design) (Report, error) {
	rep := Report{Strategy: e.cfg.Collate}
	switch e.cfg.Collate {
	case Majority, "":
		rep.Strategy = Majority
		return rep, CollateMajority(d)
	case Incremental:
		cr, err := collateIncremental(ctx, d, e.cfg.Threshold, e.cfg.DecimationSteps, e.cfg.T0, simulator(e.cfg.Model, e.options()))
		rep.Rounds, rep.ThresholdFixed, rep.ForcedFixed = cr.Rounds, cr.ThresholdFixed, cr.ForcedFixed
		return rep, err
	default:
		return rep, fmt.Errorf("%w: unknown collate strategy %q", ErrPrecondition, e.cfg.Collate)
	}
}
