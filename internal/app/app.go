// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rnadesign/core/alphabet"
	"rnadesign/core/anneal"
	"rnadesign/core/energy"
	"rnadesign/core/engine"
	"rnadesign/internal/cliutil"
	"rnadesign/internal/cmdutil"
	"rnadesign/internal/designcli"
	"rnadesign/internal/metrics"
	"rnadesign/internal/output"
	"rnadesign/internal/pretty"
	"rnadesign/internal/runid"
	"rnadesign/internal/runutil"
	"rnadesign/internal/writers"
)

// Deps are the injectable collaborators of a run.
type Deps struct {
	IDs runid.Generator
}

// RunContext executes one command line and returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWith(parent, argv, stdout, stderr, Deps{IDs: runid.UUIDv7{}})
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunWith is RunContext with explicit dependencies.
func RunWith(parent context.Context, argv []string, stdout, stderr io.Writer, deps Deps) int {
	if deps.IDs == nil {
		deps.IDs = runid.UUIDv7{}
	}
	outw := bufio.NewWriter(stdout)

	root := designcli.NewRootCommand(func(cmd *cobra.Command, o *designcli.Options) error {
		return runDesign(cmd.Context(), o, outw, stderr, deps)
	})
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if ferr := outw.Flush(); err == nil && ferr != nil && !writers.IsBrokenPipe(ferr) {
		err = cmdutil.Wrap(cmdutil.ExitRun, "write output", ferr)
	}
	code := exitCode(err)
	if err != nil && code != cmdutil.ExitCanceled {
		_, _ = fmt.Fprintf(stderr, "rnadesign: %v\n", err)
	}
	return code
}

// exitCode maps run errors to process codes. Errors that never reached
// runDesign come from flag or argument parsing.
func exitCode(err error) int {
	switch {
	case err == nil:
		return cmdutil.ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return cmdutil.ExitCanceled
	}
	var ee *cmdutil.ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return cmdutil.ExitUsage
}

// classify attaches an exit code to an engine error.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, engine.ErrInvalidAlphabet), errors.Is(err, engine.ErrPrecondition):
		return cmdutil.Wrap(cmdutil.ExitUsage, op, err)
	case errors.Is(err, engine.ErrAllocation), errors.Is(err, engine.ErrNumericDegeneracy):
		return cmdutil.Wrap(cmdutil.ExitRun, op, err)
	default:
		return cmdutil.Wrap(cmdutil.ExitFailure, op, err)
	}
}

func runDesign(ctx context.Context, o *designcli.Options, stdout, stderr io.Writer, deps Deps) (err error) {
	id := deps.IDs.Generate()
	log := cmdutil.NewLogger(stderr, o.Verbose, o.Quiet).With("run", runid.Short(id))
	log.Debug("options", "settings", o.String())
	for _, w := range runutil.ValidateSchedule(o.Steps, o.Temp, o.TargetRatio, o.Collate, o.Threshold, o.DecimationSteps) {
		cmdutil.Warnf(log, o.Quiet, strings.TrimPrefix(w, "warning: "))
	}

	a, err := alphabet.New(cliutil.Normalize(o.Alphabet))
	if err != nil {
		return cmdutil.Wrap(cmdutil.ExitUsage, "alphabet", err)
	}
	pm, err := cliutil.ResolveStructure(cliutil.StructureInput{DotBracket: o.Structure, Pairs: o.Pairs, Length: o.Length})
	if err != nil {
		return cmdutil.Wrap(cmdutil.ExitUsage, "structure", err)
	}
	presets, err := cliutil.ParsePresets(o.Presets, a, pm.Len())
	if err != nil {
		return cmdutil.Wrap(cmdutil.ExitUsage, "preset", err)
	}
	if o.Constraint != "" {
		pinned, err := cliutil.ParseConstraint(o.Constraint, a, pm.Len())
		if err != nil {
			return cmdutil.Wrap(cmdutil.ExitUsage, "constraint", err)
		}
		if presets, err = cliutil.MergePresets(presets, pinned); err != nil {
			return cmdutil.Wrap(cmdutil.ExitUsage, "constraint", err)
		}
	}

	model, err := energy.New(o.Model, a)
	if err != nil {
		return classify("model", err)
	}
	d, err := engine.FromPairing(pm, a.Size(), presets)
	if err != nil {
		return classify("construct", err)
	}

	rec := metrics.New()
	start := time.Now()
	defer func() {
		rec.RunDone(o.Collate, err, time.Since(start))
		if o.MetricsFile == "" {
			return
		}
		if werr := rec.WriteTextfile(o.MetricsFile); werr != nil {
			log.Error("metrics textfile", "path", o.MetricsFile, "err", werr)
			if err == nil {
				err = cmdutil.Wrap(cmdutil.ExitRun, "metrics", werr)
			}
		}
	}()

	decim := runutil.EffectiveDecimationSteps(o.DecimationSteps, o.Steps)
	log.Debug("schedule", "t0", o.Temp, "t_final", runutil.FinalTemperature(o.Temp, o.TargetRatio), "decimation_steps", decim)
	eng := engine.New(engine.Config{
		Model: model, Steps: o.Steps, T0: o.Temp, TargetRatio: o.TargetRatio,
		Collate: engine.Strategy(o.Collate), Threshold: o.Threshold, DecimationSteps: decim,
	})
	eng.SetObserver(anneal.Observers{logObserver{log}, rec})

	log.Info("design", "length", pm.Len(), "pairs", pm.PairCount(), "model", o.Model, "collate", o.Collate, "presets", len(presets))
	if err := eng.Relax(ctx, d); err != nil {
		return classify("simulate", err)
	}
	conf := d.Confidence()
	entropy, _ := anneal.MeanEntropy(d.Matrix())
	if o.Dump != "" {
		if err := dump(d, a, o.Dump, stderr); err != nil {
			return cmdutil.Wrap(cmdutil.ExitRun, "dump", err)
		}
	}

	rep, err := eng.Collate(ctx, d)
	if err != nil {
		return classify("collate", err)
	}
	seq, err := engine.GetSequence(d)
	if err != nil {
		return classify("sequence", err)
	}
	rendered, err := seq.Render(a)
	if err != nil {
		return classify("render", err)
	}
	log.Info("done", "rounds", rep.Rounds, "threshold_fixed", rep.ThresholdFixed, "forced_fixed", rep.ForcedFixed, "elapsed", time.Since(start))

	res := output.Result{
		RunID: id, Pairing: pm, Alphabet: a, Rows: seq.Rows(), Sequence: rendered,
		Model: o.Model, Collate: o.Collate, Steps: o.Steps, T0: o.Temp, TargetRatio: o.TargetRatio,
		Threshold: o.Threshold, DecimationSteps: decim, Rounds: rep.Rounds, Presets: presets,
		Confidence: conf, MeanEntropy: entropy,
	}
	ropt := pretty.DefaultOptions
	if o.Width > 0 {
		ropt.Width = o.Width
	}
	werr := writers.Write(o.Format, stdout, res, writers.Options{Header: !o.NoHeader, Pretty: o.Pretty, Render: ropt})
	if werr = writers.IgnoreBrokenPipe(werr); werr != nil {
		return cmdutil.Wrap(cmdutil.ExitRun, "write output", werr)
	}
	return nil
}

func dump(d *engine.Design, a alphabet.Alphabet, path string, stderr io.Writer) error {
	if path == "-" {
		return d.Matrix().Dump(stderr, a.Symbols())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Matrix().Dump(f, a.Symbols()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// logObserver reports annealing progress as debug records.
type logObserver struct{ log *slog.Logger }

func (l logObserver) StepDone(s anneal.StepStat) {
	l.log.Debug("step", "step", s.Step, "of", s.Steps, "temp", s.Temperature,
		"entropy", s.MeanEntropy, "max_shift", s.MaxShift, "free", s.Free)
}

func (l logObserver) ColumnFixed(col, row int, reason string) {
	l.log.Debug("fixed", "col", col+1, "row", row, "reason", reason)
}
