// Package metrics exports run diagnostics in the Prometheus text format.
//
// A Recorder is an anneal.Observer: attach it to the engine and every step
// and fixation is counted. The registry is per run; nothing is registered
// globally. WriteTextfile produces a file the node_exporter textfile
// collector can pick up.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rnadesign/core/anneal"
)

const namespace = "rnadesign"

// Recorder collects per-run metrics.
type Recorder struct {
	reg *prometheus.Registry

	steps       prometheus.Counter
	temperature prometheus.Gauge
	entropy     prometheus.Gauge
	free        prometheus.Gauge
	shift       prometheus.Histogram
	fixed       *prometheus.CounterVec
	runs        *prometheus.CounterVec
	duration    prometheus.Gauge
}

// New builds a Recorder on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "anneal", Name: "steps_total",
			Help: "Completed annealing steps.",
		}),
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "anneal", Name: "temperature_kelvin",
			Help: "Temperature of the last completed step.",
		}),
		entropy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "anneal", Name: "mean_entropy_bits",
			Help: "Mean column entropy over free columns after the last step.",
		}),
		free: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "anneal", Name: "free_columns",
			Help: "Columns not yet fixed.",
		}),
		shift: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "anneal", Name: "step_max_shift",
			Help:    "Largest probability change within a step.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
		}),
		fixed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "collate", Name: "columns_fixed_total",
			Help: "Columns fixed during incremental collation, by reason.",
		}, []string{"reason"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_total",
			Help: "Design runs, by collation strategy and outcome.",
		}, []string{"collate", "outcome"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "run_duration_seconds",
			Help: "Wall time of the last run.",
		}),
	}
	r.reg.MustRegister(r.steps, r.temperature, r.entropy, r.free, r.shift, r.fixed, r.runs, r.duration)
	return r
}

var _ anneal.Observer = (*Recorder)(nil)

func (r *Recorder) StepDone(s anneal.StepStat) {
	r.steps.Inc()
	r.temperature.Set(s.Temperature)
	r.entropy.Set(s.MeanEntropy)
	r.free.Set(float64(s.Free))
	r.shift.Observe(s.MaxShift)
}

func (r *Recorder) ColumnFixed(_, _ int, reason string) {
	r.fixed.WithLabelValues(reason).Inc()
	r.free.Dec()
}

// RunDone records one finished run.
func (r *Recorder) RunDone(collate string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.runs.WithLabelValues(collate, outcome).Inc()
	r.duration.Set(elapsed.Seconds())
}

// Registry exposes the gatherer for tests and custom exporters.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
