// Package metrics exposes the prometheus collectors walkexec.Executor
// increments while driving a run, per SPEC_FULL.md's METRICS section. The
// package registers against its own prometheus.Registry (rather than the
// global DefaultRegisterer) so importing it never panics a host process
// that also uses prometheus for unrelated collectors; cmd/graphwalker wires
// Registry into promhttp.Handler when --metrics-addr is passed.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry is the prometheus registry graphwalker's own collectors live on.
var Registry = prometheus.NewRegistry()

// StepsTotal counts every step dispatched by walkexec.Executor.Run, labeled
// by outcome: "ok" (no error), "recover" (actor StepEnd returned
// "RECOVER"), or "fail" (propagated, unrecovered error).
var StepsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "graphwalker_steps_total",
	Help: "Total steps dispatched to the actor, labeled by outcome.",
}, []string{"result"})

// RunDuration observes the wall-clock duration of a full Executor.Run call.
var RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "graphwalker_run_duration_seconds",
	Help:    "Duration of a complete graphwalker run.",
	Buckets: prometheus.DefBuckets,
})

// ActiveRuns tracks the number of Executor.Run calls currently in flight.
var ActiveRuns = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "graphwalker_active_runs",
	Help: "Number of graphwalker runs currently executing.",
})

func init() {
	Registry.MustRegister(StepsTotal, RunDuration, ActiveRuns)
}
