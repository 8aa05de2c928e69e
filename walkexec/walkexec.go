// Package walkexec drives a plan's steps against an Actor, the component
// that actually exercises the system under test, reporting lifecycle
// events to a Reporter along the way (§4.4). Grounded on executor.py:
// Executor, with its getattr(actor, 'hook', default) duck typing replaced
// by Go type assertions against small optional interfaces.
package walkexec

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spotify/go-graphwalker/metrics"
	"github.com/spotify/go-graphwalker/step"
)

// Plan is the subset of plan.Plan the executor drives. Declared locally
// (rather than importing package plan) so walkexec has no compile-time
// dependency on the planner implementations — any Plan-shaped type
// satisfies it structurally.
type Plan interface {
	Next(ctx context.Context) bool
	Step() step.Step
	Err() error
}

// Reporter receives lifecycle notifications as the executor drives a
// plan. Grounded on reporting.py: ReportingPlugin.
type Reporter interface {
	Initiate(name string)
	Finalize(err error)
	StepBegin(s step.Step)
	StepEnd(s step.Step, err error)
	Log(origin, message string)
}

// Actor executes the method a step's label names (§6's dispatch grammar:
// the label up to the first newline, then up to the first '[' or '/').
// Grounded on executor.py: Executor.call.
type Actor interface {
	Call(name string, s step.Step) error
}

// Setuper is an optional Actor hook run once before the first step.
type Setuper interface{ Setup(ctx context.Context) error }

// Teardowner is an optional Actor hook run once after the last step.
type Teardowner interface{ Teardown(ctx context.Context) error }

// StepBeginner is an optional Actor hook run before each step's Call.
type StepBeginner interface{ StepBegin(s step.Step) }

// StepEnder is an optional Actor hook run after each step's Call. A
// return value of "RECOVER" clears that step's error, matching
// executor.py's `if r == 'RECOVER': e = None`.
type StepEnder interface {
	StepEnd(s step.Step, err error) string
}

// Debugger is invoked when a step's Call fails, collapsing executor.py's
// debugger.set_trace()-or-bare-callable duck typing into one method.
type Debugger interface{ Break(s step.Step, err error) }

// Executor drives a Plan's steps against an Actor (§4.4).
type Executor struct {
	Actor    Actor
	Reporter Reporter
	Debugger Debugger
}

// New constructs an Executor. debugger may be nil.
func New(actor Actor, reporter Reporter, debugger Debugger) *Executor {
	return &Executor{Actor: actor, Reporter: reporter, Debugger: debugger}
}

// DispatchName extracts the method name a step's label dispatches to:
// the text before the first '\n', then before the first '[' or '/'.
// Grounded on executor.py: Executor.call.
func DispatchName(label string) string {
	if i := strings.IndexByte(label, '\n'); i >= 0 {
		label = label[:i]
	}
	if i := strings.IndexByte(label, '['); i >= 0 {
		label = label[:i]
	}
	if i := strings.IndexByte(label, '/'); i >= 0 {
		label = label[:i]
	}
	return label
}

// Run drives plan to completion, dispatching every step with a non-empty
// label to e.Actor.Call and reporting lifecycle events to e.Reporter. It
// returns the first unrecovered step error, or any error the plan itself
// reports once Run falls out of the step loop.
func (e *Executor) Run(ctx context.Context, name string, plan Plan) error {
	started := time.Now()
	metrics.ActiveRuns.Inc()
	defer metrics.ActiveRuns.Dec()
	defer func() { metrics.RunDuration.Observe(time.Since(started).Seconds()) }()

	e.Reporter.Initiate(name)

	if s, ok := e.Actor.(Setuper); ok {
		if err := s.Setup(ctx); err != nil {
			e.Reporter.Finalize(err)
			return err
		}
	}

	var failure error

	for plan.Next(ctx) {
		s := plan.Step()
		if s.Name == "" {
			continue
		}

		e.Reporter.StepBegin(s)
		if hook, ok := e.Actor.(StepBeginner); ok {
			hook.StepBegin(s)
		}

		callErr := e.Actor.Call(DispatchName(s.Name), s)
		if callErr != nil {
			logrus.WithError(callErr).WithField("step", s.Name).Error("graphwalker: failure executing step")
			if e.Debugger != nil {
				e.Debugger.Break(s, callErr)
			}
		}

		var result string
		if hook, ok := e.Actor.(StepEnder); ok {
			result = hook.StepEnd(s, callErr)
		}
		e.Reporter.StepEnd(s, callErr)

		switch {
		case result == "RECOVER":
			metrics.StepsTotal.WithLabelValues("recover").Inc()
			callErr = nil
		case callErr != nil:
			metrics.StepsTotal.WithLabelValues("fail").Inc()
			failure = callErr
		default:
			metrics.StepsTotal.WithLabelValues("ok").Inc()
		}
		if failure != nil {
			break
		}
	}

	if failure == nil {
		failure = plan.Err()
	}

	if t, ok := e.Actor.(Teardowner); ok {
		_ = t.Teardown(ctx)
	}

	e.Reporter.Finalize(failure)
	return failure
}
