// Package debugger provides walkexec.Debugger implementations invoked when
// an actor's Call fails. Python's debugger.py drops into pdb.set_trace();
// a compiled binary has no REPL to drop into, so Console instead logs the
// failing step and error with enough context (step name and error) to
// diagnose without an interactive session.
package debugger

import (
	"github.com/sirupsen/logrus"

	"github.com/spotify/go-graphwalker/step"
)

// Console is a walkexec.Debugger that logs a breakpoint notice via logrus
// instead of opening an interactive debugger session.
type Console struct {
	Log logrus.FieldLogger
}

// NewConsole constructs a Console. If log is nil, logrus.StandardLogger is used.
func NewConsole(log logrus.FieldLogger) *Console {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Console{Log: log}
}

// Break logs the step and error that triggered a debugger invocation.
func (c *Console) Break(s step.Step, err error) {
	c.Log.WithField("step", s.Name).WithError(err).Warn("graphwalker: debugger breakpoint")
}
