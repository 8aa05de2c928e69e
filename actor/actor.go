// Package actor provides the built-in walkexec.Actor implementations
// cmd/graphwalker can select by name. spec.md §6 describes the driver's
// last positional argument as either a graph file (actor defaults to "a
// silent stub") or a dotted Python path to an actor class, dynamically
// imported by codeloader.py. Go has no analogous dynamic-import story for
// an arbitrary compiled type, so actor selection is a registry lookup by
// name instead (the same built-in-registry-over-dynamic-import pattern
// plan.Registry and halt.Registry already use); wiring a real system under
// test means implementing walkexec.Actor directly in Go and passing it to
// walkexec.New, not naming it from a spec string.
package actor

import (
	"github.com/sirupsen/logrus"

	"github.com/spotify/go-graphwalker/step"
	"github.com/spotify/go-graphwalker/walkexec"
)

// Silent is the default actor: it calls nothing and never fails, letting a
// driver exercise a planner and halt condition with no system under test.
// Grounded on the "actor defaults to a silent stub" clause of spec.md §6.
type Silent struct{}

// Call implements walkexec.Actor by doing nothing.
func (Silent) Call(string, step.Step) error { return nil }

// Logging is an actor that logs each dispatched step via logrus instead of
// calling anything, useful for --dry-run and for smoke-testing a model
// before wiring a real actor.
type Logging struct {
	Log logrus.FieldLogger
}

// NewLogging constructs a Logging actor. If log is nil, logrus.StandardLogger
// is used.
func NewLogging(log logrus.FieldLogger) *Logging {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Logging{Log: log}
}

// Call logs the dispatched method name and step, then returns nil.
func (a *Logging) Call(name string, s step.Step) error {
	a.Log.WithField("method", name).WithField("step", s.Name).Info("actor: dispatch")
	return nil
}

// Registry maps an actor's name (as used in the driver's last positional
// spec) to a constructor taking no arguments; actors needing real wiring
// are constructed in Go and passed directly to walkexec.New.
var Registry = map[string]func() walkexec.Actor{
	"Silent":  func() walkexec.Actor { return Silent{} },
	"Logging": func() walkexec.Actor { return NewLogging(nil) },
}
