// Package console implements walkexec.Reporter by logging lifecycle events
// through logrus, the minimal reporting behavior needed to observe a run.
// Grounded on reporting.py's ReportingPlugin base and its simplest
// concrete subclass; the richer html/image/console plugin chain
// reporting.py offers is explicitly out of scope (SPEC_FULL.md REPORTER).
package console

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spotify/go-graphwalker/step"
)

// Reporter logs every walkexec lifecycle event via a logrus.FieldLogger.
type Reporter struct {
	log   logrus.FieldLogger
	start time.Time
}

// New constructs a Reporter. If log is nil, logrus.StandardLogger() is used.
func New(log logrus.FieldLogger) *Reporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reporter{log: log}
}

// Initiate logs the start of a named run.
func (r *Reporter) Initiate(name string) {
	r.start = time.Now()
	r.log.WithField("test", name).Info("graphwalker: run initiated")
}

// Finalize logs the run's outcome and duration.
func (r *Reporter) Finalize(err error) {
	entry := r.log.WithField("duration", time.Since(r.start).String())
	if err != nil {
		entry.WithError(err).Error("graphwalker: run failed")
		return
	}
	entry.Info("graphwalker: run passed")
}

// StepBegin logs that a step is about to be dispatched.
func (r *Reporter) StepBegin(s step.Step) {
	r.log.WithField("step", s.Name).WithField("edge", s.Edge).Debug("graphwalker: step begin")
}

// StepEnd logs a step's outcome.
func (r *Reporter) StepEnd(s step.Step, err error) {
	entry := r.log.WithField("step", s.Name)
	if err != nil {
		entry.WithError(err).Warn("graphwalker: step failed")
		return
	}
	entry.Debug("graphwalker: step end")
}

// Log forwards an ambient log record (see walkexec.LogTap) tagged by its
// origin severity.
func (r *Reporter) Log(origin, message string) {
	r.log.WithField("origin", origin).Info(message)
}
