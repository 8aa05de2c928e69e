package walkexec

import (
	"github.com/sirupsen/logrus"
)

// LogTap is a logrus.Hook that forwards every log entry to a Reporter's
// Log method, so ambient logging during a walk shows up alongside the
// step-by-step report. Grounded on tapping.py: LogTap, reimplemented
// against logrus's hook interface instead of patching the stdlib
// logging.Handler chain.
type LogTap struct {
	Reporter Reporter
}

// NewLogTap constructs a LogTap forwarding to reporter.
func NewLogTap(reporter Reporter) *LogTap { return &LogTap{Reporter: reporter} }

func (t *LogTap) Levels() []logrus.Level { return logrus.AllLevels }

func (t *LogTap) Fire(entry *logrus.Entry) error {
	msg, err := entry.String()
	if err != nil {
		return err
	}
	t.Reporter.Log(entry.Level.String(), msg)
	return nil
}

// Install registers the tap on logrus's standard logger, mirroring
// tapping.py: LogTap.install's addHandler(self) on the root logger.
func (t *LogTap) Install() { logrus.AddHook(t) }
