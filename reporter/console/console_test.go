package console

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/spotify/go-graphwalker/step"
)

func TestReporter_LogsLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	r := New(log)
	r.Initiate("s1")
	r.StepBegin(step.Edge("e0", "go"))
	r.StepEnd(step.Edge("e0", "go"), nil)
	r.Finalize(nil)

	out := buf.String()
	require.Contains(t, out, "run initiated")
	require.Contains(t, out, "step begin")
	require.Contains(t, out, "step end")
	require.Contains(t, out, "run passed")
}

func TestReporter_FinalizeLogsError(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	r := New(log)
	r.Initiate("s2")
	r.Finalize(errDummy{})

	require.Contains(t, buf.String(), "run failed")
}

type errDummy struct{}

func (errDummy) Error() string { return "boom" }
