package debugger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/spotify/go-graphwalker/step"
)

func TestConsole_BreakLogsStepAndError(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	c := NewConsole(log)
	c.Break(step.Edge("e0", "push"), errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "push")
	assert.Contains(t, out, "boom")
}

func TestNewConsole_DefaultsToStandardLogger(t *testing.T) {
	c := NewConsole(nil)
	assert.NotNil(t, c.Log)
}
