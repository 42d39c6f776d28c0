package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.InfoLevel, ParseLevel(" INFO "))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.WarnLevel, ParseLevel(""))
	assert.Equal(t, log.WarnLevel, ParseLevel("chatty"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, DefaultOptions())

	lg.Info("hidden")
	lg.Warn("shown", "key", "_$-todos_")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "todo")
}
