package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 5))
}

func TestProgressBarPartialCells(t *testing.T) {
	assert.Equal(t, "█▎░░░  25%", ProgressBar(1, 4, 5))
	assert.Equal(t, "███▎░░░░░░  33%", ProgressBar(1, 3, 10))
	assert.Equal(t, "█████ 100%", ProgressBar(9, 3, 5))
}

func TestPanelMono(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "[ ] x"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+-------+", lines[0])
	assert.Equal(t, "| ab    |", lines[1])
	assert.Equal(t, "| [ ] x |", lines[2])
	assert.Equal(t, "+-------+", lines[3])
}

func TestSetThemeFallsBack(t *testing.T) {
	SetTheme("mono")
	SetTheme("solarized")
	t.Cleanup(func() { SetTheme("classic") })
	assert.Equal(t, "classic", Current().Name)
	assert.False(t, Current().Plain)
}

func TestMonoDisablesColor(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
	assert.Equal(t, "plain", C(fgRed, "plain"))

	var buf bytes.Buffer
	Fail(&buf, "nope")
	assert.Equal(t, "✖ nope\n", buf.String())
}

func TestForcedColor(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorMode("auto") })
	assert.Equal(t, fgGreen+"hi"+reset, C(fgGreen, "hi"))
	assert.Equal(t, "hi", C("", "hi"))
}

func TestColorModeNeverWinsOverEnv(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")
	SetColorMode("never")
	t.Cleanup(func() { SetColorMode("auto") })

	var buf bytes.Buffer
	OK(&buf, "saved")
	assert.Equal(t, "✔ saved\n", buf.String())
}

func TestColorFollowsWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	SetColorMode("auto")

	var buf bytes.Buffer
	t.Setenv("CLICOLOR_FORCE", "")
	OK(&buf, "plain")
	assert.Equal(t, "✔ plain\n", buf.String(), "a buffer is not a terminal")

	buf.Reset()
	t.Setenv("CLICOLOR_FORCE", "1")
	OK(&buf, "forced")
	assert.Equal(t, fgGreen+"✔ forced"+reset+"\n", buf.String())

	UseOutput(&buf)
	t.Cleanup(func() { UseOutput(os.Stdout) })
	assert.Equal(t, fgBlue+"id"+reset, C(fgBlue, "id"))
}
