package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	strike = "\033[9m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool

	// out is the writer C renders for.
	out io.Writer = os.Stdout
)

// SetColorForcing overrides terminal detection; disable wins over force.
// The lipgloss profile used by the TUI follows the same choice.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// SetColorMode maps "always", "never" and "auto" onto SetColorForcing.
// Unknown modes behave like auto.
func SetColorMode(mode string) {
	switch mode {
	case "always":
		SetColorForcing(true, false)
	case "never":
		SetColorForcing(false, true)
	default:
		forceColor, disableColor = false, false
	}
}

// UseOutput sets the writer whose capabilities C follows.
func UseOutput(w io.Writer) { out = w }

// colorOK follows termenv for w: NO_COLOR, CLICOLOR_FORCE and whether w is
// a terminal.
func colorOK(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

func paint(w io.Writer, color, s string) string {
	if disableColor || current.Plain || color == "" {
		return s
	}
	if forceColor || colorOK(w) {
		return color + s + reset
	}
	return s
}

// C colors s for the writer set by UseOutput (stdout by default).
func C(color, s string) string { return paint(out, color, s) }

// Dim and Strike are used for index columns and completed labels.
func Dim(s string) string    { return C(dim, s) }
func Strike(s string) string { return C(strike, s) }

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, paint(w, fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, paint(w, fgRed, symCross+" "+msg)) }
