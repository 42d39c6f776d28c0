// Package logging builds the console logger shared by the CLI and the TUI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions logs warnings and above, no timestamps.
func DefaultOptions() Options {
	return Options{
		Level:  log.WarnLevel,
		Prefix: "todo",
	}
}

// New returns a text logger writing to w (stderr when nil).
func New(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// ParseLevel maps a config string to a level. Unknown or empty names fall
// back to warn.
func ParseLevel(s string) log.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
