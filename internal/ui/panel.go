package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// eighths are the partial cells used at the leading edge of a bar.
var eighths = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// ProgressBar renders done/total as a bar width cells wide, resolved to an
// eighth of a cell, followed by a percentage.
func ProgressBar(done, total, width int) string {
	total = max(total, 1)
	width = max(width, 5)
	done = min(max(done, 0), total)

	units := done * width * 8 / total
	full, part := units/8, units%8

	var b strings.Builder
	b.WriteString(strings.Repeat("█", full))
	empty := width - full
	if part > 0 {
		b.WriteString(eighths[part])
		empty--
	}
	b.WriteString(strings.Repeat("░", empty))
	return fmt.Sprintf("%s %3d%%", b.String(), done*100/total)
}

// Panel draws a framed box using the current theme.
// Widths are measured in terminal cells, ignoring ANSI sequences.
func Panel(w io.Writer, lines []string) {
	t := Current()
	inner := 0
	for _, ln := range lines {
		inner = max(inner, lipgloss.Width(ln))
	}
	rule := strings.Repeat(t.H, inner+2)
	fmt.Fprintln(w, t.CornerTL+rule+t.CornerTR)
	for _, ln := range lines {
		gap := strings.Repeat(" ", inner-lipgloss.Width(ln))
		fmt.Fprintln(w, t.V+" "+ln+gap+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+rule+t.CornerBR)
}
