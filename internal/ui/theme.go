package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Pending string
	BoxUnchecked, BoxChecked               string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymDone, SymPending                    string
	// Plain themes never emit escape sequences.
	Plain bool
}

var (
	square  = [4]string{"┌", "┐", "└", "┘"}
	rounded = [4]string{"╭", "╮", "╰", "╯"}
	ascii   = [4]string{"+", "+", "+", "+"}
)

func withCorners(t Theme, c [4]string) Theme {
	t.CornerTL, t.CornerTR, t.CornerBL, t.CornerBR = c[0], c[1], c[2], c[3]
	return t
}

var themes = map[string]Theme{
	"classic": withCorners(Theme{
		Name: "classic", Title: bold, Muted: fgGray, Accent: fgBlue, Success: fgGreen, Pending: fgYellow,
		BoxUnchecked: "☐", BoxChecked: "☑", H: "─", V: "│", SymDone: "✔", SymPending: "•",
	}, square),
	"neon": withCorners(Theme{
		Name: "neon", Title: "\033[95m", Muted: fgGray, Accent: "\033[96m", Success: fgGreen, Pending: "\033[93m",
		BoxUnchecked: "◻", BoxChecked: "◼", H: "─", V: "│", SymDone: "✔", SymPending: "•",
	}, rounded),
	"mono": withCorners(Theme{
		Name: "mono", Plain: true,
		BoxUnchecked: "[ ]", BoxChecked: "[x]", H: "-", V: "|", SymDone: "x", SymPending: "-",
	}, ascii),
}

var current = themes["classic"]

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		t = themes["classic"]
	}
	current = t
}

// Expose what renderers need
func Current() Theme { return current }
