package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// NewListCommand creates the ls command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			ui.Panel(cmd.OutOrStdout(), listLines(s.store.Todos(), group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func listLines(todos []model.Todo, group bool) []string {
	t := ui.Current()
	d, p := stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos, nil)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

func stats(todos []model.Todo) (done, pending int) {
	for _, it := range todos {
		if it.Complete {
			done++
		} else {
			pending++
		}
	}
	return
}

// indexed pairs a todo with its 1-based position in the full list, so
// grouped output still shows the index `done`/`rm` expect.
type indexed struct {
	pos  int
	todo model.Todo
}

func flatLines(todos []model.Todo, pos []int) []string {
	if len(todos) == 0 {
		return []string{ui.C(ui.Current().Muted, "no todos")}
	}
	t := ui.Current()
	out := make([]string, 0, len(todos))
	for i, it := range todos {
		n := i + 1
		if pos != nil {
			n = pos[i]
		}
		box, color := t.BoxUnchecked, t.Muted
		text := it.Todo
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		if it.Complete {
			box, color = t.BoxChecked, t.Success
			text = ui.Strike(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.Dim(fmt.Sprintf("%2d.", n)), ui.C(color, box), text))
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	var pend, done []indexed
	for i, it := range todos {
		if it.Complete {
			done = append(done, indexed{i + 1, it})
		} else {
			pend = append(pend, indexed{i + 1, it})
		}
	}
	t := ui.Current()
	var lines []string
	section := func(title string, items []indexed) {
		lines = append(lines, ui.C(t.Accent, title))
		if len(items) == 0 {
			lines = append(lines, ui.C(t.Muted, "(none)"))
			return
		}
		list := make([]model.Todo, len(items))
		pos := make([]int, len(items))
		for i, it := range items {
			list[i], pos[i] = it.todo, it.pos
		}
		lines = append(lines, flatLines(list, pos)...)
	}
	section("Pending", pend)
	lines = append(lines, "")
	section("Done", done)
	return lines
}
