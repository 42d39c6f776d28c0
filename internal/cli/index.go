package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/todos"
	"github.com/idilsaglam/todos/internal/ui"
)

// NewDoneCommand creates the done command.
func NewDoneCommand(opts *RootOptions) *cobra.Command {
	return newIndexCommand(opts, "done", "Toggle complete for the todo at a 1-based index", "toggled", todos.MakeToggle)
}

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	return newIndexCommand(opts, "rm", "Remove the todo at a 1-based index", "removed", todos.MakeRemove)
}

// newIndexCommand resolves the index shown by `todo ls` to an id and
// dispatches action(id).
func newIndexCommand(opts *RootOptions, name, short, okMsg string, action func(int64) todos.Action) *cobra.Command {
	return &cobra.Command{
		Use:     name + " <index>",
		Short:   short,
		Example: fmt.Sprintf("  todo %s 2", name),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("usage: todo %s <index>", name)
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return usagef("%s: not a number: %s", name, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := strconv.Atoi(args[0])

			s, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			list := s.store.Todos()
			if n < 1 || n > len(list) {
				return &usageError{
					msg:  fmt.Sprintf("index out of range: have %d, got %d", len(list), n),
					hint: "Hint: run `todo ls` to see valid indexes",
				}
			}
			s.store.Dispatch(action(list[n-1].ID))
			ui.OK(cmd.OutOrStdout(), okMsg)
			return nil
		},
	}
}
