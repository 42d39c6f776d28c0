package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/ui"
)

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "add <text...>",
		Short:   "Add a new todo (text can be multiple words)",
		Example: `  todo add "Buy milk"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: todo add <text...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			if !s.store.Submit(strings.Join(args, " ")) {
				return usagef("add: empty text")
			}
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
}
