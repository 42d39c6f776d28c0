package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/tui"
)

// NewTUICommand creates the interactive list command.
func NewTUICommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive list (a add, space toggle, d remove, q quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()
			return tui.Run(s.store)
		},
	}
}
