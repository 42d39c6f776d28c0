// Package cli wires the todo command line: config, logging, storage and the
// store, behind cobra subcommands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/logging"
	"github.com/idilsaglam/todos/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Storage    string
	Data       string
	Key        string
	Theme      string
	Color      string
	Verbose    bool

	cfg *config.Config
	log *log.Logger
}

// usageError marks failures that exit with ExitUsage.
type usageError struct {
	msg  string
	hint string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "todo - a tiny todo list",
		Long:          "Add, toggle and remove todos. The list is kept in a local key/value slot (JSON file or SQLite).",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return &usageError{}
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "config file (default: discovered todos.toml)")
	pf.StringVar(&opts.Storage, "storage", "", "storage backend (json|sqlite)")
	pf.StringVar(&opts.Data, "data", "", "data file (default: todos.json or todos.sqlite in the working directory)")
	pf.StringVar(&opts.Key, "key", "", "storage key the list lives under")
	pf.StringVar(&opts.Theme, "theme", "", "output theme (classic|neon|mono)")
	pf.StringVar(&opts.Color, "color", "", "colored output (auto|always|never)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDoneCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))

	return cmd
}

// resolve layers flags over the loaded config and sets up logging and theme.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("storage") {
		cfg.Storage = o.Storage
	}
	if flags.Changed("data") {
		cfg.Data = o.Data
	}
	if flags.Changed("key") {
		cfg.Key = o.Key
	}
	if flags.Changed("theme") {
		cfg.Theme = o.Theme
	}
	if flags.Changed("color") {
		cfg.Color = o.Color
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{msg: err.Error()}
	}

	lopts := logging.DefaultOptions()
	lopts.Level = logging.ParseLevel(cfg.LogLevel)
	o.log = logging.New(cmd.ErrOrStderr(), lopts)
	o.cfg = cfg

	ui.SetTheme(cfg.Theme)
	ui.SetColorMode(cfg.Color)
	ui.UseOutput(cmd.OutOrStdout())
	o.log.Debug("config resolved",
		"storage", cfg.Storage, "data", cfg.Data, "key", cfg.Key,
		"theme", ui.Current().Name, "color", cfg.Color)
	return nil
}

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		if ue.msg != "" {
			ui.Fail(stderr, ue.msg)
		}
		if ue.hint != "" {
			fmt.Fprintln(stderr, ui.Dim(ue.hint))
		}
		return ExitUsage
	}
	ui.Fail(stderr, err.Error())
	return ExitError
}
