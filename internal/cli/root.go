// Package cli implements the tasks command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/tasks/internal/config"
)

// version is set at build time with -ldflags "-X".
var version = "development version"

// Options wires the command tree to its environment.
type Options struct {
	Out io.Writer
	Err io.Writer
	// Env reads environment variables. Nil reads the process environment.
	Env config.LookupFunc
}

// DefaultOptions returns options bound to the process streams.
func DefaultOptions() Options {
	return Options{Out: os.Stdout, Err: os.Stderr, Env: os.LookupEnv}
}

// Run executes the command line args and releases the database afterwards,
// whether or not the command succeeded.
func Run(ctx context.Context, args []string, opts Options) error {
	a := newApp(opts)
	root := newRootCommand(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.close())
}

// newRootCommand builds the tasks command tree. Running it without a
// subcommand lists tasks.
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tasks",
		Short:         "Track personal tasks from the command line",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, listOptions{})
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetVersionTemplate("tasks {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.configPath, "config", "", "config file (default <user config dir>/tasks/config.toml)")
	flags.StringVar(&a.flags.database, "db", "", "database file (overrides config)")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "disable colored messages")

	root.AddCommand(
		newAddCommand(a),
		newListCommand(a),
		newCompleteCommand(a),
		newDeleteCommand(a),
		newScopeCommand(a),
		newConfigCommand(a),
	)
	return root
}
