package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bjaus/tasks/internal/config"
	"github.com/bjaus/tasks/internal/logging"
	"github.com/bjaus/tasks/internal/store"
)

// annotationConfigOptional marks commands that run without an existing
// config file.
const annotationConfigOptional = "tasks/config-optional"

type globalFlags struct {
	configPath string
	database   string
	verbose    bool
	noColor    bool
}

// app carries per-invocation state shared by the commands.
type app struct {
	out    io.Writer
	errOut io.Writer
	env    config.LookupFunc
	flags  globalFlags

	cfg        *config.Config
	configPath string
	logger     *log.Logger
	store      *store.Store

	success *color.Color
	notice  *color.Color
}

func newApp(opts Options) *app {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Env == nil {
		opts.Env = os.LookupEnv
	}
	return &app{
		out:     opts.Out,
		errOut:  opts.Err,
		env:     opts.Env,
		success: color.New(color.FgGreen),
		notice:  color.New(color.FgYellow),
	}
}

// setup loads configuration and the logger. The store is opened lazily by
// the commands that need it.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.flags.configPath
	if path == "" {
		if v, ok := a.env("TASKS_CONFIG"); ok {
			path = v
		}
	}
	load := config.Load
	if cmd.Annotations[annotationConfigOptional] == "true" {
		load = config.LoadOptional
	}
	cfg, err := load(path, a.env)
	if err != nil {
		return err
	}
	if a.flags.database != "" {
		cfg.Database = a.flags.database
	}
	if a.flags.noColor {
		cfg.Color = false
	}
	if err := cfg.Finalize(); err != nil {
		return err
	}
	a.cfg = cfg

	a.configPath = path
	if a.configPath == "" {
		if a.configPath, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}

	if !cfg.Color {
		a.success.DisableColor()
		a.notice.DisableColor()
	}
	a.logger = logging.NewFromConfig(a.errOut, cfg.LogLevel, cfg.LogFormat, a.flags.verbose)
	a.logger.Debug("loaded config", "path", a.configPath, "database", cfg.Database, "command", cmd.Name())
	return nil
}

func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	st, err := store.Open(ctx, a.cfg.Database, store.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.store = st
	return st, nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}
