package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"

	"github.com/bjaus/tasks/internal/output"
	"github.com/bjaus/tasks/tabular"
)

// Defaults.
const (
	DefaultTableWidth = 0
	DefaultBorder     = "ascii"
	DefaultOutput     = "table"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
)

// ErrConfigExists is returned by [WriteDefault] when the file already exists.
var ErrConfigExists = errors.New("config file already exists")

// Config holds tasks settings.
type Config struct {
	// Database is the SQLite file path. Empty means the default data dir.
	Database string `toml:"database"`
	// TableWidth is the rendered table width; 0 follows the terminal.
	TableWidth int    `toml:"table_width"`
	Border     string `toml:"border"`
	Output     string `toml:"output"`
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
	Color      bool   `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TableWidth: DefaultTableWidth,
		Border:     DefaultBorder,
		Output:     DefaultOutput,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
		Color:      true,
	}
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path uses [DefaultConfigPath] and tolerates a
// missing file; an explicit path must exist. A nil lookup reads the process
// environment.
func Load(path string, lookup LookupFunc) (*Config, error) {
	return load(path, path != "", lookup)
}

// LoadOptional is like [Load] but tolerates a missing file at an explicit
// path, so a config can be created there.
func LoadOptional(path string, lookup LookupFunc) (*Config, error) {
	return load(path, false, lookup)
}

func load(path string, required bool, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := loadFile(cfg, path, required); err != nil {
		return nil, err
	}
	if err := loadFromEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	return nil
}

func loadFromEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup("TASKS_DB"); ok && v != "" {
		cfg.Database = v
	}
	if v, ok := lookup("TASKS_WIDTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TASKS_WIDTH: %w", err)
		}
		cfg.TableWidth = n
	}
	if v, ok := lookup("TASKS_BORDER"); ok && v != "" {
		cfg.Border = v
	}
	if v, ok := lookup("TASKS_OUTPUT"); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := lookup("TASKS_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("TASKS_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup("TASKS_COLOR"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TASKS_COLOR: %w", err)
		}
		cfg.Color = b
	}
	// https://no-color.org: any non-empty value disables colour.
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		cfg.Color = false
	}
	return nil
}

// Finalize fills derived values and validates the configuration. Call it
// again after applying flag overrides.
func (c *Config) Finalize() error {
	if c.Database == "" {
		dir, err := DataDir()
		if err != nil {
			return err
		}
		c.Database = filepath.Join(dir, "tasks.db")
	}
	c.Database = expandPath(c.Database)

	if c.TableWidth < 0 {
		return fmt.Errorf("table_width must not be negative, got %d", c.TableWidth)
	}
	if _, err := tabular.ParseSeparators(c.Border); err != nil {
		return fmt.Errorf("border: %w", err)
	}
	if _, err := output.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format: unknown formatter %q", c.LogFormat)
	}
	return nil
}

// WriteDefault writes the default configuration to path atomically. An
// existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
