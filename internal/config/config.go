// Package config loads ridgeline settings from defaults, an optional YAML file,
// RIDGELINE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/ridgeline/climb"
	"github.com/katalvlaran/ridgeline/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. RIDGELINE_SOLVE_WORKERS.
const EnvPrefix = "RIDGELINE"

// Viper keys.
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyTieBreak       = "solve.tie_break"
	KeyReturnPath     = "solve.path"
	KeyMaxExtractions = "solve.max_extractions"
	KeyWorkers        = "solve.workers"
)

// Config is the decoded configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Solve SolveConfig `mapstructure:"solve"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SolveConfig controls each search and the batch runner.
type SolveConfig struct {
	TieBreak       string `mapstructure:"tie_break"`
	ReturnPath     bool   `mapstructure:"path"`
	MaxExtractions int    `mapstructure:"max_extractions"`
	Workers        int    `mapstructure:"workers"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logger.FormatConsole)
	v.SetDefault(KeyTieBreak, climb.TieBreakDistanceToEnd.String())
	v.SetDefault(KeyReturnPath, false)
	v.SetDefault(KeyMaxExtractions, 0)
	v.SetDefault(KeyWorkers, 4)
}

// Load reads configuration into v and decodes it. When file is empty,
// ridgeline.yaml is looked up in the working directory and in
// $HOME/.config/ridgeline; a missing file is not an error. An explicit file
// that cannot be read is.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("ridgeline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ridgeline")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := climb.ParseTieBreak(c.Solve.TieBreak); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Solve.MaxExtractions < 0 {
		return fmt.Errorf("config: %s must be >= 0, got %d", KeyMaxExtractions, c.Solve.MaxExtractions)
	}
	if c.Solve.Workers < 1 {
		return fmt.Errorf("config: %s must be >= 1, got %d", KeyWorkers, c.Solve.Workers)
	}
	switch c.Log.Format {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("config: %s must be %q or %q, got %q",
			KeyLogFormat, logger.FormatConsole, logger.FormatJSON, c.Log.Format)
	}
	return nil
}

// ClimbOptions translates the solve section into search options.
func (c *Config) ClimbOptions() ([]climb.Option, error) {
	tb, err := climb.ParseTieBreak(c.Solve.TieBreak)
	if err != nil {
		return nil, err
	}
	opts := []climb.Option{climb.WithTieBreak(tb)}
	if c.Solve.ReturnPath {
		opts = append(opts, climb.WithReturnPath())
	}
	if c.Solve.MaxExtractions > 0 {
		opts = append(opts, climb.WithMaxExtractions(c.Solve.MaxExtractions))
	}
	return opts, nil
}
