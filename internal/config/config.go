// Package config loads runtime settings from TIMESMASTER_* environment
// variables. Command-line flags bound with BindFlags override them.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by the play and simulate commands.
type Config struct {
	Difficulty string `env:"TIMESMASTER_DIFFICULTY" envDefault:"mixed"`
	Tables     []int  `env:"TIMESMASTER_TABLES"     envSeparator:","`
	Seed       uint64 `env:"TIMESMASTER_SEED"`

	LogFile  string `env:"TIMESMASTER_LOG_FILE"`
	LogLevel string `env:"TIMESMASTER_LOG_LEVEL" envDefault:"info"`

	CorrectDelay   time.Duration `env:"TIMESMASTER_CORRECT_DELAY"   envDefault:"800ms"`
	IncorrectDelay time.Duration `env:"TIMESMASTER_INCORRECT_DELAY" envDefault:"1200ms"`
	DontKnowDelay  time.Duration `env:"TIMESMASTER_DONT_KNOW_DELAY" envDefault:"2500ms"`
	BadgeDuration  time.Duration `env:"TIMESMASTER_BADGE_DURATION"  envDefault:"2400ms"`

	NoWelcome bool `env:"TIMESMASTER_NO_WELCOME"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers the drill flags on fs with the loaded values as
// defaults, so flags given on the command line win over the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Difficulty, "difficulty", c.Difficulty, "difficulty: mixed, easy, medium, hard or custom")
	fs.IntSliceVar(&c.Tables, "tables", c.Tables, "custom times tables, e.g. 3,7,8 (implies --difficulty custom)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
}

// BindLogFlags registers the logging flags on fs.
func (c *Config) BindLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write JSON logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Mode returns the parsed difficulty. Giving tables without an explicit
// mode selects custom.
func (c Config) Mode() (problemgen.Difficulty, error) {
	d, err := problemgen.ParseDifficulty(c.Difficulty)
	if err != nil {
		return "", err
	}
	if len(c.Tables) > 0 && d == problemgen.DifficultyMixed {
		d = problemgen.DifficultyCustom
	}
	return d, nil
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Mode(); err != nil {
		errs = append(errs, err)
	}
	for _, n := range c.Tables {
		if !mastery.InGrid(n) {
			errs = append(errs, fmt.Errorf("table %d: %w", n, engine.ErrInvalidOperand))
		}
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	for name, d := range map[string]time.Duration{
		"correct delay":   c.CorrectDelay,
		"incorrect delay": c.IncorrectDelay,
		"dont-know delay": c.DontKnowDelay,
		"badge duration":  c.BadgeDuration,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
