// Package config loads CLI defaults from the environment. An optional .env
// file is read first; real environment variables win over it.
package config

import (
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/logger"
	"github.com/KirkDiggler/rpg-chargen/internal/render"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

// DefaultEnvFile is loaded when Load is called without files
const DefaultEnvFile = ".env"

// Config holds the generator defaults
type Config struct {
	Ruleset string `env:"CHARGEN_RULESET" envDefault:"standard"`
	// StatMethod overrides the ruleset's stat method when set
	StatMethod string `env:"CHARGEN_STAT_METHOD"`
	// Seed makes output reproducible; zero rolls with system entropy
	Seed    uint64 `env:"CHARGEN_SEED" envDefault:"0"`
	Workers int    `env:"CHARGEN_WORKERS" envDefault:"1"`
	Output  string `env:"CHARGEN_OUTPUT" envDefault:"text"`

	Log LogConfig
}

// LogConfig holds the logging settings
type LogConfig struct {
	Level      string `env:"CHARGEN_LOG_LEVEL" envDefault:"warn"`
	Format     string `env:"CHARGEN_LOG_FORMAT" envDefault:"text"`
	File       string `env:"CHARGEN_LOG_FILE"`
	MaxSizeMB  int    `env:"CHARGEN_LOG_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"CHARGEN_LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"CHARGEN_LOG_MAX_AGE_DAYS" envDefault:"28"`
}

// Load reads env files, then parses the environment into a Config. Missing
// env files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load "+f)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return &cfg, nil
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("ruleset", c.Ruleset, rulebook.RulesetNames(), vb)
	if c.StatMethod != "" {
		errors.ValidateEnum("stat_method", c.StatMethod, rulebook.StatMethods(), vb)
	}
	errors.ValidateMin("workers", c.Workers, 1, vb)
	errors.ValidateEnum("output", c.Output, render.Formats(), vb)

	if err := vb.Build(); err != nil {
		return err
	}

	if err := c.Logger().Validate(); err != nil {
		return errors.Wrap(err, "invalid log config")
	}
	return nil
}

// Rules resolves the configured ruleset, applying any stat method override
func (c *Config) Rules() (rulebook.Ruleset, error) {
	rs, err := rulebook.RulesetByName(c.Ruleset)
	if err != nil {
		return rulebook.Ruleset{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid ruleset")
	}
	if c.StatMethod != "" {
		rs = rs.WithStatMethod(rulebook.StatMethod(c.StatMethod))
	}
	return rs, nil
}

// Logger returns the logger settings
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:          c.Log.Level,
		Format:         c.Log.Format,
		FilePath:       c.Log.File,
		FileMaxSizeMB:  c.Log.MaxSizeMB,
		FileMaxBackups: c.Log.MaxBackups,
		FileMaxAgeDays: c.Log.MaxAgeDays,
	}
}
