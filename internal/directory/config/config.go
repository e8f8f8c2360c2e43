// Package config loads runtime configuration for the userdir CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with USERDIR_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// The merged result is validated before it is returned. With no file, no
// environment and no flags the defaults reproduce the fixed demo workflow.
package config

import (
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for one userdir run.
//
// Fields:
//   - LogLevel / LogFormat: slog level name and handler ("text" or "json").
//   - UserName / UserEmail: inputs of the create step.
//   - LookupID: id passed to the fetch step when HasLookupID is set; otherwise
//     the id of the freshly created user is used.
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	UserName    string
	UserEmail   string
	LookupID    int
	HasLookupID bool
}

// LoadDefaults populates Config with the values of the fixed demo run.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.UserName = "John Doe"
	c.UserEmail = "john@example.com"
	c.LookupID = 0
	c.HasLookupID = false
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInvalidConfig, err)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally args
// (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
