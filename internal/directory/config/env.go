package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v10"
)

const envPrefix = "USERDIR_"

// envConfig mirrors the overridable settings. LookupID stays a string so an
// unset variable can be told apart from "0".
type envConfig struct {
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	UserName  string `env:"USER_NAME"`
	UserEmail string `env:"USER_EMAIL"`
	LookupID  string `env:"LOOKUP_ID"`
}

// parseEnv overlays USERDIR_* environment variables onto config.
func parseEnv(config *Config) error {
	e := envConfig{
		LogLevel:  config.LogLevel,
		LogFormat: config.LogFormat,
		UserName:  config.UserName,
		UserEmail: config.UserEmail,
	}

	if err := env.ParseWithOptions(&e, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}

	config.LogLevel = e.LogLevel
	config.LogFormat = e.LogFormat
	config.UserName = e.UserName
	config.UserEmail = e.UserEmail

	if e.LookupID != "" {
		id, err := strconv.Atoi(e.LookupID)
		if err != nil {
			return fmt.Errorf("error parsing %sLOOKUP_ID: %w", envPrefix, err)
		}
		config.LookupID = id
		config.HasLookupID = true
	}

	return nil
}
