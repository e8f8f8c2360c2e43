package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from zero values so only keys present in the file override
// earlier layers.
type JsonConfig struct {
	LogLevel  *string `json:"log_level"`
	LogFormat *string `json:"log_format"`
	UserName  *string `json:"user_name"`
	UserEmail *string `json:"user_email"`
	LookupID  *int    `json:"lookup_id"`
}

// parseJson overlays values from the file named by -c/-config in args.
// Without such a flag nothing is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.LogFormat != nil {
		config.LogFormat = *c.LogFormat
	}
	if c.UserName != nil {
		config.UserName = *c.UserName
	}
	if c.UserEmail != nil {
		config.UserEmail = *c.UserEmail
	}
	if c.LookupID != nil {
		config.LookupID = *c.LookupID
		config.HasLookupID = true
	}

	return nil
}
