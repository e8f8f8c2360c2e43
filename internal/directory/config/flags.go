package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-n string   name of the user to create
//	-m string   email of the user to create
//	-i int      id to look up instead of the created user's id
//
// Only these flags are parsed (see flagx.FilterArgs); -c/-config belongs to
// the JSON layer.
func parseFlags(config *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-l", "-f", "-n", "-m", "-i"})

	fs := flag.NewFlagSet("userdir", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (text|json)")
	fs.StringVar(&config.UserName, "n", config.UserName, "user name")
	fs.StringVar(&config.UserEmail, "m", config.UserEmail, "user email")
	lookupID := fs.Int("i", config.LookupID, "user id to fetch")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	if flagx.IsSet(fs, "i") {
		config.LookupID = *lookupID
		config.HasLookupID = true
	}

	return nil
}
