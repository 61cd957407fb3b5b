// Package config defines the configuration structures for molscreen.
// No I/O or parsing logic lives here, only plain data types, defaults,
// and validation.
package config

import (
	"fmt"

	"github.com/molscreen/molscreen/internal/infrastructure/monitoring/logging"
)

// ScreenConfig holds the screening-pipeline defaults.  Explicit CLI flags
// always override these values.
type ScreenConfig struct {
	// ReportPath is the default path of the text property report written by
	// the screen command when no -o flag is given.
	ReportPath string `mapstructure:"report_path"`

	// CSVPath is the default path of the tabular export written by the
	// export command when no -o flag is given.
	CSVPath string `mapstructure:"csv_path"`
}

// Config is the root configuration object for the molscreen CLI.
type Config struct {
	Screen ScreenConfig      `mapstructure:"screen"`
	Log    logging.LogConfig `mapstructure:"log"`
}

// Validate checks cross-field consistency.  It assumes ApplyDefaults has
// already run, so zero values indicate an explicitly broken configuration.
func (c *Config) Validate() error {
	if c.Screen.ReportPath == "" {
		return fmt.Errorf("config: screen.report_path is required")
	}
	if c.Screen.CSVPath == "" {
		return fmt.Errorf("config: screen.csv_path is required")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	return nil
}
