package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all molscreen settings.
const envPrefix = "MOLSCREEN"

// newViper builds a pre-configured Viper instance: YAML file type,
// MOLSCREEN_ env prefix, automatic env binding, and a key replacer that maps
// "." → "_" so nested keys like "screen.report_path" resolve to
// "MOLSCREEN_SCREEN_REPORT_PATH".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Viper only unmarshals keys it has seen, so bind every known key
	// explicitly; otherwise env-only overrides are invisible to Unmarshal.
	for _, key := range []string{
		"screen.report_path",
		"screen.csv_path",
		"log.level",
		"log.format",
		"log.output_paths",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges MOLSCREEN_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from MOLSCREEN_* environment variables
// and defaults, with no config file required.  This is the normal path for a
// plain CLI invocation without --config.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
