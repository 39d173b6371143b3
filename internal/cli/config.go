package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "REQLINE_"

// Config holds the CLI defaults. Command-line flags override every field.
type Config struct {
	Format      string `env:"FORMAT"       envDefault:"text"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"   envDefault:"text"`
	NoColor     bool   `env:"NO_COLOR"     envDefault:"false"`
	Diagnostics bool   `env:"DIAGNOSTICS"  envDefault:"false"`
	CRLF        bool   `env:"CRLF"         envDefault:"true"`
}

// LoadConfig reads Config from the environment using opts.
// An empty opts.Prefix defaults to EnvPrefix.
func LoadConfig(opts env.Options) (Config, error) {
	if opts.Prefix == "" {
		opts.Prefix = EnvPrefix
	}

	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that enumerated fields hold known values.
func (c Config) Validate() error {
	if !validFormat(c.Format) {
		return fmt.Errorf("invalid format %q (want text, json, yaml or wire)", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}
	return nil
}
