// Package config assembles the client runtime settings from, in order of
// increasing precedence: built-in defaults, environment variables, an
// optional JSON file, and command-line flags.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the SkyWhySales client.
type Config struct {
	// BaseURL is the backend address, scheme included.
	BaseURL string `env:"SKYCLIENT_BASE_URL"`
	// CredentialsDSN is the SQLite DSN of the local credential database.
	CredentialsDSN string `env:"SKYCLIENT_CREDENTIALS_DSN"`
	// RequestTimeout bounds every single API request.
	RequestTimeout time.Duration `env:"SKYCLIENT_REQUEST_TIMEOUT"`
	// LogLevel is the minimum level: debug, info, warn, error.
	LogLevel string `env:"SKYCLIENT_LOG_LEVEL"`
	// LogPretty switches to human-readable console output.
	LogPretty bool `env:"SKYCLIENT_LOG_PRETTY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.CredentialsDSN = "skyclient.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// parseEnv overlays Config with SKYCLIENT_* environment variables. Unset
// variables leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(err)
	}
}
