package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/skywhysales/skyclient/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds; after parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	BaseURL               *string `json:"base_url"`
	CredentialsDSN        *string `json:"credentials_dsn"`
	RequestTimeoutSeconds *int    `json:"request_timeout_seconds"`
	LogLevel              *string `json:"log_level"`
	LogPretty             *bool   `json:"log_pretty"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; without them nothing is loaded.
// Fields absent from the file keep their current values. Read or unmarshal
// errors panic, as a config file that was explicitly pointed at must parse.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.CredentialsDSN != nil {
		cfg.CredentialsDSN = *jc.CredentialsDSN
	}
	if jc.RequestTimeoutSeconds != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
}
