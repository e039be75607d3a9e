// Package config loads badgecheck's runtime configuration: log level,
// HTTP fetch tuning, and the extension registry location. Modeled on
// the teacher's internal/config/config.go, including its precedence
// order: environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration for the badgecheck engine.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Fetch      FetchConfig      `toml:"fetch"`
	Extensions ExtensionsConfig `toml:"extensions"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// FetchConfig holds the FETCH_HTTP_NODE collaborator's tuning.
type FetchConfig struct {
	TimeoutSeconds      int      `toml:"timeout_seconds"`
	MaxRetries          int      `toml:"max_retries"`
	LongOutageThreshold int      `toml:"long_outage_threshold"`
	AllowedURLSchemes   []string `toml:"allowed_url_schemes"`
}

// ExtensionsConfig points at the directory of extension definitions
// (type IRI -> JSON-LD context + JSON-Schema file pair) loaded into the
// extension.Registry the engine treats as an input.
type ExtensionsConfig struct {
	Directory string `toml:"directory"`
}

// Load builds a Config by layering environment variables over a TOML
// config file over built-in defaults (precedence: env > file >
// defaults, matching the teacher's Load).
//
// Config file search order (first found wins):
//  1. configPath (explicit, e.g. a --config flag)
//  2. BADGECHECK_CONFIG environment variable
//  3. ./badgecheck.toml (current directory)
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Log: LogConfig{Level: "info"},
		Fetch: FetchConfig{
			TimeoutSeconds:      10,
			MaxRetries:          3,
			LongOutageThreshold: 5,
			AllowedURLSchemes:   []string{"http", "https"},
		},
		Extensions: ExtensionsConfig{Directory: ""},
	}

	if err := cfg.loadFile(configPath); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile finds and parses the TOML config file. If no file is found,
// this is a no-op (config file is optional).
func (c *Config) loadFile(configPath string) error {
	path := resolveConfigPath(configPath)
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// resolveConfigPath determines which config file to use. Returns empty
// string if no config file is found (config file is optional).
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("BADGECHECK_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("badgecheck.toml"); err == nil {
		return "badgecheck.toml"
	}
	return ""
}

// applyEnv overlays environment variables on top of existing config
// values. An env var only takes effect if it is non-empty.
func (c *Config) applyEnv() {
	envOverride("BADGECHECK_LOG_LEVEL", &c.Log.Level)
	envOverride("BADGECHECK_EXTENSIONS_DIR", &c.Extensions.Directory)

	if v := os.Getenv("BADGECHECK_FETCH_TIMEOUT_SECONDS"); v != "" {
		var seconds int
		if _, err := fmt.Sscanf(v, "%d", &seconds); err == nil && seconds > 0 {
			c.Fetch.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv("BADGECHECK_FETCH_MAX_RETRIES"); v != "" {
		var retries int
		if _, err := fmt.Sscanf(v, "%d", &retries); err == nil && retries >= 0 {
			c.Fetch.MaxRetries = retries
		}
	}
}

// Validate checks that required fields are present and well-formed.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", c.Log.Level)
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be positive")
	}
	return nil
}

// envOverride sets *dst to the value of the named env var, if it is non-empty.
func envOverride(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
