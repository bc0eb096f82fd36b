package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pehdsa/journey-native/internal/calendar"
)

// Config is the root configuration for journey, stored in ~/.journey/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	API    APIConfig   `json:"api"`
	Owner  OwnerConfig `json:"owner"`
	Locale string      `json:"locale"`
	// Timezone is the IANA timezone trip days are interpreted in. Empty = local.
	Timezone string `json:"timezone"`
}

// APIConfig holds the trip API connection settings.
type APIConfig struct {
	BaseURL string `json:"base_url"`
	// Token, when set, is sent as a bearer token on every request.
	Token          string `json:"token"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// OwnerConfig identifies the person creating trips from this device.
type OwnerConfig struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

const (
	// DefaultBaseURL is the trip API address used by a local development server.
	DefaultBaseURL = "http://localhost:3333"
	// DefaultTimeoutSeconds bounds each API request.
	DefaultTimeoutSeconds = 10
	// DefaultLocale is the language of date range labels.
	DefaultLocale = calendar.LocaleEnglish
)

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Locale: DefaultLocale,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing.
const configTemplate = `// journey configuration – ~/.journey/config.json
//
// All settings are optional except the trip owner, which is required
// before "journey trip create" can run.
{
  // ── Trip API ─────────────────────────────────────────────────────────────
  "api": {
    // Base URL of the trip planner API.
    "base_url": "http://localhost:3333",

    // Optional bearer token sent with every request.
    "token": "",

    // Per-request timeout in seconds.
    "timeout_seconds": 10
  },

  // ── Trip owner ───────────────────────────────────────────────────────────
  "owner": {
    "name": "",
    "email": ""
  },

  // Language of date range labels: "en" (12 to 19 of August) or
  // "pt-BR" (12 até 19 de agosto).
  "locale": "en",

  // IANA timezone for trip days, e.g. "America/Sao_Paulo". Empty = local time.
  "timezone": ""
}
`

// FilePath returns the config file path inside base.
func FilePath(base string) string {
	return filepath.Join(base, "config.json")
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads <base>/config.json, creating it with annotated defaults on first
// run. Zero-value fields are filled with built-in defaults.
func Load(base string) (Config, error) {
	path := FilePath(base)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if !calendar.SupportedLocale(cfg.Locale) {
		return cfg, fmt.Errorf("config file %s: unsupported locale %q (use %q or %q)",
			path, cfg.Locale, calendar.LocaleEnglish, calendar.LocalePortuguese)
	}

	return cfg, nil
}

// Timeout returns the per-request API timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Location resolves Timezone, falling back to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Formatter returns the range label formatter for the configured locale.
func (c Config) Formatter() calendar.Formatter {
	return calendar.Formatter{Locale: c.Locale}
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
