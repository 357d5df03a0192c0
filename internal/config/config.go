package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	API     APIConfig
	Display DisplayConfig
}

type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type DisplayConfig struct {
	Limit int  `toml:"limit"`
	Plain bool `toml:"plain"`
}

// DefaultConfig returns the built-in settings. Running without a config
// file is the normal case and behaves exactly like these values.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "https://api.github.com",
			UserAgent:      "gh-activity/1.0",
			TimeoutSeconds: 10,
		},
		Display: DisplayConfig{
			Limit: 20,
			Plain: false,
		},
	}
}

// Timeout returns the API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gh-activity", "config.toml")
}

func Load() (*LoadResult, error) {
	return LoadFrom(defaultConfigPath())
}

// LoadFrom reads the config file at path over the defaults. A missing
// file is not an error; unknown keys produce warnings, not failures.
func LoadFrom(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadResult{Config: DefaultConfig()}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromString(string(data))
}

func LoadFromString(data string) (*LoadResult, error) {
	cfg := DefaultConfig()
	result := &LoadResult{Config: cfg}

	if data == "" {
		return result, nil
	}

	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	knownTopLevel := map[string]bool{
		"api":     true,
		"display": true,
	}
	for key := range raw {
		if !knownTopLevel[key] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key))
		}
	}

	var tf tomlFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	mergeFromRaw(&result.Config, &tf, raw)

	if err := validate(&result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

type tomlFile struct {
	API     *APIConfig     `toml:"api"`
	Display *DisplayConfig `toml:"display"`
}

// mergeFromRaw overrides defaults only for keys actually present in the
// file, so a partial config does not zero out the rest.
func mergeFromRaw(cfg *Config, tf *tomlFile, raw map[string]any) {
	if tf.API != nil {
		if section, ok := rawSection(raw, "api"); ok {
			if _, exists := section["base_url"]; exists {
				cfg.API.BaseURL = tf.API.BaseURL
			}
			if _, exists := section["user_agent"]; exists {
				cfg.API.UserAgent = tf.API.UserAgent
			}
			if _, exists := section["timeout_seconds"]; exists {
				cfg.API.TimeoutSeconds = tf.API.TimeoutSeconds
			}
		}
	}
	if tf.Display != nil {
		if section, ok := rawSection(raw, "display"); ok {
			if _, exists := section["limit"]; exists {
				cfg.Display.Limit = tf.Display.Limit
			}
			if _, exists := section["plain"]; exists {
				cfg.Display.Plain = tf.Display.Plain
			}
		}
	}
}

func rawSection(raw map[string]any, key string) (map[string]any, bool) {
	v, ok := raw[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func validate(cfg *Config) error {
	var errs []string

	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		errs = append(errs, fmt.Sprintf("api base_url must be an http(s) URL, got %q", cfg.API.BaseURL))
	}
	if cfg.API.UserAgent == "" {
		errs = append(errs, "api user_agent must not be empty")
	}
	if cfg.API.TimeoutSeconds < 1 || cfg.API.TimeoutSeconds > 300 {
		errs = append(errs, fmt.Sprintf("api timeout_seconds must be 1-300, got %d", cfg.API.TimeoutSeconds))
	}

	if cfg.Display.Limit < 1 || cfg.Display.Limit > 1000 {
		errs = append(errs, fmt.Sprintf("display limit must be 1-1000, got %d", cfg.Display.Limit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation error: %s", strings.Join(errs, "; "))
	}
	return nil
}
