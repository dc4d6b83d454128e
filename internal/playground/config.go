// Package playground reads the playground's own settings.
//
// This file contains the configuration types (PlaygroundConfig,
// RateLimitConfig, AuthConfig, PersistenceConfig, SeedingConfig) and the
// functions that load them from the user's config file or the embedded
// defaults.
package playground

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed configs/*.json
var embeddedConfigs embed.FS

// ConfigDirName is the directory under the user's home holding the
// playground config and state files.
const ConfigDirName = ".marketplace-playground"

// PlaygroundConfig is the content of config.json. Every section is optional.
type PlaygroundConfig struct {
	RateLimit   *RateLimitConfig   `json:"rate_limit,omitempty"`
	Auth        *AuthConfig        `json:"auth,omitempty"`
	Persistence *PersistenceConfig `json:"persistence,omitempty"`
	Seeding     *SeedingConfig     `json:"seeding,omitempty"`
}

// RateLimitConfig simulates the API's per-buyer request quota.
type RateLimitConfig struct {
	Enabled   bool `json:"enabled,omitempty"`    // Enable rate limiting simulation
	Limit     int  `json:"limit,omitempty"`      // Requests per window (default: 60)
	WindowSec int  `json:"window_sec,omitempty"` // Window size in seconds (default: 60)
	// EndpointOverrides allows per-endpoint rate limit overrides.
	// Key format: "METHOD:PATTERN" (e.g. "GET:/v1/buyers/*/clients") or
	// "PATTERN" for all methods.
	EndpointOverrides map[string]EndpointRateLimitOverride `json:"endpoint_overrides,omitempty"`
}

// EndpointRateLimitOverride replaces the quota of one route.
type EndpointRateLimitOverride struct {
	Limit     int `json:"limit"`
	WindowSec int `json:"window_sec"`
}

// AuthConfig controls the bearer token check.
type AuthConfig struct {
	DisableValidation bool `json:"disable_validation,omitempty"` // Accept requests without a bearer token
	// Tokens, when set, is the list of accepted bearer tokens. Any token is
	// accepted otherwise.
	Tokens []string `json:"tokens,omitempty"`
}

// PersistenceConfig saves marketplace state between runs.
type PersistenceConfig struct {
	Enabled      bool   `json:"enabled,omitempty"`
	FilePath     string `json:"file_path,omitempty"`     // default: ~/.marketplace-playground/state.json
	AutoSave     bool   `json:"auto_save,omitempty"`
	SaveInterval int    `json:"save_interval,omitempty"` // seconds (default: 60)
}

// SeedingConfig controls the data the state starts with.
type SeedingConfig struct {
	Disabled bool   `json:"disabled,omitempty"` // Start with an empty state
	File     string `json:"file,omitempty"`     // Seed file replacing the embedded one
}

// ConfigPath returns the path of the user config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName, "config.json"), nil
}

// LoadPlaygroundConfig loads the playground configuration.
// The user config file takes precedence; the embedded default is used when
// it does not exist.
func LoadPlaygroundConfig() (*PlaygroundConfig, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	config, err := LoadPlaygroundConfigFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadDefaultPlaygroundConfig()
	}
	return config, err
}

// LoadPlaygroundConfigFile loads and validates the configuration at path.
func LoadPlaygroundConfigFile(path string) (*PlaygroundConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playground config: %w", err)
	}

	var config PlaygroundConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse playground config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid playground config %s: %w", path, err)
	}

	logger.WithField("path", path).Info("loaded playground configuration")
	return &config, nil
}

// LoadDefaultPlaygroundConfig parses configs/default.json from the binary.
func LoadDefaultPlaygroundConfig() (*PlaygroundConfig, error) {
	data, err := embeddedConfigs.ReadFile("configs/default.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded default config: %w", err)
	}

	var config PlaygroundConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse embedded default config: %w", err)
	}
	return &config, nil
}

// validateConfig rejects negative limits and intervals.
func validateConfig(config *PlaygroundConfig) error {
	if config.RateLimit != nil {
		if config.RateLimit.Limit < 0 {
			return fmt.Errorf("rate_limit.limit must be >= 0")
		}
		if config.RateLimit.WindowSec < 0 {
			return fmt.Errorf("rate_limit.window_sec must be >= 0")
		}
		for key, override := range config.RateLimit.EndpointOverrides {
			if override.Limit < 0 {
				return fmt.Errorf("rate_limit.endpoint_overrides[%s].limit must be >= 0", key)
			}
			if override.WindowSec < 0 {
				return fmt.Errorf("rate_limit.endpoint_overrides[%s].window_sec must be >= 0", key)
			}
		}
	}
	if config.Persistence != nil && config.Persistence.SaveInterval < 0 {
		return fmt.Errorf("persistence.save_interval must be >= 0")
	}
	return nil
}

// GetRateLimitConfig returns the rate limit configuration with defaults applied
func (c *PlaygroundConfig) GetRateLimitConfig() *RateLimitConfig {
	if c == nil || c.RateLimit == nil {
		return GetDefaultRateLimit()
	}
	rl := *c.RateLimit
	def := GetDefaultRateLimit()
	if rl.Limit == 0 {
		rl.Limit = def.Limit
	}
	if rl.WindowSec == 0 {
		rl.WindowSec = def.WindowSec
	}
	return &rl
}

// GetAuthConfig returns the authentication configuration
func (c *PlaygroundConfig) GetAuthConfig() *AuthConfig {
	if c == nil || c.Auth == nil {
		return &AuthConfig{}
	}
	return c.Auth
}

// GetPersistenceConfig returns the persistence configuration with defaults
// applied, or nil when persistence is disabled.
func (c *PlaygroundConfig) GetPersistenceConfig() *PersistenceConfig {
	if c == nil || c.Persistence == nil || !c.Persistence.Enabled {
		return nil
	}
	pc := *c.Persistence
	if pc.FilePath == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			pc.FilePath = filepath.Join(homeDir, ConfigDirName, "state.json")
		} else {
			pc.FilePath = "marketplace-playground-state.json"
		}
	}
	if pc.SaveInterval == 0 {
		pc.SaveInterval = 60
	}
	return &pc
}

// GetSeedingConfig returns the seeding configuration
func (c *PlaygroundConfig) GetSeedingConfig() *SeedingConfig {
	if c == nil || c.Seeding == nil {
		return &SeedingConfig{}
	}
	return c.Seeding
}
