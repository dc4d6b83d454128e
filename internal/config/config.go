// Package config resolves the settings shared by every sample command from
// a .env file and the process environment. Command-line flags override
// what Load returns.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

// Environment variables read by Load.
const (
	EnvKeyFile   = "MARKETPLACE_KEY_FILE"
	EnvToken     = "MARKETPLACE_TOKEN"
	EnvBaseURL   = "MARKETPLACE_BASE_URL"
	EnvAccountID = "MARKETPLACE_ACCOUNT_ID"
	EnvPageSize  = "MARKETPLACE_PAGE_SIZE"
)

const (
	DefaultBaseURL  = marketplace.DefaultBaseURL
	DefaultPageSize = 50
)

// Config holds the resolved settings.
type Config struct {
	KeyFile   string
	Token     string
	BaseURL   string
	AccountID int64
	PageSize  int
}

// Load reads envFiles (".env" when none are given) into the environment
// without overriding variables that are already set, then builds a Config.
// Missing env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		KeyFile:  os.Getenv(EnvKeyFile),
		Token:    os.Getenv(EnvToken),
		BaseURL:  DefaultBaseURL,
		PageSize: DefaultPageSize,
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAccountID); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvAccountID, v, err)
		}
		cfg.AccountID = id
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", EnvPageSize, v)
		}
		cfg.PageSize = n
	}
	return cfg, nil
}
