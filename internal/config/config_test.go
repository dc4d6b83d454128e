package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvKeyFile, EnvToken, EnvBaseURL, EnvAccountID, EnvPageSize} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, marketplace.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Zero(t, cfg.AccountID)
	assert.Empty(t, cfg.KeyFile)
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvKeyFile, "/keys/sa.json")
	t.Setenv(EnvBaseURL, "http://localhost:8080/v1/")
	t.Setenv(EnvAccountID, "12345")
	t.Setenv(EnvPageSize, "10")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		KeyFile:   "/keys/sa.json",
		BaseURL:   "http://localhost:8080/v1/",
		AccountID: 12345,
		PageSize:  10,
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"account id", EnvAccountID, "abc"},
		{"page size", EnvPageSize, "0"},
		{"page size text", EnvPageSize, "many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MARKETPLACE_TOKEN=from-file\nMARKETPLACE_ACCOUNT_ID=7\n"), 0o600))
	t.Setenv(EnvAccountID, "9")

	cfg, err := Load(envFile, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Token)
	// Variables already in the environment win over the file.
	assert.Equal(t, int64(9), cfg.AccountID)
}
