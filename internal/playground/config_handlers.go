// Package playground provides HTTP handlers for configuration management.
//
// This file implements the /config endpoints for reading, updating and
// saving the playground configuration at runtime. Updates apply
// immediately; /config/save writes them to the user config file so they
// survive a restart.
package playground

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// handleConfigGet returns the current playground configuration.
func (s *Server) handleConfigGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r)
		return
	}
	WriteJSONSafe(w, http.StatusOK, map[string]any{"config": s.config()})
}

// handleConfigUpdate replaces the sections present in the posted config.
func (s *Server) handleConfigUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		methodNotAllowed(w, r)
		return
	}

	var update PlaygroundConfig
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		WriteError(w, errInvalid("Invalid config: %v", err))
		return
	}
	if err := validateConfig(&update); err != nil {
		WriteError(w, errInvalid("%v", err))
		return
	}

	merged := *s.config()
	if update.RateLimit != nil {
		merged.RateLimit = update.RateLimit
	}
	if update.Auth != nil {
		merged.Auth = update.Auth
	}
	if update.Persistence != nil {
		merged.Persistence = update.Persistence
	}
	if update.Seeding != nil {
		merged.Seeding = update.Seeding
	}
	s.SetConfig(&merged)

	WriteJSONSafe(w, http.StatusOK, map[string]any{
		"config": &merged,
		"note":   "Runtime changes are lost on restart unless saved with POST /config/save.",
	})
}

// handleConfigSave writes the current configuration to the user config
// file.
func (s *Server) handleConfigSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}
	path, err := SavePlaygroundConfig(s.config())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSONSafe(w, http.StatusOK, map[string]any{"status": "saved", "file": path})
}

// SavePlaygroundConfig writes config to the user config file and returns
// its path.
func SavePlaygroundConfig(config *PlaygroundConfig) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal playground config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write playground config: %w", err)
	}
	return path, nil
}
