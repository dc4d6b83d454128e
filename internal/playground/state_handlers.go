// Package playground provides HTTP handlers for state management endpoints.
//
// This file handles the /state/* endpoints for exporting, importing,
// resetting and saving playground state. Imports are validated in full
// before they replace the current state.
package playground

import (
	"encoding/json"
	"net/http"
)

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, &APIError{
		Code:    http.StatusMethodNotAllowed,
		Status:  "INVALID_ARGUMENT",
		Message: "Method " + r.Method + " is not allowed.",
	})
}

// handleStateReset reloads the configured seed data into the state.
func (s *Server) handleStateReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}

	s.state.Reset()
	seeding := s.config().GetSeedingConfig()
	if !seeding.Disabled {
		if err := seedState(s.state, seeding.File); err != nil {
			WriteError(w, err)
			return
		}
	}
	s.saveAfterChange()

	logger.Info("playground state reset")
	WriteJSONSafe(w, http.StatusOK, map[string]any{
		"status":    "reset",
		"resources": s.state.Counts(),
	})
}

// handleStateClear empties the state without reseeding it.
func (s *Server) handleStateClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, r)
		return
	}
	s.state.Reset()
	s.saveAfterChange()
	WriteJSONSafe(w, http.StatusOK, map[string]any{"status": "cleared"})
}

// handleStateExport returns the state in the seed file format.
func (s *Server) handleStateExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="marketplace-playground-state.json"`)
	WriteJSONSafe(w, http.StatusOK, s.state.Export())
}

// handleStateImport replaces the state with the posted export.
func (s *Server) handleStateImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 32*MaxRequestSize)
	var export StateExport
	if err := json.NewDecoder(r.Body).Decode(&export); err != nil {
		WriteError(w, errInvalid("Invalid state export: %v", err))
		return
	}
	if err := s.state.Import(&export); err != nil {
		WriteError(w, errInvalid("%v", err))
		return
	}
	s.saveAfterChange()

	logger.Info("playground state imported")
	WriteJSONSafe(w, http.StatusOK, map[string]any{
		"status":    "imported",
		"resources": s.state.Counts(),
	})
}

// handleStateSave writes the state to the persistence file.
func (s *Server) handleStateSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}
	if s.persistence == nil {
		WriteError(w, errFailedPrecondition("State persistence is disabled."))
		return
	}
	if err := s.persistence.SaveStateWithRetry(); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSONSafe(w, http.StatusOK, map[string]any{
		"status": "saved",
		"file":   s.persistence.config.FilePath,
	})
}

// saveAfterChange persists an administrative change right away.
func (s *Server) saveAfterChange() {
	if s.persistence == nil {
		return
	}
	if err := s.persistence.SaveState(); err != nil {
		logger.WithError(err).Warn("failed to save state")
	}
}
