// Package playground provides utility functions for generating HTTP responses.
//
// This file contains helpers for writing JSON responses and Google-style
// error envelopes ({"error":{"code","message","status"}}), and the APIError
// type handlers return to select one.
package playground

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error answered to the client with a specific HTTP status.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, e.Status, e.Message)
}

func errNotFound(kind, name string) *APIError {
	return &APIError{Code: http.StatusNotFound, Status: "NOT_FOUND", Message: fmt.Sprintf("%s not found: %s", kind, name)}
}

func errInvalid(format string, args ...any) *APIError {
	return &APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT", Message: fmt.Sprintf(format, args...)}
}

func errFailedPrecondition(format string, args ...any) *APIError {
	return &APIError{Code: http.StatusBadRequest, Status: "FAILED_PRECONDITION", Message: fmt.Sprintf(format, args...)}
}

func errAborted(format string, args ...any) *APIError {
	return &APIError{Code: http.StatusConflict, Status: "ABORTED", Message: fmt.Sprintf(format, args...)}
}

func errAlreadyExists(format string, args ...any) *APIError {
	return &APIError{Code: http.StatusConflict, Status: "ALREADY_EXISTS", Message: fmt.Sprintf(format, args...)}
}

// fallbackError is written when even the error envelope cannot be encoded.
const fallbackError = `{"error":{"code":500,"message":"Internal error encountered.","status":"INTERNAL"}}`

// WriteJSONSafe writes a JSON response and handles errors.
// If encoding fails, a fallback 500 envelope is sent instead.
func WriteJSONSafe(w http.ResponseWriter, statusCode int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.WithError(err).Error("failed to encode JSON response")
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fallbackError + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.WithError(err).Debug("failed to write response")
	}
}

// WriteError writes err as a Google-style error envelope. Errors that are
// not *APIError become 500 INTERNAL.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		logger.WithError(err).Error("internal error")
		apiErr = &APIError{Code: http.StatusInternalServerError, Status: "INTERNAL", Message: "Internal error encountered."}
	}
	WriteJSONSafe(w, apiErr.Code, map[string]any{"error": apiErr})
}
