// Package playground validates request authentication.
//
// The playground accepts OAuth 2.0 bearer tokens. Without a token list in
// the config any non-empty token passes, which is what the samples send
// when given a static token. Validation can be disabled entirely.
package playground

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// ValidateAuth checks the request's bearer token against authConfig.
// It returns nil for an acceptable request and the error to answer
// otherwise.
func ValidateAuth(r *http.Request, authConfig *AuthConfig) *APIError {
	if authConfig != nil && authConfig.DisableValidation {
		return nil
	}

	token, ok := bearerToken(r)
	if !ok {
		return &APIError{
			Code:    http.StatusUnauthorized,
			Status:  "UNAUTHENTICATED",
			Message: "Request is missing required authentication credential. Expected OAuth 2 access token.",
		}
	}
	if authConfig == nil || len(authConfig.Tokens) == 0 {
		return nil
	}
	for _, accepted := range authConfig.Tokens {
		if subtle.ConstantTimeCompare([]byte(token), []byte(accepted)) == 1 {
			return nil
		}
	}
	return &APIError{
		Code:    http.StatusUnauthorized,
		Status:  "UNAUTHENTICATED",
		Message: "Request had invalid authentication credentials. Expected OAuth 2 access token.",
	}
}

// bearerToken returns the token of a "Bearer <token>" Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
