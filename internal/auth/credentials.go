// Package auth builds the authenticated HTTP client used by the samples.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope grants access to the Authorized Buyers Marketplace API.
const Scope = "https://www.googleapis.com/auth/authorized-buyers-marketplace"

// ErrNoCredentials is returned when neither a key file nor a token is set.
var ErrNoCredentials = errors.New("no credentials: set --key-file or --token")

// Options selects a credential source. Token wins over KeyFile.
type Options struct {
	KeyFile string
	Token   string
}

// TokenSource returns the token source described by opts.
func TokenSource(ctx context.Context, opts Options) (oauth2.TokenSource, error) {
	if opts.Token != "" {
		return StaticTokenSource(opts.Token), nil
	}
	if opts.KeyFile == "" {
		return nil, ErrNoCredentials
	}
	data, err := os.ReadFile(opts.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %q (did you specify a valid path to a service account key file?): %w", opts.KeyFile, err)
	}
	creds, err := CredentialsFromJSON(ctx, data)
	if err != nil {
		return nil, err
	}
	return creds.TokenSource, nil
}

// CredentialsFromJSON parses a service account key with the Marketplace scope.
func CredentialsFromJSON(ctx context.Context, data []byte) (*google.Credentials, error) {
	creds, err := google.CredentialsFromJSON(ctx, data, Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	return creds, nil
}

// StaticTokenSource returns a source that always yields the bearer token.
func StaticTokenSource(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

// NewHTTPClient returns an *http.Client that authorizes every request with
// the credentials described by opts.
func NewHTTPClient(ctx context.Context, opts Options) (*http.Client, error) {
	ts, err := TokenSource(ctx, opts)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}
