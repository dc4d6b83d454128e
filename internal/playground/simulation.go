// Package playground implements rate limiting simulation.
//
// This file provides the RateLimiter type that tracks requests per endpoint
// and per API credentials (the bearer token). It enforces limits, reports
// the remaining quota and the reset time, and answers exhausted quotas with
// the API's 429 RESOURCE_EXHAUSTED error.
package playground

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// RateLimiterCleanupInterval triggers a sweep of expired entries every
	// this many tracked keys.
	RateLimiterCleanupInterval = 100
	// RateLimiterCleanupMaxEntries bounds the entries checked per sweep.
	RateLimiterCleanupMaxEntries = 50

	defaultCredentials = "anonymous"
)

// RateLimiter manages rate limiting simulation.
// Requests are tracked per "credentials:endpoint" key, so every endpoint
// has its own window for each caller.
type RateLimiter struct {
	configGetter func() *RateLimitConfig // Current config; allows reloading
	requests     map[string][]time.Time
	mu           sync.Mutex
}

// NewRateLimiter creates a rate limiter with a static config
func NewRateLimiter(config *RateLimitConfig) *RateLimiter {
	if config == nil {
		config = &RateLimitConfig{Enabled: false}
	}
	return NewRateLimiterWithGetter(func() *RateLimitConfig { return config })
}

// NewRateLimiterWithGetter creates a rate limiter that reads its config on
// every check.
func NewRateLimiterWithGetter(configGetter func() *RateLimitConfig) *RateLimiter {
	if configGetter == nil {
		configGetter = func() *RateLimitConfig { return &RateLimitConfig{Enabled: false} }
	}
	return &RateLimiter{
		configGetter: configGetter,
		requests:     make(map[string][]time.Time),
	}
}

// Config returns the limiter's current configuration.
func (rl *RateLimiter) Config() *RateLimitConfig {
	if config := rl.configGetter(); config != nil {
		return config
	}
	return &RateLimitConfig{Enabled: false}
}

// CheckRateLimit checks a request against the limiter's config.
// It returns whether the request is allowed, the remaining quota and the
// window reset time.
func (rl *RateLimiter) CheckRateLimit(credentials, endpoint string) (bool, int, time.Time) {
	config := rl.Config()
	return rl.check(credentials, endpoint, config.Enabled, config.Limit, config.WindowSec)
}

// CheckEndpoint checks a request against the endpoint's own limit when one
// is configured, and the limiter's default otherwise.
func (rl *RateLimiter) CheckEndpoint(credentials, method, path string) (allowed bool, limit, remaining int, reset time.Time) {
	config := rl.Config()
	limit, window := config.Limit, config.WindowSec
	key := routePattern(normalizePath(path))
	if ep := GetEndpointRateLimit(method, path, config); ep != nil {
		limit, window = ep.Limit, ep.WindowSec
		key = method + " " + ep.Endpoint
	}
	allowed, remaining, reset = rl.check(credentials, key, config.Enabled, limit, window)
	return allowed, limit, remaining, reset
}

func (rl *RateLimiter) check(credentials, endpoint string, enabled bool, limit, windowSec int) (bool, int, time.Time) {
	now := time.Now()
	window := time.Duration(windowSec) * time.Second
	if !enabled {
		return true, limit, now.Add(window)
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := credentials + ":" + endpoint
	windowStart := now.Add(-window)

	requests := rl.requests[key]
	valid := make([]time.Time, 0, len(requests))
	for _, t := range requests {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= limit {
		if len(valid) == 0 {
			delete(rl.requests, key)
			return false, 0, now.Add(window)
		}
		rl.requests[key] = valid
		return false, 0, valid[0].Add(window)
	}

	valid = append(valid, now)
	rl.requests[key] = valid

	if len(rl.requests)%RateLimiterCleanupInterval == 0 {
		rl.cleanupExpiredEntriesLimited(windowStart, RateLimiterCleanupMaxEntries)
	}
	return true, limit - len(valid), now.Add(window)
}

// cleanupExpiredEntriesLimited removes at most maxEntries keys whose
// requests all fell out of the window.
func (rl *RateLimiter) cleanupExpiredEntriesLimited(windowStart time.Time, maxEntries int) {
	checked := 0
	for key, requests := range rl.requests {
		if checked >= maxEntries {
			break
		}
		checked++

		expired := true
		for _, t := range requests {
			if t.After(windowStart) {
				expired = false
				break
			}
		}
		if expired {
			delete(rl.requests, key)
		}
	}
}

// GetAPICredentials extracts the bearer token from the request.
// Requests without one share an anonymous quota.
func GetAPICredentials(r *http.Request) string {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		return defaultCredentials
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if ok && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}
	return authHeader
}

// addRateLimitHeaders reports the quota state of the current request.
func addRateLimitHeaders(w http.ResponseWriter, limit, remaining int, reset time.Time) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
}

// writeRateLimitError answers a request that exhausted its quota.
func writeRateLimitError(w http.ResponseWriter, limit int, reset time.Time) {
	addRateLimitHeaders(w, limit, 0, reset)
	retryAfter := int(time.Until(reset).Seconds()) + 1
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	WriteError(w, &APIError{
		Code:    http.StatusTooManyRequests,
		Status:  "RESOURCE_EXHAUSTED",
		Message: "Quota exceeded for quota metric 'Requests' of service 'authorizedbuyersmarketplace.googleapis.com'.",
	})
}
