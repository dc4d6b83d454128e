// Package playground defines endpoint-specific rate limit configurations.
//
// This file contains the per-endpoint quotas of the simulated Marketplace
// API. Endpoints are identified by their route pattern, the request path
// with resource IDs replaced by "*" (for example
// "/v1/buyers/*/proposals/*:accept"). Config overrides take precedence over
// the built-in table, and unknown endpoints fall back to the default limit.
package playground

import (
	"strings"
)

// EndpointRateLimit defines rate limits for specific endpoints
type EndpointRateLimit struct {
	Limit     int    // Number of requests allowed
	WindowSec int    // Time window in seconds
	Endpoint  string // Route pattern, e.g. "/v1/buyers/*/clients"
	Method    string // HTTP method; empty matches all methods
}

// GetEndpointRateLimit returns the rate limit of an endpoint. Config
// overrides are checked first (exact "METHOD:PATTERN", then "PATTERN", then
// pattern prefixes), then the built-in table. It returns nil when the
// default limit applies.
func GetEndpointRateLimit(method, path string, config *RateLimitConfig) *EndpointRateLimit {
	if method == "HEAD" {
		method = "GET"
	}
	pattern := routePattern(normalizePath(path))

	if config != nil && len(config.EndpointOverrides) > 0 {
		if o, ok := config.EndpointOverrides[method+":"+pattern]; ok {
			return &EndpointRateLimit{Endpoint: pattern, Method: method, Limit: o.Limit, WindowSec: o.WindowSec}
		}
		if o, ok := config.EndpointOverrides[pattern]; ok {
			return &EndpointRateLimit{Endpoint: pattern, Method: method, Limit: o.Limit, WindowSec: o.WindowSec}
		}
		longest := ""
		for key := range config.EndpointOverrides {
			if strings.HasPrefix(key, "/") && strings.HasPrefix(pattern, key) && len(key) > len(longest) {
				longest = key
			}
		}
		if longest != "" {
			o := config.EndpointOverrides[longest]
			return &EndpointRateLimit{Endpoint: pattern, Method: method, Limit: o.Limit, WindowSec: o.WindowSec}
		}
	}

	var best *EndpointRateLimit
	for i := range endpointRateLimits {
		limit := &endpointRateLimits[i]
		if limit.Method != "" && limit.Method != method {
			continue
		}
		if limit.Endpoint == pattern {
			return limit
		}
		if strings.HasPrefix(pattern, limit.Endpoint+"/") && (best == nil || len(limit.Endpoint) > len(best.Endpoint)) {
			best = limit
		}
	}
	return best
}

// normalizePath strips the query string and any trailing slash.
func normalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}

// endpointRateLimits are the built-in per-minute quotas. Read endpoints
// share a generous quota; negotiation actions are tighter.
var endpointRateLimits = []EndpointRateLimit{
	{Endpoint: "/v1/buyers/*/clients", Method: "GET", Limit: 600, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/clients", Method: "POST", Limit: 60, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/clients", Method: "PATCH", Limit: 60, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/clients/*/users", Method: "DELETE", Limit: 60, WindowSec: 60},

	{Endpoint: "/v1/buyers/*/proposals", Method: "GET", Limit: 600, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/proposals", Method: "PATCH", Limit: 60, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/proposals", Method: "POST", Limit: 60, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/proposals:sendRfp", Method: "POST", Limit: 20, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/proposals/*/deals:batchUpdate", Method: "POST", Limit: 20, WindowSec: 60},

	{Endpoint: "/v1/buyers/*/finalizedDeals", Method: "GET", Limit: 600, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/finalizedDeals", Method: "POST", Limit: 60, WindowSec: 60},

	{Endpoint: "/v1/buyers/*/auctionPackages", Method: "GET", Limit: 600, WindowSec: 60},
	{Endpoint: "/v1/buyers/*/auctionPackages", Method: "POST", Limit: 60, WindowSec: 60},

	{Endpoint: "/v1/buyers/*/publisherProfiles", Method: "GET", Limit: 600, WindowSec: 60},
}

// GetDefaultRateLimit returns the default rate limit configuration
func GetDefaultRateLimit() *RateLimitConfig {
	return &RateLimitConfig{
		Limit:     60,
		WindowSec: 60,
	}
}
