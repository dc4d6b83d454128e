// Package playground provides health check and server statistics endpoints.
//
// This file implements /health, /stats and /rate-limits for monitoring
// server status: request counters, average response time, resource counts
// and the active rate limit configuration.
package playground

import (
	"net/http"
	"sync/atomic"
	"time"
)

// ServerStats tracks server statistics.
// All counters are atomic for thread-safe access.
type ServerStats struct {
	RequestsTotal     int64     `json:"requests_total"`
	RequestsSuccess   int64     `json:"requests_success"`
	RequestsError     int64     `json:"requests_error"`
	ResponseTimeTotal int64     `json:"response_time_total_ms"`
	ResponseTimeCount int64     `json:"response_time_count"`
	StartTime         time.Time `json:"start_time"`
}

// GetAverageResponseTime returns average response time in milliseconds
func (s *ServerStats) GetAverageResponseTime() float64 {
	if s.ResponseTimeCount == 0 {
		return 0
	}
	return float64(s.ResponseTimeTotal) / float64(s.ResponseTimeCount)
}

func newServerStats() *ServerStats {
	return &ServerStats{StartTime: time.Now()}
}

// recordResponse counts one finished API request.
func (s *ServerStats) recordResponse(statusCode int, responseTimeMs int64) {
	atomic.AddInt64(&s.RequestsTotal, 1)
	if statusCode < http.StatusBadRequest {
		atomic.AddInt64(&s.RequestsSuccess, 1)
	} else {
		atomic.AddInt64(&s.RequestsError, 1)
	}
	atomic.AddInt64(&s.ResponseTimeTotal, responseTimeMs)
	atomic.AddInt64(&s.ResponseTimeCount, 1)
}

// Snapshot returns a copy of the statistics with atomic values loaded
// safely.
func (s *ServerStats) Snapshot() *ServerStats {
	return &ServerStats{
		RequestsTotal:     atomic.LoadInt64(&s.RequestsTotal),
		RequestsSuccess:   atomic.LoadInt64(&s.RequestsSuccess),
		RequestsError:     atomic.LoadInt64(&s.RequestsError),
		ResponseTimeTotal: atomic.LoadInt64(&s.ResponseTimeTotal),
		ResponseTimeCount: atomic.LoadInt64(&s.ResponseTimeCount),
		StartTime:         s.StartTime,
	}
}

// handleHealth returns server status, uptime, request statistics and the
// number of stored resources.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.stats.Snapshot()
	WriteJSONSafe(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"service":        "marketplace-playground",
		"uptime_seconds": int64(time.Since(stats.StartTime).Seconds()),
		"stats": map[string]any{
			"requests_total":       stats.RequestsTotal,
			"requests_success":     stats.RequestsSuccess,
			"requests_error":       stats.RequestsError,
			"response_time_avg_ms": stats.GetAverageResponseTime(),
			"response_time_count":  stats.ResponseTimeCount,
		},
		"resources": s.state.Counts(),
	})
}

// handleStats returns the raw request counters.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.stats.Snapshot()
	WriteJSONSafe(w, http.StatusOK, map[string]any{
		"stats":                stats,
		"response_time_avg_ms": stats.GetAverageResponseTime(),
		"uptime_seconds":       int64(time.Since(stats.StartTime).Seconds()),
	})
}

// handleRateLimitStatus returns the default limit, the built-in endpoint
// limits and any configured overrides.
func (s *Server) handleRateLimitStatus(w http.ResponseWriter, r *http.Request) {
	config := s.rateLimiter.Config()

	endpoints := make([]map[string]any, 0, len(endpointRateLimits))
	for _, limit := range endpointRateLimits {
		endpoints = append(endpoints, map[string]any{
			"endpoint":   limit.Endpoint,
			"method":     limit.Method,
			"limit":      limit.Limit,
			"window_sec": limit.WindowSec,
		})
	}
	overrides := make(map[string]any, len(config.EndpointOverrides))
	for key, o := range config.EndpointOverrides {
		overrides[key] = map[string]any{"limit": o.Limit, "window_sec": o.WindowSec}
	}

	WriteJSONSafe(w, http.StatusOK, map[string]any{
		"enabled": config.Enabled,
		"default_limit": map[string]any{
			"limit":      config.Limit,
			"window_sec": config.WindowSec,
		},
		"endpoints":          endpoints,
		"endpoint_overrides": overrides,
	})
}
