// Package playground provides HTTP middleware for request processing.
//
// This file contains the middleware chain wrapped around every API request:
// request IDs, CORS headers, response timing, active request tracking,
// authentication and rate limiting. The responseTimeWriter wraps
// http.ResponseWriter to capture the status and duration for statistics.
package playground

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// MaxRequestSize caps request bodies.
	MaxRequestSize = 1 << 20
	// requestTimeout bounds the handling of one request.
	requestTimeout = 30 * time.Second
)

// responseTimeWriter wraps http.ResponseWriter to track the response time
// and status code.
type responseTimeWriter struct {
	http.ResponseWriter
	startTime      time.Time
	written        bool
	statusCode     int
	responseTimeMs int64
}

// WriteHeader captures the response time before writing headers.
func (w *responseTimeWriter) WriteHeader(statusCode int) {
	if w.written {
		return
	}
	w.responseTimeMs = time.Since(w.startTime).Milliseconds()
	w.statusCode = statusCode
	w.Header().Set("X-Response-Time-Ms", strconv.FormatInt(w.responseTimeMs, 10))
	w.written = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write ensures the response time is set even if WriteHeader wasn't called.
func (w *responseTimeWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// AddRequestID adds a unique request ID to the response headers.
// If a request ID already exists in the request header, it is reused.
func AddRequestID(w http.ResponseWriter, r *http.Request) string {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", requestID)
	return requestID
}

// AddCORSHeaders adds CORS headers when the request carries an Origin.
func AddCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// HandleOptions handles OPTIONS requests for CORS preflight.
func HandleOptions(w http.ResponseWriter, r *http.Request) {
	AddCORSHeaders(w, r)
	w.WriteHeader(http.StatusNoContent)
}

// apiMiddleware wraps the API router with request tracking, authentication
// and rate limiting.
func (s *Server) apiMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.activeReqs, 1)
		defer atomic.AddInt64(&s.activeReqs, -1)

		if r.Method == http.MethodOptions {
			HandleOptions(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		r = r.WithContext(ctx)

		requestID := AddRequestID(w, r)
		AddCORSHeaders(w, r)
		r.Body = http.MaxBytesReader(w, r.Body, MaxRequestSize)

		rw := &responseTimeWriter{ResponseWriter: w, startTime: time.Now(), statusCode: http.StatusOK}
		defer func() {
			s.stats.recordResponse(rw.statusCode, rw.responseTimeMs)
			logger.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rw.statusCode,
				"ms":         rw.responseTimeMs,
			}).Debug("handled request")
		}()

		allowed, limit, remaining, reset := s.rateLimiter.CheckEndpoint(GetAPICredentials(r), r.Method, r.URL.Path)
		if !allowed {
			writeRateLimitError(rw, limit, reset)
			return
		}
		if s.rateLimiter.Config().Enabled {
			addRateLimitHeaders(rw, limit, remaining, reset)
		}

		if apiErr := ValidateAuth(r, s.config().GetAuthConfig()); apiErr != nil {
			WriteError(rw, apiErr)
			return
		}

		next.ServeHTTP(rw, r)
	})
}
