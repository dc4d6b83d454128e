// Package playground provides a local HTTP server that simulates the
// Authorized Buyers Marketplace API (v1) for testing and development. It
// runs entirely on the local machine and needs no Google credentials.
//
// Key Features:
//   - The buyers.clients, clients.users, proposals, proposals.deals,
//     finalizedDeals, auctionPackages and publisherProfiles resources
//   - Stateful operations with in-memory state seeded from configs/seed.json
//   - Optional file-based state persistence with periodic auto-save
//   - Google-style error envelopes ({"error":{"code","message","status"}})
//   - Configurable bearer token validation and rate limiting simulation
//   - Live reload of ~/.marketplace-playground/config.json
//
// Usage:
//
//	server, err := playground.NewServer(8080, "localhost")
//	...
//	server.Start()
//
// Then point the samples at it:
//
//	marketplace --base-url http://localhost:8080 --token test clients list
package playground

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Server represents the playground API server.
// It manages HTTP server lifecycle, state, configuration and persistence.
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	state       *State
	persistence *StatePersistence
	rateLimiter *RateLimiter
	stats       *ServerStats
	cfg         atomic.Pointer[PlaygroundConfig]
	port        int
	host        string
	activeReqs  int64

	watcherMu sync.Mutex
	watcher   *ConfigWatcher
}

// NewServer creates a playground server using the user config file, or the
// embedded default when there is none.
func NewServer(port int, host string) (*Server, error) {
	config, err := LoadPlaygroundConfig()
	if err != nil {
		logger.WithError(err).Warn("failed to load playground config, using defaults")
		if config, err = LoadDefaultPlaygroundConfig(); err != nil {
			return nil, err
		}
	}
	return NewServerWithConfig(port, host, config)
}

// NewServerWithConfig creates a playground server with the given config.
// The state is seeded, then replaced by the persisted state when
// persistence is enabled and a state file exists.
func NewServerWithConfig(port int, host string, config *PlaygroundConfig) (*Server, error) {
	if config == nil {
		config = &PlaygroundConfig{}
	}

	state, err := NewSeededState(config)
	if err != nil {
		return nil, err
	}

	var persistence *StatePersistence
	if pc := config.GetPersistenceConfig(); pc != nil {
		export, err := LoadStateFromFile(pc)
		if err != nil {
			return nil, err
		}
		if export != nil {
			if err := state.Import(export); err != nil {
				return nil, fmt.Errorf("failed to import persisted state: %w", err)
			}
			logger.WithField("path", pc.FilePath).Info("loaded persisted state")
		}
		if persistence, err = NewStatePersistence(state, pc); err != nil {
			return nil, err
		}
	}

	s := &Server{
		state:       state,
		persistence: persistence,
		stats:       newServerStats(),
		port:        port,
		host:        host,
	}
	s.cfg.Store(config)
	s.rateLimiter = NewRateLimiterWithGetter(func() *RateLimitConfig {
		return s.config().GetRateLimitConfig()
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/rate-limits", s.handleRateLimitStatus)
	mux.HandleFunc("/config", s.handleConfigGet)
	mux.HandleFunc("/config/update", s.handleConfigUpdate)
	mux.HandleFunc("/config/save", s.handleConfigSave)
	mux.HandleFunc("/state", s.handleStateClear)
	mux.HandleFunc("/state/reset", s.handleStateReset)
	mux.HandleFunc("/state/export", s.handleStateExport)
	mux.HandleFunc("/state/import", s.handleStateImport)
	mux.HandleFunc("/state/save", s.handleStateSave)
	mux.Handle("/v1/", s.apiMiddleware(http.HandlerFunc(s.handleAPI)))
	s.handler = mux

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) config() *PlaygroundConfig {
	return s.cfg.Load()
}

// SetConfig replaces the server's configuration. Rate limiting and
// authentication use the new config from the next request on.
func (s *Server) SetConfig(config *PlaygroundConfig) {
	if config == nil {
		config = &PlaygroundConfig{}
	}
	s.cfg.Store(config)
}

// Start starts the playground server and watches the user config file.
// It blocks until the server is stopped.
func (s *Server) Start() error {
	s.watchUserConfig()

	logger.WithFields(logrus.Fields{
		"url":         s.GetURL(),
		"persistence": s.persistence != nil,
	}).Info("playground server starting")
	logger.Infof("point the samples at the playground with --base-url %s", s.GetURL())

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) watchUserConfig() {
	path, err := ConfigPath()
	if err != nil {
		return
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		logger.WithField("dir", filepath.Dir(path)).Debug("config directory missing, not watching")
		return
	}
	watcher, err := WatchConfig(path, s.SetConfig)
	if err != nil {
		logger.WithError(err).Warn("failed to watch playground config")
		return
	}
	s.watcherMu.Lock()
	s.watcher = watcher
	s.watcherMu.Unlock()
}

// Stop gracefully stops the playground server.
// It waits for active requests to complete (up to 30 seconds or until ctx
// is done), saves the state when persistence is enabled, then shuts down.
func (s *Server) Stop(ctx context.Context) error {
	logger.Info("stopping playground server")

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.Now().Add(30 * time.Second)

wait:
	for atomic.LoadInt64(&s.activeReqs) > 0 && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			break wait
		case <-ticker.C:
		}
	}
	if active := atomic.LoadInt64(&s.activeReqs); active > 0 {
		logger.Warnf("%d active request(s) still in progress, proceeding with shutdown", active)
	}

	s.watcherMu.Lock()
	if err := s.watcher.Close(); err != nil {
		logger.WithError(err).Debug("failed to close config watcher")
	}
	s.watcher = nil
	s.watcherMu.Unlock()

	if err := s.persistence.Stop(); err != nil {
		logger.WithError(err).Warn("failed to save state")
	}
	return s.httpServer.Shutdown(ctx)
}

// GetURL returns the server URL.
func (s *Server) GetURL() string {
	return fmt.Sprintf("http://%s:%d", s.host, s.port)
}

// GetState returns the server state.
func (s *Server) GetState() *State {
	return s.state
}
