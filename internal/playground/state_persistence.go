// Package playground handles saving and loading playground state to/from disk.
//
// This file manages state persistence: periodic auto-save scheduled with
// cron, retries with exponential backoff for failed saves, and loading the
// saved state on server startup.
package playground

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	// StateSaveMaxRetries is the maximum number of attempts for one save.
	StateSaveMaxRetries = 3
	// StateSaveInitialBackoff is the delay before the first retry.
	StateSaveInitialBackoff = 100 * time.Millisecond
	// maxAutoSaveFailures disables auto-save after this many consecutive
	// failed saves.
	maxAutoSaveFailures = 5
)

// StatePersistence handles saving and loading state to/from disk
type StatePersistence struct {
	config *PersistenceConfig
	state  *State

	mu                  sync.Mutex
	lastSave            time.Time
	scheduler           *cron.Cron
	consecutiveFailures int
}

// NewStatePersistence creates a persistence manager and starts auto-save
// when configured. It returns nil when config is nil.
func NewStatePersistence(state *State, config *PersistenceConfig) (*StatePersistence, error) {
	if config == nil {
		return nil, nil
	}
	sp := &StatePersistence{config: config, state: state}
	if config.AutoSave && config.SaveInterval > 0 {
		if err := sp.startAutoSave(); err != nil {
			return nil, err
		}
	}
	return sp, nil
}

// LoadStateFromFile reads a saved state. It returns nil, nil when the file
// does not exist.
func LoadStateFromFile(config *PersistenceConfig) (*StateExport, error) {
	if config == nil {
		return nil, nil
	}

	data, err := os.ReadFile(config.FilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var export StateExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return &export, nil
}

// SaveStateWithRetry saves the state, retrying with exponential backoff.
func (sp *StatePersistence) SaveStateWithRetry() error {
	var lastErr error
	for attempt := 0; attempt < StateSaveMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(StateSaveInitialBackoff * time.Duration(1<<uint(attempt-1)))
		}
		if lastErr = sp.SaveState(); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", StateSaveMaxRetries, lastErr)
}

// SaveState writes the state to the configured file atomically.
func (sp *StatePersistence) SaveState() error {
	if sp == nil || sp.config == nil {
		return nil
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	data, err := json.MarshalIndent(sp.state.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sp.config.FilePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tempFile := sp.config.FilePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tempFile, sp.config.FilePath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	sp.lastSave = time.Now()
	return nil
}

// LastSave returns the time of the last successful save.
func (sp *StatePersistence) LastSave() time.Time {
	if sp == nil {
		return time.Time{}
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.lastSave
}

func (sp *StatePersistence) startAutoSave() error {
	c := cron.New()
	schedule := fmt.Sprintf("@every %ds", sp.config.SaveInterval)
	if _, err := c.AddFunc(schedule, sp.autoSave); err != nil {
		return fmt.Errorf("invalid auto-save interval %q: %w", schedule, err)
	}
	c.Start()
	sp.scheduler = c
	logger.WithField("interval_sec", sp.config.SaveInterval).Info("state auto-save enabled")
	return nil
}

// autoSave runs one scheduled save and stops the scheduler after too many
// consecutive failures.
func (sp *StatePersistence) autoSave() {
	err := sp.SaveStateWithRetry()

	sp.mu.Lock()
	defer sp.mu.Unlock()
	if err == nil {
		sp.consecutiveFailures = 0
		return
	}
	sp.consecutiveFailures++
	if sp.consecutiveFailures >= maxAutoSaveFailures {
		logger.WithError(err).Errorf("auto-save failed %d consecutive times, disabling auto-save", sp.consecutiveFailures)
		if sp.scheduler != nil {
			go sp.scheduler.Stop()
		}
		return
	}
	logger.WithError(err).Warnf("auto-save failed (attempt %d/%d)", sp.consecutiveFailures, maxAutoSaveFailures)
}

// Stop stops auto-save and performs a final save.
func (sp *StatePersistence) Stop() error {
	if sp == nil {
		return nil
	}
	sp.mu.Lock()
	scheduler := sp.scheduler
	sp.scheduler = nil
	sp.mu.Unlock()
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	return sp.SaveState()
}
