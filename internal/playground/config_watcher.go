package playground

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// configReloadDelay debounces bursts of writes to the config file.
const configReloadDelay = 250 * time.Millisecond

// ConfigWatcher reloads the playground config when its file changes.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	apply   func(*PlaygroundConfig)
	done    chan struct{}
}

// WatchConfig watches the config file at path and calls apply with every
// valid new version. Invalid versions are logged and ignored. The file's
// directory must exist; the file itself may be created later.
func WatchConfig(path string, apply func(*PlaygroundConfig)) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	cw := &ConfigWatcher{
		watcher: watcher,
		path:    absPath,
		apply:   apply,
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (cw *ConfigWatcher) run() {
	defer close(cw.done)
	var timer *time.Timer
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if name, _ := filepath.Abs(event.Name); name != cw.path {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(configReloadDelay, cw.reload)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			logger.WithError(err).Warn("config watcher error")
		}
	}
}

func (cw *ConfigWatcher) reload() {
	config, err := LoadPlaygroundConfigFile(cw.path)
	if err != nil {
		logger.WithError(err).Warn("ignoring invalid playground config")
		return
	}
	cw.apply(config)
	logger.WithField("path", cw.path).Info("reloaded playground configuration")
}

// Close stops watching.
func (cw *ConfigWatcher) Close() error {
	if cw == nil {
		return nil
	}
	err := cw.watcher.Close()
	<-cw.done
	return err
}
