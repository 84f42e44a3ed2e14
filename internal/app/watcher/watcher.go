package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"flip/internal/app/errors"
	"flip/internal/config"
	"flip/internal/config/logger"
)

//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher

// ReloadFunc receives a freshly loaded configuration, or the error that prevented loading it
type ReloadFunc func(cfg *config.Config, err error)

// Watcher reloads the config file when it changes on disk
type Watcher interface {
	Start(ctx context.Context, onReload ReloadFunc) error
	Close()
}

// manager implements the Watcher interface
type manager struct {
	cfg       *config.Config
	path      string
	fsWatcher *fsnotify.Watcher
	debouncer Debouncer
	log       logger.Logger
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a Watcher for the file cfg was loaded from
func NewWatcher(cfg *config.Config, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToWatchConfig, err)
	}

	return &manager{
		cfg:       cfg,
		path:      path,
		fsWatcher: fsw,
		log:       log.WithComponent("WATCHER"),
	}, nil
}

// Start watches the config file's directory until ctx is done or Close is called.
// The directory is watched rather than the file so editors that replace files atomically are seen.
func (m *manager) Start(ctx context.Context, onReload ReloadFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.ErrFailedToWatchConfig
	}

	if err := m.fsWatcher.Add(filepath.Dir(m.path)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWatchConfig, err)
	}

	m.debouncer = NewDebouncer(m.cfg.Watch.Debounce, func(ops fsnotify.Op) {
		m.reload(ops, onReload)
	})

	go m.processEvents()

	go func() {
		<-ctx.Done()
		m.Close()
	}()

	m.log.Info().Msgf("Watching config file %s", m.path)

	return nil
}

// Close stops the watcher and releases resources
func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true

	if m.debouncer != nil {
		m.debouncer.Stop()
	}

	m.fsWatcher.Close()
}

// processEvents forwards events for the config file to the debouncer
func (m *manager) processEvents() {
	for {
		select {
		case event, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}

			if m.isConfigEvent(event) {
				m.debouncer.Trigger(event.Op)
			}
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}

			m.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// isConfigEvent reports whether the event touches the watched file's contents
func (m *manager) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != m.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// reload loads the file again and hands the result on
func (m *manager) reload(ops fsnotify.Op, onReload ReloadFunc) {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()

	if closed {
		return
	}

	m.log.Debug().Msgf("Config file changed (%s), reloading", ops)

	cfg, err := config.Load(m.path)
	if err != nil {
		m.log.Warn().Err(err).Msg("Failed to reload config")
		onReload(nil, err)

		return
	}

	cfg.Watch = m.cfg.Watch
	onReload(cfg, nil)
}
