package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Manager holds the live config and reloads it when the file changes.
type Manager struct {
	mu           sync.RWMutex
	current      *AppConfig
	path         string
	onUpdateFunc func(*AppConfig)
}

func NewManager(path string) (*Manager, error) {
	mgr := &Manager{path: path}

	if err := mgr.Reload(); err != nil {
		return nil, err
	}

	go mgr.startWatcher()

	return mgr, nil
}

func (m *Manager) Get() AppConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.current
}

func (m *Manager) OnUpdate(f func(*AppConfig)) {
	m.mu.Lock()
	m.onUpdateFunc = f
	m.mu.Unlock()
}

func (m *Manager) Reload() error {
	newConfig, err := LoadAppConfig(m.path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = newConfig
	onUpdate := m.onUpdateFunc
	m.mu.Unlock()

	if onUpdate != nil {
		onUpdate(newConfig)
	}
	return nil
}

func (m *Manager) startWatcher() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to start config watcher", "error", err)
		return
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors replace the file rather than write it
	// in place, which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(m.path)); err != nil {
		slog.Error("failed to watch config directory", "path", m.path, "error", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(m.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := m.Reload(); err != nil {
				slog.Warn("config reload failed, keeping previous config", "error", err)
				continue
			}
			slog.Info("config reloaded", "path", m.path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("config watcher error", "error", err)
		}
	}
}
