package content

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Store holds the current site copy. It is shared by every session, so all
// access goes through the mutex.
type Store struct {
	mu      sync.RWMutex
	path    string
	site    Site
	version uint64
	logger  *log.Logger
}

// NewStore loads path into a new Store. An empty path serves the defaults.
func NewStore(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{path: path, site: Default(), logger: logger}
	if path == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Backed reports whether the store reads from a content file. A store
// without one only ever serves the defaults.
func (s *Store) Backed() bool { return s.path != "" }

// Site returns the current copy and its version.
func (s *Store) Site() (Site, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site, s.version
}

// Version returns the number of successful reloads.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Reload re-reads the content file. On error the previous copy is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.site = site
	s.version++
	v := s.version
	s.mu.Unlock()

	s.logger.Info("content loaded", "path", s.path, "version", v)
	return nil
}

// Watch reloads the content file whenever it changes until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating content watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watching %s: %w", s.path, err)
	}

	target := filepath.Clean(s.path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if err := s.Reload(); err != nil {
					s.logger.Error("content reload failed", "err", err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("content watcher", "err", err)
			}
		}
	}()
	return nil
}
