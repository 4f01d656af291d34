// Package store caches the parsed dataset for the lifetime of the
// process. The source file is read at most once until the cache is
// explicitly invalidated; there is no automatic reload on file change.
package store

import (
	"os"
	"sync"
	"time"

	"github.com/anu6598/otp-breach/internal/parser"
)

type Store struct {
	path string

	mu       sync.RWMutex
	ds       *parser.Dataset
	loadedAt time.Time
	modTime  time.Time // source mtime captured at load
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the source file path.
func (s *Store) Path() string { return s.path }

// Dataset returns the cached dataset, loading it on first use.
// The returned dataset is read-only after population and safe to
// share across readers without further synchronization.
func (s *Store) Dataset() (*parser.Dataset, error) {
	s.mu.RLock()
	if s.ds != nil {
		ds := s.ds
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds != nil {
		return s.ds, nil
	}
	return s.loadLocked()
}

// Invalidate drops the cached dataset. The next Dataset call re-reads
// the source file.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.ds = nil
	s.mu.Unlock()
}

// Refresh re-reads the source file unconditionally, replacing the
// cache only on success. A failed refresh leaves the previous dataset
// intact so one bad write cannot blank the dashboard.
func (s *Store) Refresh() (*parser.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.ds
	ds, err := s.loadLocked()
	if err != nil {
		s.ds = prev
		return nil, err
	}
	return ds, nil
}

// Stale reports whether the source file has changed on disk since the
// cached load. It never triggers a reload itself; invalidation stays
// explicit.
func (s *Store) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ds == nil {
		return false
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return false
	}
	return info.ModTime().After(s.modTime)
}

// LoadedAt returns when the cached dataset was read. Zero when nothing
// is cached yet.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *Store) loadLocked() (*parser.Dataset, error) {
	ds, err := parser.ParseFile(s.path)
	if err != nil {
		s.ds = nil
		return nil, err
	}
	s.ds = ds
	s.loadedAt = time.Now()
	if info, statErr := os.Stat(s.path); statErr == nil {
		s.modTime = info.ModTime()
	}
	return ds, nil
}
