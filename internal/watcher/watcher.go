// Package watcher notices when the source dataset changes on disk.
// It only reports the change; the cached dataset is never reloaded
// automatically. Refresh stays an explicit user action.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	path         string
	mu           sync.Mutex
	size         int64
	modTime      time.Time
	pollInterval time.Duration
	onChange     func()
	stop         chan struct{}
	wg           sync.WaitGroup
}

func New(path string, pollInterval time.Duration, onChange func()) *Watcher {
	return &Watcher{
		path:         path,
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
}

// Mark records the file's current size and mtime as the known state.
// Call after each successful load so only later writes count as changes.
func (w *Watcher) Mark() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.size = info.Size()
	w.modTime = info.ModTime()
	w.mu.Unlock()
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start() error {
	// Try fsnotify first; watch the parent directory so atomic
	// replace-by-rename writes are seen too.
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		_ = fsw.Add(filepath.Dir(w.path))

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if filepath.Clean(event.Name) == filepath.Clean(w.path) &&
						(event.Op&fsnotify.Write != 0 || event.Op&fsnotify.Create != 0 || event.Op&fsnotify.Rename != 0) {
						w.check()
					}
				case <-w.stop:
					fsw.Close()
					return
				}
			}
		}()
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.check()
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *Watcher) check() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}

	w.mu.Lock()
	changed := info.Size() != w.size || info.ModTime().After(w.modTime)
	if changed {
		w.size = info.Size()
		w.modTime = info.ModTime()
	}
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange()
	}
}
