package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch starts a goroutine observing the backing file's directory and flags
// writes to the file made by other programs. Save consults the flag to warn
// before overwriting. The watcher stops when ctx is canceled or Close runs.
//
// The directory, not the file, is watched: spreadsheet editors typically
// replace the file on save, which would silently detach a file watch.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(s.path), err)
	}
	s.watcher = w

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
				if ev.Name != s.path || s.saving.Load() {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					s.externallyDirty.Store(true)
					s.log.Warn(ctx, "backing file modified by another program", "path", s.path, "op", ev.Op.String())
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Error(ctx, "file watcher error", "error", err)
			}
		}
	}()
	return nil
}

// ExternallyModified reports whether the backing file changed on disk since
// the last load or save.
func (s *Store) ExternallyModified() bool { return s.externallyDirty.Load() }

// Close stops the watcher if one is running.
func (s *Store) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
}
