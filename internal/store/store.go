// Package store is the record-store engine: it owns the in-memory table for
// a session, keys it by the bound ID column, and runs every save through the
// backup-then-lock-then-write path.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cmardones/rosterbase/internal/backup"
	"github.com/cmardones/rosterbase/internal/codec"
	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/lockfile"
	"github.com/cmardones/rosterbase/internal/logging"
	"github.com/cmardones/rosterbase/internal/roles"
	"github.com/cmardones/rosterbase/internal/table"
	"github.com/cmardones/rosterbase/internal/validate"
	"github.com/fsnotify/fsnotify"
)

// ErrIDNotBound is returned by key operations when no column carries the ID
// role this session.
var ErrIDNotBound = errors.New("ID role is not bound")

// Store manages one backing file for the lifetime of a session. It is not
// safe for concurrent use; the table is exclusively owned by the running
// process and only the watcher goroutine runs alongside, touching nothing
// but an atomic flag.
type Store struct {
	path      string
	codec     codec.Codec
	lock      *lockfile.Lock
	backupDir string
	log       logging.Logger

	tbl     *table.Table
	binding roles.Binding

	watcher         *fsnotify.Watcher
	saving          atomic.Bool
	externallyDirty atomic.Bool
}

// New builds a store for the backing file at path. backupDir may be empty,
// which selects the sibling "backups" directory.
func New(path string, lockTimeout time.Duration, backupDir string, log logging.Logger) (*Store, error) {
	c, err := codec.ForPath(path)
	if err != nil {
		return nil, err
	}
	if backupDir == "" {
		backupDir = backup.DefaultDir(path)
	}
	return &Store{
		path:      path,
		codec:     c,
		lock:      lockfile.New(path, lockTimeout, log),
		backupDir: backupDir,
		log:       log,
	}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Table exposes the in-memory table. Callers must not mutate it directly;
// it is read by the search and pagination views.
func (s *Store) Table() *table.Table { return s.tbl }

// Columns returns the column names of the loaded table.
func (s *Store) Columns() []string { return s.tbl.Columns }

// Binding returns the session's role binding.
func (s *Store) Binding() roles.Binding { return s.binding }

// Bind fixes the role binding for the session. It is set once, after load,
// before the CRUD loop starts.
func (s *Store) Bind(b roles.Binding) { s.binding = b }

// Load reads the backing file into memory. A missing file surfaces as an
// fs.ErrNotExist-wrapping error so the caller can offer the create-new flow.
// Legacy rows that would fail today's validators are kept as-is; validation
// applies to writes only.
func (s *Store) Load(ctx context.Context) error {
	t, err := s.codec.Read(s.path)
	if err != nil {
		s.log.Error(ctx, "load failed", "path", s.path, "error", err)
		return err
	}
	s.tbl = t
	s.externallyDirty.Store(false)
	s.log.Info(ctx, "file loaded", "path", s.path, "columns", len(t.Columns), "rows", t.Len())
	return nil
}

// Create initializes a new backing file with the given column set and an
// empty table, writing it out immediately. An empty column set is a fatal
// schema error.
func (s *Store) Create(ctx context.Context, columns []string) error {
	t, err := table.New(columns)
	if err != nil {
		return err
	}
	if err := s.codec.Write(s.path, t); err != nil {
		s.log.Error(ctx, "could not create new file", "path", s.path, "error", err)
		return err
	}
	s.tbl = t
	s.log.Info(ctx, "new file created", "path", s.path, "columns", columns)
	return nil
}

// validatorFor returns the rule guarding col, if the column is bound.
func (s *Store) validatorFor(col string) (validate.Validator, bool) {
	role, ok := s.binding.RoleFor(col)
	if !ok {
		return validate.Validator{}, false
	}
	return role.Validator(), true
}

// Insert appends a row after checking every bound column. The ID value is
// normalized and stored in canonical hyphenated form. On violation nothing
// is appended and the error wraps common.ErrValidation with the reason.
func (s *Store) Insert(ctx context.Context, row table.Row) error {
	canonical := make(table.Row, len(s.tbl.Columns))
	for _, col := range s.tbl.Columns {
		value := row[col]
		if v, bound := s.validatorFor(col); bound {
			if !v.Accepts(value) {
				return fmt.Errorf("%w: column %q: %s", common.ErrValidation, col, v.Reason)
			}
			value = v.Canonical(value)
		}
		canonical[col] = value
	}
	s.tbl.Append(canonical)
	s.log.Info(ctx, "record added", "row", s.tbl.Len()-1)
	return nil
}

// FindByKey locates the first row whose ID column equals key after both
// sides are normalized, so formatting differences cannot cause false
// negatives. Duplicate keys are tolerated: the first match wins and a
// warning is logged. A miss returns common.ErrNotFound.
func (s *Store) FindByKey(ctx context.Context, key string) (int, error) {
	idCol, ok := s.binding.Column(roles.ID)
	if !ok {
		return 0, ErrIDNotBound
	}

	want := validate.NormalizeRUT(key)
	found := -1
	matches := 0
	for i := range s.tbl.Rows {
		cell, _ := s.tbl.Cell(i, idCol)
		if validate.NormalizeRUT(cell) == want {
			if found < 0 {
				found = i
			}
			matches++
		}
	}
	if found < 0 {
		return 0, fmt.Errorf("%w: %s = %s", common.ErrNotFound, idCol, key)
	}
	if matches > 1 {
		s.log.Warn(ctx, "duplicate keys, using first match", "column", idCol, "key", key, "matches", matches)
	}
	return found, nil
}

// UpdateCell replaces one cell, re-validating when the column is bound.
// An invalid value leaves the cell unchanged (reject-and-retain) and the
// returned error wraps common.ErrValidation.
func (s *Store) UpdateCell(ctx context.Context, idx int, col, value string) error {
	if v, bound := s.validatorFor(col); bound {
		if !v.Accepts(value) {
			return fmt.Errorf("%w: column %q: %s", common.ErrValidation, col, v.Reason)
		}
		value = v.Canonical(value)
	}
	if err := s.tbl.SetCell(idx, col, value); err != nil {
		return err
	}
	s.log.Info(ctx, "record updated", "row", idx, "column", col)
	return nil
}

// DeleteAt removes a row by its current index; later rows shift down, so
// cached indices are invalid after this returns.
func (s *Store) DeleteAt(ctx context.Context, idx int) error {
	if err := s.tbl.DeleteAt(idx); err != nil {
		return err
	}
	s.log.Info(ctx, "record deleted", "row", idx)
	return nil
}

// Save flushes the table back to the backing file: acquire the advisory
// lock, snapshot the current file, then overwrite. A failed backup aborts
// the save (fail-closed); the lock is released on every exit path.
func (s *Store) Save(ctx context.Context) error {
	if s.externallyDirty.Load() {
		s.log.Warn(ctx, "backing file changed on disk since load, saving will overwrite it", "path", s.path)
	}

	if err := s.lock.Acquire(ctx); err != nil {
		return err
	}
	defer s.lock.Release(ctx)

	s.saving.Store(true)
	defer s.saving.Store(false)

	if _, err := backup.Snapshot(ctx, s.path, s.backupDir, s.log); err != nil {
		return fmt.Errorf("backup failed, not overwriting: %w", err)
	}

	if err := s.codec.Write(s.path, s.tbl); err != nil {
		s.log.Error(ctx, "save failed", "path", s.path, "error", err)
		return err
	}

	s.externallyDirty.Store(false)
	s.log.Info(ctx, "file saved", "path", s.path, "rows", s.tbl.Len())
	return nil
}
