// Package lockfile implements advisory mutual exclusion over the backing
// file via a sentinel marker file. Existence of the sentinel means locked;
// its content is the acquisition time in epoch seconds, for debugging only.
// This is single-host cooperation, not a true mutex: there is no PID check
// and a crashed process leaves a stale sentinel for the operator to clear.
package lockfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/logging"
)

// Suffix replaces the backing file's extension to form the sentinel path.
const Suffix = ".lock"

// pollInterval is a test seam; acquisition polls once per second.
var pollInterval = time.Second

// timeNow is a test seam for the sentinel timestamp.
var timeNow = time.Now

// PathFor derives the sentinel path from the backing file path.
func PathFor(backing string) string {
	ext := filepath.Ext(backing)
	return strings.TrimSuffix(backing, ext) + Suffix
}

// Lock guards one backing file.
type Lock struct {
	path    string
	timeout time.Duration
	log     logging.Logger
}

// New returns a lock for the given backing file. Timeout bounds how long
// Acquire polls before giving up.
func New(backing string, timeout time.Duration, log logging.Logger) *Lock {
	return &Lock{path: PathFor(backing), timeout: timeout, log: log}
}

// Path returns the sentinel path.
func (l *Lock) Path() string { return l.path }

// Acquire polls for absence of the sentinel, creating it atomically once it
// is gone. When the timeout elapses with the sentinel still present, it
// returns common.ErrLockTimeout, logs a warning and leaves the existing
// sentinel untouched; the caller must not proceed with a save.
func (l *Lock) Acquire(ctx context.Context) error {
	backoff := retry.WithMaxDuration(l.timeout, retry.NewConstant(pollInterval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
		if errors.Is(err, fs.ErrExist) {
			return retry.RetryableError(err)
		}
		if err != nil {
			return fmt.Errorf("%w: creating lock sentinel %s: %v", common.ErrFileAccess, l.path, err)
		}
		_, werr := fmt.Fprintf(f, "%d", timeNow().Unix())
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			// Half-written sentinel still locks; remove it so we fail clean.
			_ = os.Remove(l.path)
			return fmt.Errorf("%w: writing lock sentinel %s: %v", common.ErrFileAccess, l.path, werr)
		}
		return nil
	})

	switch {
	case err == nil:
		l.log.Debug(ctx, "lock acquired", "sentinel", l.path)
		return nil
	case errors.Is(err, fs.ErrExist), errors.Is(err, context.DeadlineExceeded):
		l.log.Warn(ctx, "file locked for too long, manual check required", "sentinel", l.path, "timeout", l.timeout)
		return fmt.Errorf("%w: sentinel %s still present", common.ErrLockTimeout, l.path)
	default:
		return err
	}
}

// Release deletes the sentinel if present. A failed deletion is logged and
// otherwise ignored: the stale sentinel blocks future acquisitions until
// cleared manually, which is a known operational risk.
func (l *Lock) Release(ctx context.Context) {
	err := os.Remove(l.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		l.log.Error(ctx, "could not remove lock sentinel", "sentinel", l.path, "error", err)
		return
	}
	l.log.Debug(ctx, "lock released", "sentinel", l.path)
}
