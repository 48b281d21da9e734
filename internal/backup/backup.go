// Package backup takes timestamped copy-on-write snapshots of the backing
// file before every save. Entries are append-only; retention is left to the
// operator.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/filex"
	"github.com/cmardones/rosterbase/internal/logging"
)

// timeNow is a test seam for the snapshot timestamp.
var timeNow = time.Now

// timestampLayout yields names like roster_20250601_153012.xlsx.
const timestampLayout = "20060102_150405"

// DefaultDir returns the conventional backup directory: a sibling "backups"
// directory next to the backing file.
func DefaultDir(backing string) string {
	return filepath.Join(filepath.Dir(backing), "backups")
}

// Snapshot copies src into dir as {stem}_{yyyyMMdd_HHmmss}{ext}, creating
// dir if needed, and returns the entry path. A missing src is a no-op that
// returns "": there is nothing to protect yet. Any failure wraps
// common.ErrFileAccess; callers must treat it as a reason to abort the
// following save.
func Snapshot(ctx context.Context, src, dir string, log logging.Logger) (string, error) {
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: stat %s: %v", common.ErrFileAccess, src, err)
	}

	if err := filex.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrFileAccess, err)
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	dst := filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, timeNow().Format(timestampLayout), ext))

	if err := filex.CopyFile(src, dst); err != nil {
		log.Error(ctx, "backup failed", "source", src, "destination", dst, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrFileAccess, err)
	}

	log.Info(ctx, "backup created", "destination", dst)
	return dst, nil
}
