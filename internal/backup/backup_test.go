package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/logging"
)

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	old := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = old })
}

func TestDefaultDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", "backups"), DefaultDir("/data/roster.xlsx"))
}

func TestSnapshot_CopiesWithTimestampedName(t *testing.T) {
	fixedClock(t, time.Date(2025, 6, 1, 15, 30, 12, 0, time.Local))
	tmp := t.TempDir()
	src := filepath.Join(tmp, "roster.xlsx")
	require.NoError(t, os.WriteFile(src, []byte("workbook-bytes"), 0o660))

	dir := filepath.Join(tmp, "backups")
	got, err := Snapshot(context.Background(), src, dir, logging.Nop{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "roster_20250601_153012.xlsx"), got)
	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "workbook-bytes", string(content))
}

func TestSnapshot_MissingSourceIsNoOp(t *testing.T) {
	tmp := t.TempDir()
	got, err := Snapshot(context.Background(), filepath.Join(tmp, "nope.xlsx"), filepath.Join(tmp, "backups"), logging.Nop{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, statErr := os.Stat(filepath.Join(tmp, "backups"))
	assert.True(t, os.IsNotExist(statErr), "no directory created for a no-op")
}

func TestSnapshot_EntriesAccumulate(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "roster.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\n"), 0o660))
	dir := filepath.Join(tmp, "backups")

	fixedClock(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local))
	first, err := Snapshot(context.Background(), src, dir, logging.Nop{})
	require.NoError(t, err)

	fixedClock(t, time.Date(2025, 6, 1, 10, 0, 1, 0, time.Local))
	second, err := Snapshot(context.Background(), src, dir, logging.Nop{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "backups are append-only")
}

func TestSnapshot_UnwritableDirFailsClosed(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "roster.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\n"), 0o660))

	// A regular file where the backup dir should be makes EnsureDir fail.
	dir := filepath.Join(tmp, "backups")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o660))

	_, err := Snapshot(context.Background(), src, dir, logging.Nop{})
	require.ErrorIs(t, err, common.ErrFileAccess)
}
