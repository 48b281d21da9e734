package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedTable(t *testing.T, n int) *Table {
	t.Helper()
	tbl, err := New([]string{"N"})
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		tbl.Append(Row{"N": fmt.Sprintf("%03d", i)})
	}
	return tbl
}

func TestNewPager_RejectsBadSize(t *testing.T) {
	tbl := numberedTable(t, 3)
	_, err := NewPager(tbl, 0)
	assert.Error(t, err)
	_, err = NewPager(tbl, -1)
	assert.Error(t, err)
}

// Concatenating all pages must reproduce the table exactly, for any size.
func TestPager_PartitionProperty(t *testing.T) {
	tbl := numberedTable(t, 23)

	for size := 1; size <= 25; size++ {
		p, err := NewPager(tbl, size)
		require.NoError(t, err)

		var collected []Row
		for {
			rows, _, _ := p.Page()
			collected = append(collected, rows...)
			if !p.Next() {
				break
			}
		}

		require.Len(t, collected, tbl.Len(), "size %d", size)
		for i, r := range collected {
			assert.Equal(t, tbl.Rows[i]["N"], r["N"], "size %d row %d", size, i)
		}

		wantPages := (tbl.Len() + size - 1) / size
		assert.Equal(t, wantPages, p.PageCount(), "size %d", size)
	}
}

func TestPager_PageBounds(t *testing.T) {
	tbl := numberedTable(t, 10)
	p, err := NewPager(tbl, 4)
	require.NoError(t, err)

	rows, start, end := p.Page()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
	assert.Len(t, rows, 4)

	require.True(t, p.Next())
	require.True(t, p.Next())

	rows, start, end = p.Page()
	assert.Equal(t, 8, start)
	assert.Equal(t, 10, end)
	assert.Len(t, rows, 2, "last page is short")

	assert.False(t, p.Next(), "no page after the last")
}

func TestPager_EmptyTable(t *testing.T) {
	tbl, err := New([]string{"N"})
	require.NoError(t, err)

	p, err := NewPager(tbl, 5)
	require.NoError(t, err)

	assert.Equal(t, 0, p.PageCount())
	rows, _, _ := p.Page()
	assert.Empty(t, rows)
	assert.False(t, p.Next())
}

func TestPager_ResizePreservesPosition(t *testing.T) {
	tbl := numberedTable(t, 100)
	p, err := NewPager(tbl, 20)
	require.NoError(t, err)

	// Move to page 2 (rows 40..59).
	require.True(t, p.Next())
	require.True(t, p.Next())

	require.NoError(t, p.Resize(7))

	// Row 40 must still be visible: 40/7 = page 5 covering rows 35..41.
	assert.Equal(t, 5, p.PageIndex())
	rows, start, end := p.Page()
	assert.Equal(t, 35, start)
	assert.Equal(t, 42, end)
	assert.Equal(t, "040", rows[40-start]["N"])

	assert.Equal(t, 15, p.PageCount(), "ceil(100/7)")
	assert.Error(t, p.Resize(0))
}
