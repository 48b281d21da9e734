package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/table"
)

// CSV reads and writes comma-separated files with a header row.
type CSV struct{}

func (CSV) Read(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrFileAccess, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, missing cells become ""

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrFileAccess, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", common.ErrSchema, path)
	}

	t, err := table.New(records[0])
	if err != nil {
		return nil, err
	}
	for _, rec := range records[1:] {
		row := make(table.Row, len(t.Columns))
		for i, c := range t.Columns {
			if i < len(rec) {
				row[c] = rec[i]
			}
		}
		t.Append(row)
	}
	return t, nil
}

func (CSV) Write(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", common.ErrFileAccess, path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %v", common.ErrFileAccess, path, err)
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			rec[i] = row[c]
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("%w: writing %s: %v", common.ErrFileAccess, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %v", common.ErrFileAccess, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", common.ErrFileAccess, path, err)
	}
	return nil
}
