package codec

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/table"
)

// Excel reads and writes workbooks through excelize. The first sheet is the
// dataset; the first row holds column names and every cell is treated as
// text. Legacy .xls workbooks excelize cannot parse surface as file-access
// errors.
type Excel struct{}

func (Excel) Read(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrFileAccess, path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q of %s: %v", common.ErrFileAccess, sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", common.ErrSchema, path)
	}

	t, err := table.New(rows[0])
	if err != nil {
		return nil, err
	}
	// excelize trims trailing empty cells per row; missing ones become "".
	for _, rec := range rows[1:] {
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

func (Excel) Write(path string, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, c := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrFileAccess, err)
		}
		if err := f.SetCellStr(sheet, cell, c); err != nil {
			return fmt.Errorf("%w: %v", common.ErrFileAccess, err)
		}
	}
	for r, row := range t.Rows {
		for i, c := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return fmt.Errorf("%w: %v", common.ErrFileAccess, err)
			}
			if err := f.SetCellStr(sheet, cell, row[c]); err != nil {
				return fmt.Errorf("%w: %v", common.ErrFileAccess, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: saving %s: %v", common.ErrFileAccess, path, err)
	}
	return nil
}
