package cli

import (
	"strconv"

	"github.com/cmardones/rosterbase/internal/table"
)

// browse pages through tbl, letting the user advance, stop, or change the
// page size. A resize keeps the current position (the page holding the
// first row that was on screen stays on screen).
func (a *App) browse(tbl *table.Table) error {
	if tbl.Len() == 0 {
		a.warnf("No records to show.")
		return nil
	}

	pager, err := table.NewPager(tbl, a.pageSize)
	if err != nil {
		return err
	}

	for {
		rows, start, end := pager.Page()
		renderRows(a.out, a.st, tbl.Columns, rows)
		a.infof("Page %d/%d (%d-%d of %d)", pager.PageIndex()+1, pager.PageCount(), start+1, end, tbl.Len())

		if pager.PageIndex()+1 >= pager.PageCount() {
			return nil
		}

		cmd, err := readLine(a.in, "Enter to continue, 'q' to stop, 's' to change page size: ", a.out)
		if err != nil {
			return err
		}
		switch cmd {
		case "q":
			return nil
		case "s":
			raw, err := readLine(a.in, "New page size: ", a.out)
			if err != nil {
				return err
			}
			size, convErr := strconv.Atoi(raw)
			if convErr != nil || size < 1 {
				a.warnf("Page size must be a positive number.")
				continue
			}
			a.pageSize = size
			_ = pager.Resize(size)
		default:
			pager.Next()
		}
	}
}
