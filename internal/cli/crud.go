package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/roles"
	"github.com/cmardones/rosterbase/internal/table"
)

func (a *App) viewRecords() error {
	return a.browse(a.store.Table())
}

func (a *App) searchRecords() error {
	query, err := readLine(a.in, "Search term: ", a.out)
	if err != nil {
		return err
	}
	if query == "" {
		a.warnf("A search term is required.")
		return nil
	}

	result := a.store.Table().Search(query)
	if result.Len() == 0 {
		a.warnf("No matches found.")
		return nil
	}
	renderRows(a.out, a.st, result.Columns, result.Rows)
	a.infof("%d record(s) match %q.", result.Len(), query)
	return nil
}

func (a *App) addRecord(ctx context.Context) error {
	a.infof("Enter the new record:")

	row := make(table.Row, len(a.store.Columns()))
	for _, col := range a.store.Columns() {
		var value string
		var err error
		if role, bound := a.store.Binding().RoleFor(col); bound {
			value, err = promptValidated(a.in, a.out, col, role.Validator())
		} else {
			value, err = readLine(a.in, col+": ", a.out)
		}
		if err != nil {
			return err
		}
		row[col] = value
	}

	if err := a.store.Insert(ctx, row); err != nil {
		a.errorf("Record rejected: %v", err)
		return nil
	}
	a.successf("Record added.")
	return nil
}

// findByPromptedKey runs the shared lookup for update and delete: ask for
// the key, resolve it, report misses. A -1 index means "nothing to do".
func (a *App) findByPromptedKey(ctx context.Context, verb string) (int, error) {
	idCol, bound := a.idColumn()
	if !bound {
		a.errorf("The ID column is not mapped, cannot %s by key.", verb)
		return -1, nil
	}

	key, err := readLine(a.in, fmt.Sprintf("Enter the %s of the record to %s: ", idCol, verb), a.out)
	if err != nil {
		return -1, err
	}

	idx, err := a.store.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.errorf("No record found with %s = %s.", idCol, key)
			return -1, nil
		}
		return -1, err
	}
	return idx, nil
}

func (a *App) updateRecord(ctx context.Context) error {
	idx, err := a.findByPromptedKey(ctx, "update")
	if err != nil || idx < 0 {
		return err
	}

	a.infof("Current record:")
	renderRow(a.out, a.st, a.store.Columns(), a.store.Table().Rows[idx])

	for _, col := range a.store.Columns() {
		current, _ := a.store.Table().Cell(idx, col)
		value, err := readLine(a.in, fmt.Sprintf("%s [%s]: ", col, current), a.out)
		if err != nil {
			return err
		}
		if value == "" {
			continue // blank keeps the current value
		}
		if err := a.store.UpdateCell(ctx, idx, col, value); err != nil {
			if errors.Is(err, common.ErrValidation) {
				a.warnf("%v. Keeping the previous value.", err)
				continue
			}
			return err
		}
	}
	a.successf("Record updated.")
	return nil
}

func (a *App) deleteRecord(ctx context.Context) error {
	idx, err := a.findByPromptedKey(ctx, "delete")
	if err != nil || idx < 0 {
		return err
	}

	a.warnf("Record to delete:")
	renderRow(a.out, a.st, a.store.Columns(), a.store.Table().Rows[idx])

	sure, err := confirm(a.in, "Confirm deletion?", a.out)
	if err != nil {
		return err
	}
	if !sure {
		a.infof("Deletion canceled.")
		return nil
	}

	if err := a.store.DeleteAt(ctx, idx); err != nil {
		return err
	}
	a.successf("Record deleted.")
	return nil
}

// saveAndExit returns true when the session should end.
func (a *App) saveAndExit(ctx context.Context) (bool, error) {
	if err := a.store.Save(ctx); err != nil {
		switch {
		case errors.Is(err, common.ErrLockTimeout):
			a.errorf("Could not acquire the file lock, save aborted. Check for a stale %s file.", "lock")
		default:
			a.errorf("Save failed: %v", err)
		}
		// Stay in the session so no in-memory work is lost.
		return false, nil
	}
	a.successf("File saved. Goodbye!")
	return true, nil
}

func (a *App) idColumn() (string, bool) {
	return a.store.Binding().Column(roles.ID)
}
