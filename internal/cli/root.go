package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/cmardones/rosterbase/internal/common"
	"github.com/cmardones/rosterbase/internal/roles"
)

const menu = `
1/v  view records (paginated)
2/b  search records
3/a  add a record
4/u  update a record
5/d  delete a record
6/g  save and exit
h/?  help
q    quit without saving
`

// Run drives the whole session: load or create the backing file, bind the
// column roles, then loop on the menu until save-and-exit or quit. It
// returns an error only for fatal conditions; recoverable problems are
// reported and the loop continues.
func (a *App) Run(ctx context.Context) error {
	a.infof("rosterbase - %s", a.store.Path())

	ok, err := a.loadOrCreate(ctx)
	if err != nil {
		return err
	}
	if !ok {
		a.infof("No file to manage, exiting.")
		return nil
	}

	binding, err := roles.MapRoles(ctx, a.store.Columns(), &promptAsker{in: a.in, out: a.out}, a.log)
	if err != nil {
		return fmt.Errorf("mapping columns: %w", err)
	}
	a.store.Bind(binding)
	a.reportBinding(binding)

	if err := a.store.Watch(ctx); err != nil {
		// Not fatal: saving still works, just without the external-change warning.
		a.log.Warn(ctx, "file watcher unavailable", "error", err)
	}
	defer a.store.Close()

	a.infof("Columns: %s", strings.Join(a.store.Columns(), ", "))
	a.infof("Total records: %d", a.store.Table().Len())

	for {
		fmt.Fprint(a.out, menu)
		choice, err := readLine(a.in, "Choose an option: ", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.ToLower(choice) {
		case "1", "v":
			if err := a.viewRecords(); err != nil {
				return err
			}
		case "2", "b":
			if err := a.searchRecords(); err != nil {
				return err
			}
		case "3", "a":
			if err := a.addRecord(ctx); err != nil {
				return err
			}
		case "4", "u":
			if err := a.updateRecord(ctx); err != nil {
				return err
			}
		case "5", "d":
			if err := a.deleteRecord(ctx); err != nil {
				return err
			}
		case "6", "g":
			done, err := a.saveAndExit(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case "h", "?":
			fmt.Fprint(a.out, menu)
		case "q":
			sure, err := confirm(a.in, "Quit without saving?", a.out)
			if err != nil {
				return err
			}
			if sure {
				a.warnf("Exiting without saving.")
				return nil
			}
		case "":
			// Ignore empty input.
		default:
			a.errorf("Invalid option, type 'h' for help.")
		}
	}
}

// loadOrCreate loads the backing file, offering to create a new one when it
// does not exist. The second return is false when the user declines.
func (a *App) loadOrCreate(ctx context.Context) (bool, error) {
	err := a.store.Load(ctx)
	if err == nil {
		a.successf("File loaded: %d records.", a.store.Table().Len())
		return true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		a.errorf("Could not read %s: %v", a.store.Path(), err)
		return false, err
	}

	a.warnf("%s does not exist.", a.store.Path())
	create, err := confirm(a.in, "Create a new file with custom columns?", a.out)
	if err != nil {
		return false, err
	}
	if !create {
		return false, nil
	}

	raw, err := readLine(a.in, "Column names, comma separated (e.g. RUT,NOMBRE,Email,Teléfono): ", a.out)
	if err != nil {
		return false, err
	}
	var columns []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			columns = append(columns, c)
		}
	}

	if err := a.store.Create(ctx, columns); err != nil {
		if errors.Is(err, common.ErrSchema) {
			a.errorf("No columns defined, aborting.")
		} else {
			a.errorf("Could not create the file: %v", err)
		}
		return false, err
	}
	a.successf("File created with columns: %s", strings.Join(columns, ", "))
	return true, nil
}

func (a *App) reportBinding(b roles.Binding) {
	for _, role := range roles.All() {
		if col, ok := b.Column(role); ok {
			a.successf("%s validation enabled on column %q.", roleLabel(role), col)
		} else {
			a.warnf("%s not mapped, validation disabled.", roleLabel(role))
		}
	}
}
