package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmardones/rosterbase/internal/config"
	"github.com/cmardones/rosterbase/internal/logging"
	"github.com/cmardones/rosterbase/internal/store"
)

const seedCSV = "RUT,NOMBRE,Email\n11111111-1,María Pérez,maria@uchile.cl\n"

// newSessionApp seeds a CSV file (empty seed means no file) and returns an
// App reading the scripted input, plus the output transcript and file path.
func newSessionApp(t *testing.T, seed, script string) (*App, *strings.Builder, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "docentes.csv")
	if seed != "" {
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o660))
	}

	st, err := store.New(path, time.Second, filepath.Join(dir, "backups"), logging.Nop{})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out strings.Builder
	return NewApp(cfg, st, logging.Nop{}, strings.NewReader(script), &out, false), &out, path
}

func TestRun_AddAndSave(t *testing.T) {
	script := strings.Join([]string{
		"y",             // RUT column carries the ID
		"y",             // Email column carries the email
		"",              // no phone column
		"3",             // add a record
		"12.345.678-5",  // ID, entered with separators
		"Pedro Soto",    // free-text column
		"pedro@usach.cl",
		"6", // save and exit
	}, "\n") + "\n"

	app, out, path := newSessionApp(t, seedCSV, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Record added.")
	assert.Contains(t, out.String(), "File saved.")

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "12345678-5", "ID stored in canonical form")
	assert.Contains(t, string(saved), "Pedro Soto")
	assert.Contains(t, string(saved), "11111111-1", "existing rows survive the save")

	backups, err := os.ReadDir(filepath.Join(filepath.Dir(path), "backups"))
	require.NoError(t, err)
	require.Len(t, backups, 1, "save snapshots the previous file first")
	assert.True(t, strings.HasPrefix(backups[0].Name(), "docentes_"))
}

func TestRun_QuitWithoutSavingLeavesFileUntouched(t *testing.T) {
	script := strings.Join([]string{
		"n", "", // decline RUT candidate, leave ID unbound
		"n", "", // decline Email candidate
		"", // no phone column
		"3",
		"99999999-9", // no binding, so any text is accepted as-is
		"Alguien",
		"x",
		"q", "y", // quit without saving
	}, "\n") + "\n"

	app, out, path := newSessionApp(t, seedCSV, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Exiting without saving.")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, seedCSV, string(content))
}

func TestRun_UpdateRejectsInvalidValueAndRetains(t *testing.T) {
	script := strings.Join([]string{
		"y", "y", "", // bind RUT and Email, skip phone
		"4",            // update
		"11.111.111-1", // lookup tolerates separator differences
		"",             // keep RUT
		"",             // keep NOMBRE
		"not-an-email", // rejected, previous value kept
		"q", "y",
	}, "\n") + "\n"

	app, out, _ := newSessionApp(t, seedCSV, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Keeping the previous value.")
	cell, ok := app.store.Table().Cell(0, "Email")
	require.True(t, ok)
	assert.Equal(t, "maria@uchile.cl", cell)
}

func TestRun_DeleteRecord(t *testing.T) {
	script := strings.Join([]string{
		"y", "y", "",
		"5",          // delete
		"11111111-1", // key
		"y",          // confirm
		"q", "y",
	}, "\n") + "\n"

	app, out, _ := newSessionApp(t, seedCSV, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Record deleted.")
	assert.Equal(t, 0, app.store.Table().Len())
}

func TestRun_SearchIsAccentInsensitive(t *testing.T) {
	script := strings.Join([]string{
		"y", "y", "",
		"2",     // search
		"perez", // matches "Pérez"
		"q", "y",
	}, "\n") + "\n"

	app, out, _ := newSessionApp(t, seedCSV, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), `1 record(s) match "perez".`)
}

func TestRun_AddRejectsInvalidID(t *testing.T) {
	script := strings.Join([]string{
		"y", "y", "",
		"3",
		"12345678-9", // wrong check digit, reprompted
		"12345678-5",
		"Alguien",
		"",       // email left empty (optional)
		"q", "y", // leave without persisting
	}, "\n") + "\n"

	app, out, _ := newSessionApp(t, seedCSV, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "try again")
	assert.Equal(t, 2, app.store.Table().Len())
}

func TestRun_CreateNewFile(t *testing.T) {
	script := strings.Join([]string{
		"y",           // create the missing file
		"RUT, NOMBRE", // columns
		"y",           // RUT column carries the ID
		"",            // no email column
		"",            // no phone column
		"q", "y",
	}, "\n") + "\n"

	app, out, path := newSessionApp(t, "", script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "File created with columns: RUT, NOMBRE")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "RUT,NOMBRE")
}

func TestRun_DeclineCreateExits(t *testing.T) {
	app, out, path := newSessionApp(t, "", "n\n")
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "No file to manage, exiting.")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_BrowsePreservesPositionOnResize(t *testing.T) {
	seed := "RUT,NOMBRE,Email\n" +
		"11111111-1,María Pérez,maria@uchile.cl\n" +
		"12345678-5,Pedro Soto,pedro@usach.cl\n" +
		"20347878-K,Ana Díaz,ana@puc.cl\n" +
		"1234567-4,Luis Rojas,luis@udec.cl\n" +
		"51111111-0,Carla Fuentes,carla@uach.cl\n"
	script := strings.Join([]string{
		"y", "y", "",
		"1",      // view records
		"",       // Enter: advance to page 2
		"s", "1", // shrink pages to one row; position is preserved
		"q",      // stop browsing
		"q", "y", // end the session
	}, "\n") + "\n"

	app, out, _ := newSessionApp(t, seed, script)
	app.pageSize = 2
	require.NoError(t, app.Run(context.Background()))

	// Page 2 of the 2-row pages starts at row 3; after resizing to 1 the
	// page holding that same row stays on screen.
	assert.Contains(t, out.String(), "Page 2/3 (3-4 of 5)")
	assert.Contains(t, out.String(), "Page 3/5 (3-3 of 5)")
}
