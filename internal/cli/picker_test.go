package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickerTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "data"), 0o770))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "profes.csv"), []byte("RUT\n"), 0o660))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o660))
	return root
}

func TestBrowseForFile_SelectsNestedSpreadsheet(t *testing.T) {
	root := pickerTree(t)
	var out bytes.Buffer

	// Entries are sorted: 1=data/, 2=notes.txt. Enter data, pick the csv.
	got, err := BrowseForFile(rdr("1\n1\n"), &out, root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "profes.csv"), got)
}

func TestBrowseForFile_RejectsUnsupportedFile(t *testing.T) {
	root := pickerTree(t)
	var out bytes.Buffer

	_, err := BrowseForFile(rdr("2\nq\n"), &out, root)
	require.ErrorIs(t, err, ErrPickerCanceled)
	assert.Contains(t, out.String(), "not a supported spreadsheet file")
}

func TestBrowseForFile_UpOneLevel(t *testing.T) {
	root := pickerTree(t)
	var out bytes.Buffer

	// Start inside data/, go up, then back in and select.
	got, err := BrowseForFile(rdr("0\n1\n1\n"), &out, filepath.Join(root, "data"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "profes.csv"), got)
}

func TestBrowseForFile_InvalidInputReprompts(t *testing.T) {
	root := pickerTree(t)
	var out bytes.Buffer

	_, err := BrowseForFile(rdr("abc\n99\nq\n"), &out, root)
	require.ErrorIs(t, err, ErrPickerCanceled)
	assert.Contains(t, out.String(), "invalid option")
	assert.Contains(t, out.String(), "index out of range")
}
