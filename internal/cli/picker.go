package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cmardones/rosterbase/internal/codec"
)

// ErrPickerCanceled is returned when the user aborts the file picker.
var ErrPickerCanceled = errors.New("file selection canceled")

// BrowseForFile walks the filesystem from start until the user selects a
// supported spreadsheet file. "0" moves to the parent directory, a number
// selects an entry, "q" cancels. Unreadable directories bounce back to
// their parent.
func BrowseForFile(reader *bufio.Reader, w io.Writer, start string) (string, error) {
	current := start
	for {
		entries, err := os.ReadDir(current)
		if err != nil {
			fmt.Fprintf(w, "cannot access %s, going up one level\n", current)
			parent := filepath.Dir(current)
			if parent == current {
				return "", fmt.Errorf("cannot read %s: %w", current, err)
			}
			current = parent
			continue
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

		fmt.Fprintf(w, "\nDirectory: %s\n", current)
		for i, e := range entries {
			marker := " "
			if e.IsDir() {
				marker = "/"
			}
			fmt.Fprintf(w, "%3d. %s%s\n", i+1, e.Name(), marker)
		}
		fmt.Fprintln(w, "  0. .. (up one level)")

		choice, err := readLine(reader, "Select a number (or 'q' to cancel): ", w)
		if err != nil {
			return "", err
		}
		if choice == "q" {
			return "", ErrPickerCanceled
		}
		idx, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(w, "invalid option")
			continue
		}

		switch {
		case idx == 0:
			parent := filepath.Dir(current)
			if parent == current {
				fmt.Fprintln(w, "already at the filesystem root")
				continue
			}
			current = parent
		case idx >= 1 && idx <= len(entries):
			sel := filepath.Join(current, entries[idx-1].Name())
			if entries[idx-1].IsDir() {
				current = sel
				continue
			}
			if codec.Supported(sel) {
				return sel, nil
			}
			fmt.Fprintln(w, "not a supported spreadsheet file, pick another")
		default:
			fmt.Fprintln(w, "index out of range")
		}
	}
}
