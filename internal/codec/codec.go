// Package codec reads and writes the backing file as a table of string
// cells. The first row holds the column names; everything else is data.
// Two formats are supported: Excel workbooks (via excelize) and CSV.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cmardones/rosterbase/internal/table"
)

// Codec converts between a file and an in-memory table. All cells are text.
type Codec interface {
	Read(path string) (*table.Table, error)
	Write(path string, t *table.Table) error
}

// SupportedExtensions lists the extensions ForPath accepts, in display order.
func SupportedExtensions() []string {
	return []string{".xlsx", ".xlsm", ".xls", ".csv"}
}

// Supported reports whether path has a recognized extension.
func Supported(path string) bool {
	_, err := ForPath(path)
	return err == nil
}

// ForPath picks the codec for a file by extension.
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return Excel{}, nil
	case ".csv":
		return CSV{}, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q (supported: %s)",
			filepath.Ext(path), strings.Join(SupportedExtensions(), ", "))
	}
}
