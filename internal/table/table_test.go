package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmardones/rosterbase/internal/common"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New([]string{"RUT", "NOMBRE", "Email"})
	require.NoError(t, err)
	tbl.Append(Row{"RUT": "12345678-5", "NOMBRE": "María Muñoz", "Email": "mm@liceo.cl"})
	tbl.Append(Row{"RUT": "11111111-1", "NOMBRE": "José Pérez", "Email": ""})
	tbl.Append(Row{"RUT": "1234567-4", "NOMBRE": "Ana Soto", "Email": "as@liceo.cl"})
	return tbl
}

func TestNew_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
	}{
		{name: "empty set", columns: nil},
		{name: "blank name", columns: []string{"RUT", ""}},
		{name: "duplicate name", columns: []string{"RUT", "RUT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.columns)
			require.ErrorIs(t, err, common.ErrSchema)
		})
	}
}

func TestAppend_FillsMissingAndDropsUnknown(t *testing.T) {
	tbl, err := New([]string{"RUT", "NOMBRE"})
	require.NoError(t, err)

	tbl.Append(Row{"RUT": "12345678-5", "Extra": "ignored"})

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, Row{"RUT": "12345678-5", "NOMBRE": ""}, tbl.Rows[0])
}

func TestDeleteAt_CompactsIndices(t *testing.T) {
	tbl := testTable(t)

	require.NoError(t, tbl.DeleteAt(1))

	require.Equal(t, 2, tbl.Len())
	got, ok := tbl.Cell(1, "NOMBRE")
	require.True(t, ok)
	assert.Equal(t, "Ana Soto", got, "rows after the deleted one shift down")

	assert.Error(t, tbl.DeleteAt(5))
	assert.Error(t, tbl.DeleteAt(-1))
}

func TestSetCell(t *testing.T) {
	tbl := testTable(t)

	require.NoError(t, tbl.SetCell(0, "Email", "nuevo@liceo.cl"))
	got, _ := tbl.Cell(0, "Email")
	assert.Equal(t, "nuevo@liceo.cl", got)

	assert.Error(t, tbl.SetCell(0, "NoSuch", "x"))
	assert.Error(t, tbl.SetCell(99, "Email", "x"))
}

func TestClone_IsIndependent(t *testing.T) {
	tbl := testTable(t)
	cp := tbl.Clone()

	require.NoError(t, cp.SetCell(0, "NOMBRE", "changed"))
	require.NoError(t, cp.DeleteAt(2))

	orig, _ := tbl.Cell(0, "NOMBRE")
	assert.Equal(t, "María Muñoz", orig)
	assert.Equal(t, 3, tbl.Len())
}
