package table

import "strings"

// Search returns the rows whose folded cells contain the folded query in
// any column. Row order and the column set are preserved. An empty query
// matches everything.
func (t *Table) Search(query string) *Table {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return t.Clone()
	}

	out := &Table{Columns: append([]string(nil), t.Columns...)}
	for _, r := range t.Rows {
		if rowMatches(t.Columns, r, q) {
			row := make(Row, len(r))
			for k, v := range r {
				row[k] = v
			}
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func rowMatches(columns []string, r Row, foldedQuery string) bool {
	for _, c := range columns {
		if strings.Contains(Fold(r[c]), foldedQuery) {
			return true
		}
	}
	return false
}
