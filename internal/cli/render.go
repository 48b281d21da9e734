package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/cmardones/rosterbase/internal/table"
)

// styles groups the lipgloss styles for user-facing output. With color
// disabled every style is a no-op and output degrades to plain text.
type styles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	header  lipgloss.Style
	border  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{info: plain, success: plain, warn: plain, err: plain, header: plain, border: plain}
	}
	return styles{
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),  // cyan
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),  // green
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),  // yellow
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),  // red
		header:  lipgloss.NewStyle().Bold(true),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (a *App) infof(format string, args ...any) {
	fmt.Fprintln(a.out, a.st.info.Render(fmt.Sprintf(format, args...)))
}

func (a *App) successf(format string, args ...any) {
	fmt.Fprintln(a.out, a.st.success.Render(fmt.Sprintf(format, args...)))
}

func (a *App) warnf(format string, args ...any) {
	fmt.Fprintln(a.out, a.st.warn.Render(fmt.Sprintf(format, args...)))
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintln(a.out, a.st.err.Render(fmt.Sprintf(format, args...)))
}

// renderRows prints columns and rows as a bordered grid.
func renderRows(w io.Writer, st styles, columns []string, rows []table.Row) {
	tb := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return st.header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(columns...)

	cells := make([]string, len(columns))
	for _, r := range rows {
		for i, c := range columns {
			cells[i] = r[c]
		}
		tb.Row(cells...)
	}
	fmt.Fprintln(w, tb.Render())
}

// renderRow prints a single record as a one-row grid.
func renderRow(w io.Writer, st styles, columns []string, row table.Row) {
	renderRows(w, st, columns, []table.Row{row})
}
