package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cmardones/rosterbase/internal/roles"
)

// roleLabel names each role in prompts.
func roleLabel(r roles.Role) string {
	switch r {
	case roles.ID:
		return "RUT (checksum-validated national ID)"
	case roles.Email:
		return "email"
	case roles.Phone:
		return "phone"
	}
	return string(r)
}

// promptAsker answers the column mapper's questions from the terminal.
type promptAsker struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptAsker) ConfirmColumn(role roles.Role, column string) (bool, error) {
	return confirm(p.in, fmt.Sprintf("Does column %q hold the %s field?", column, roleLabel(role)), p.out)
}

func (p *promptAsker) FallbackColumn(role roles.Role) (string, error) {
	return readLine(p.in,
		fmt.Sprintf("Column name for %s (Enter to skip validation): ", roleLabel(role)), p.out)
}
