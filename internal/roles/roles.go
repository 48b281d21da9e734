// Package roles binds logical field roles (ID, email, phone) to concrete
// column names of a schema that is only known at run time. The binding
// decides which validator guards which column for the rest of the session.
package roles

import (
	"strings"

	"github.com/cmardones/rosterbase/internal/validate"
)

// Role is a logical field category that may be bound to a column.
type Role string

const (
	ID    Role = "ID"
	Email Role = "EMAIL"
	Phone Role = "PHONE"
)

// All returns the roles in mapping order. ID comes first because it is the
// business key.
func All() []Role { return []Role{ID, Email, Phone} }

// synonyms are the case-insensitive substrings that make a column a
// candidate for a role.
var synonyms = map[Role][]string{
	ID:    {"rut"},
	Email: {"email", "correo"},
	Phone: {"tel", "fono", "telefono"},
}

// Validator returns the field rule guarding the role.
func (r Role) Validator() validate.Validator {
	switch r {
	case ID:
		return validate.RUT()
	case Email:
		return validate.Email()
	case Phone:
		return validate.Phone()
	}
	return validate.Validator{Valid: func(string) bool { return true }, Optional: true}
}

// Candidates returns, in discovery order, the columns whose name contains
// one of the role's synonyms.
func Candidates(columns []string, r Role) []string {
	var out []string
	for _, c := range columns {
		lc := strings.ToLower(c)
		for _, syn := range synonyms[r] {
			if strings.Contains(lc, syn) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Binding maps roles to column names for the current session. A missing
// role is unbound: no validation applies to it.
type Binding map[Role]string

// Column returns the bound column for a role, if any.
func (b Binding) Column(r Role) (string, bool) {
	col, ok := b[r]
	return col, ok && col != ""
}

// RoleFor returns the role bound to a column, if any.
func (b Binding) RoleFor(column string) (Role, bool) {
	for r, c := range b {
		if c == column {
			return r, true
		}
	}
	return "", false
}
