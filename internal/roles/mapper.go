package roles

import (
	"context"
	"fmt"

	"github.com/cmardones/rosterbase/internal/logging"
)

// Asker is the decision surface the mapper needs from the presentation
// layer. The mapper itself never touches a terminal, which keeps it
// testable with a scripted implementation.
type Asker interface {
	// ConfirmColumn asks whether column should carry the role.
	ConfirmColumn(role Role, column string) (bool, error)

	// FallbackColumn asks for an explicit column name after no candidate
	// was confirmed. Empty means "leave the role unbound".
	FallbackColumn(role Role) (string, error)
}

// MapRoles runs the heuristic binding procedure over the column set:
// per role, each synonym candidate is offered in discovery order and the
// first confirmed one wins; otherwise an explicit name is requested, and a
// blank or unknown answer leaves the role unbound. Two runs over the same
// schema can yield different bindings; the result is fixed for the session.
func MapRoles(ctx context.Context, columns []string, ask Asker, log logging.Logger) (Binding, error) {
	b := make(Binding, len(All()))

	for _, role := range All() {
		col, err := mapRole(ctx, columns, role, ask, log)
		if err != nil {
			return nil, fmt.Errorf("mapping role %s: %w", role, err)
		}
		if col == "" {
			log.Warn(ctx, "role left unbound, validation disabled", "role", string(role))
			continue
		}
		b[role] = col
		log.Info(ctx, "role bound", "role", string(role), "column", col)
	}
	return b, nil
}

func mapRole(ctx context.Context, columns []string, role Role, ask Asker, log logging.Logger) (string, error) {
	for _, cand := range Candidates(columns, role) {
		ok, err := ask.ConfirmColumn(role, cand)
		if err != nil {
			return "", err
		}
		if ok {
			return cand, nil
		}
	}

	name, err := ask.FallbackColumn(role)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", nil
	}
	for _, c := range columns {
		if c == name {
			return name, nil
		}
	}
	log.Warn(ctx, "no such column, role left unbound", "role", string(role), "column", name)
	return "", nil
}
