// Package cli is the interactive layer: menu loop, prompts, file picker and
// rendering. It owns all terminal I/O; the record-store engine underneath
// never prints or reads anything itself.
package cli

import (
	"bufio"
	"io"

	"github.com/google/uuid"

	"github.com/cmardones/rosterbase/internal/config"
	"github.com/cmardones/rosterbase/internal/logging"
	"github.com/cmardones/rosterbase/internal/store"
)

type App struct {
	cfg   *config.Config
	store *store.Store
	log   logging.Logger

	in  *bufio.Reader
	out io.Writer
	st  styles

	pageSize int
}

// NewApp wires the interactive session. Every log line carries a session id
// so interleaved runs in the shared log file can be told apart.
func NewApp(cfg *config.Config, st *store.Store, log logging.Logger, in io.Reader, out io.Writer, color bool) *App {
	return &App{
		cfg:      cfg,
		store:    st,
		log:      log.With("session", uuid.NewString()),
		in:       bufio.NewReader(in),
		out:      out,
		st:       newStyles(color),
		pageSize: cfg.PageSize,
	}
}
