// Package main is the entry point for rosterbase, an interactive manager for
// file-backed tabular records (faculty rosters and similar spreadsheets).
// Configuration comes from defaults, an optional JSON file and CLI flags.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/cmardones/rosterbase/internal/cli"
	"github.com/cmardones/rosterbase/internal/config"
	"github.com/cmardones/rosterbase/internal/logging"
	"github.com/cmardones/rosterbase/internal/store"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "rosterbase: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	// No backing file given: let the user browse for one.
	if cfg.FilePath == "" {
		start, err := os.Getwd()
		if err != nil {
			return err
		}
		picked, err := cli.BrowseForFile(bufio.NewReader(os.Stdin), os.Stdout, start)
		if err != nil {
			if errors.Is(err, cli.ErrPickerCanceled) {
				fmt.Fprintln(os.Stdout, "No file selected.")
				return nil
			}
			return err
		}
		cfg.FilePath = picked
	}

	log, closeLog, err := buildLogger(cfg, level)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := store.New(cfg.FilePath, cfg.LockTimeout, cfg.BackupDir, log)
	if err != nil {
		return err
	}

	color := !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	app := cli.NewApp(cfg, st, log, os.Stdin, os.Stdout, color)
	return app.Run(ctx)
}

// buildLogger tees a colored console handler on stderr with a plain-text
// session log next to the backing file. The console only carries warnings and
// errors so log noise never interleaves with the interactive prompts.
func buildLogger(cfg *config.Config, level slog.Level) (logging.Logger, func(), error) {
	consoleLevel := level
	if consoleLevel < slog.LevelWarn {
		consoleLevel = slog.LevelWarn
	}
	console := logging.NewSlogLogger(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      consoleLevel,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor || !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	logPath := filepath.Join(filepath.Dir(cfg.FilePath), "rosterbase.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o660)
	if err != nil {
		// Log file trouble should not block the session.
		fmt.Fprintf(os.Stderr, "rosterbase: cannot open %s: %v\n", logPath, err)
		return console, func() {}, nil
	}
	file := logging.NewSlogLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))

	return logging.NewFanout(console, file), func() { _ = f.Close() }, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %q", s)
}
