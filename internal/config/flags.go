package config

import (
	"flag"
	"os"
	"time"

	"github.com/cmardones/rosterbase/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   backing spreadsheet file
//	-b string   backup directory (default: sibling "backups")
//	-t int      lock timeout in seconds
//	-p int      page size for the record browser
//	-l string   log level (debug, info, warn, error)
//	-n          disable colored output
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-b", "-t", "-p", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.FilePath, "f", cfg.FilePath, "backing spreadsheet file")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "backup directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.NoColor, "n", cfg.NoColor, "disable colored output")
	lockTimeout := fs.Int("t", int(cfg.LockTimeout.Seconds()), "lock timeout (in seconds)")
	pageSize := fs.Int("p", cfg.PageSize, "rows per page")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LockTimeout = time.Duration(*lockTimeout) * time.Second
	cfg.PageSize = *pageSize
}
