package config

import "time"

// Config holds runtime settings for the rosterbase CLI.
//
// Fields:
//   - FilePath: backing spreadsheet file; empty means the interactive
//     file picker runs at startup.
//   - BackupDir: where pre-save snapshots go; empty means a sibling
//     "backups" directory next to the backing file.
//   - LockTimeout: how long a save waits for the advisory lock.
//   - PageSize: rows per page in the record browser.
//   - LogLevel: debug, info, warn or error.
//   - NoColor: disable styled terminal output.
type Config struct {
	FilePath    string
	BackupDir   string
	LogLevel    string
	LockTimeout time.Duration
	PageSize    int
	NoColor     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.FilePath = ""
	c.BackupDir = ""
	c.LogLevel = "info"
	c.LockTimeout = 300 * time.Second
	c.PageSize = 20
	c.NoColor = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
