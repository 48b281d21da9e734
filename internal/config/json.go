package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cmardones/rosterbase/internal/flagx"
	"github.com/cmardones/rosterbase/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the lock timeout can be written either as a string like
// "300s" or as integer nanoseconds.
type JsonConfig struct {
	FilePath    string         `json:"file_path"`
	BackupDir   string         `json:"backup_dir"`
	LogLevel    string         `json:"log_level"`
	LockTimeout timex.Duration `json:"lock_timeout"`
	PageSize    int            `json:"page_size"`
	NoColor     bool           `json:"no_color"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Missing flag means no JSON is loaded. Read or unmarshal
// errors panic; LoadConfig runs before any file is touched, so failing loudly
// here is safe.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.FilePath != "" {
		cfg.FilePath = jc.FilePath
	}
	if jc.BackupDir != "" {
		cfg.BackupDir = jc.BackupDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LockTimeout.Duration != 0 {
		cfg.LockTimeout = time.Duration(jc.LockTimeout.Duration)
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.NoColor {
		cfg.NoColor = true
	}
}
