// Package config loads .hanscan.toml. File values fill in anything the
// command line leaves unset; flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up in the scan root.
const FileName = ".hanscan.toml"

// Config mirrors the file. Pointer fields distinguish "absent" from zero so
// merging with flag values stays unambiguous.
type Config struct {
	Script   *string   `toml:"script"`
	Exclude  *[]string `toml:"exclude"`
	Jobs     *int      `toml:"jobs"`
	Cache    *bool     `toml:"cache"`
	Format   *string   `toml:"format"`
	LogLevel *string   `toml:"log_level"`
}

// Settings is the merged, validated configuration the commands run with.
type Settings struct {
	Script   string
	Exclude  []string
	Jobs     int
	Cache    bool
	Format   string
	LogLevel string
}

// Defaults returns the settings used when neither file nor flags say
// otherwise.
func Defaults() Settings {
	return Settings{
		Script:   "han",
		Jobs:     0, // scanner resolves 0 to NumCPU
		Format:   "text",
		LogLevel: "info",
	}
}

// Load reads and decodes a config file. A missing file is not an error; the
// zero Config applies nothing.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the path of the config file in dir, or "" when absent.
func Find(dir string) string {
	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path
	}
	return ""
}

// Apply overlays the file's values onto s.
func (c Config) Apply(s *Settings) {
	if c.Script != nil {
		s.Script = *c.Script
	}
	if c.Exclude != nil {
		s.Exclude = append([]string(nil), (*c.Exclude)...)
	}
	if c.Jobs != nil {
		s.Jobs = *c.Jobs
	}
	if c.Cache != nil {
		s.Cache = *c.Cache
	}
	if c.Format != nil {
		s.Format = *c.Format
	}
	if c.LogLevel != nil {
		s.LogLevel = *c.LogLevel
	}
}

// Validate rejects settings no command can run with.
func (s Settings) Validate() error {
	switch s.Format {
	case "text", "json", "ndjson":
	default:
		return fmt.Errorf("invalid format %q (want text, json, or ndjson)", s.Format)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	return nil
}
