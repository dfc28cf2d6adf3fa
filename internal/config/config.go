// Package config loads an optional kermlc.toml into the knobs spec §4.3's
// diagnostic context exposes (max_errors, warnings-as-errors, color mode)
// plus the arena block size a session pre-sizes its AST with. Absence of
// the file is not an error: every field keeps the default Default()
// returns.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"kermlc/internal/diag"
	"kermlc/internal/diagfmt"
	"kermlc/internal/session"
)

// Config mirrors kermlc.toml's [diagnostics] and [session] tables.
type Config struct {
	Diagnostics struct {
		MaxErrors        int    `toml:"max_errors"`
		WarningsAsErrors bool   `toml:"warnings_as_errors"`
		Color            string `toml:"color"`
	} `toml:"diagnostics"`
	Session struct {
		ArenaBlockSize int `toml:"arena_block_size"`
	} `toml:"session"`
}

// Default returns the spec-mandated defaults: max_errors 20, color auto,
// warnings_as_errors false, arena_block_size matching session's own
// default.
func Default() Config {
	var c Config
	c.Diagnostics.MaxErrors = diag.DefaultMaxErrors
	c.Diagnostics.Color = "auto"
	c.Session.ArenaBlockSize = session.DefaultArenaBlockSize
	return c
}

// Load reads path and decodes it over Default()'s values. A missing file
// is not an error: Load returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// SessionOptions translates the decoded config into session.Options.
func (c Config) SessionOptions() session.Options {
	return session.Options{
		MaxErrors:       c.Diagnostics.MaxErrors,
		PromoteWarnings: c.Diagnostics.WarningsAsErrors,
		ArenaBlockSize:  uint32(c.Session.ArenaBlockSize),
	}
}

// ColorMode translates the configured color string into a
// diagfmt.ColorMode, defaulting to ColorAuto for an empty or unrecognized
// value.
func (c Config) ColorMode() diagfmt.ColorMode {
	switch c.Diagnostics.Color {
	case "always":
		return diagfmt.ColorAlways
	case "never":
		return diagfmt.ColorNever
	default:
		return diagfmt.ColorAuto
	}
}
