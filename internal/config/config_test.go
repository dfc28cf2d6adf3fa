package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"kermlc/internal/config"
	"kermlc/internal/diagfmt"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "kermlc.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Diagnostics.MaxErrors != 20 {
		t.Fatalf("expected default max_errors 20, got %d", cfg.Diagnostics.MaxErrors)
	}
	if cfg.ColorMode() != diagfmt.ColorAuto {
		t.Fatalf("expected default color mode auto")
	}
}

func TestLoadDecodesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kermlc.toml")
	content := `
[diagnostics]
max_errors = 5
warnings_as_errors = true
color = "always"

[session]
arena_block_size = 128
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Diagnostics.MaxErrors != 5 {
		t.Fatalf("unexpected max_errors: %d", cfg.Diagnostics.MaxErrors)
	}
	if !cfg.Diagnostics.WarningsAsErrors {
		t.Fatal("expected warnings_as_errors true")
	}
	if cfg.ColorMode() != diagfmt.ColorAlways {
		t.Fatal("expected color mode always")
	}

	opts := cfg.SessionOptions()
	if opts.MaxErrors != 5 || !opts.PromoteWarnings || opts.ArenaBlockSize != 128 {
		t.Fatalf("unexpected session options: %+v", opts)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kermlc.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}

func TestColorModeDefaultsOnUnrecognizedValue(t *testing.T) {
	cfg := config.Default()
	cfg.Diagnostics.Color = "rainbow"
	if cfg.ColorMode() != diagfmt.ColorAuto {
		t.Fatalf("expected unrecognized color value to fall back to auto")
	}
}
