package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kermlc/internal/config"
	"kermlc/internal/diagfmt"
)

// loadConfig reads the --config path (if present on disk), then lets
// --max-errors and --warnings-as-errors override whatever the file set,
// mirroring how cobra flags take precedence over file-based defaults in
// the rest of the toolchain this CLI borrows its shape from.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("kermlc: %w", err)
	}

	if cmd.Root().PersistentFlags().Changed("max-errors") {
		maxErrors, err := cmd.Root().PersistentFlags().GetInt("max-errors")
		if err != nil {
			return config.Config{}, err
		}
		cfg.Diagnostics.MaxErrors = maxErrors
	}
	if cmd.Root().PersistentFlags().Changed("warnings-as-errors") {
		warn, err := cmd.Root().PersistentFlags().GetBool("warnings-as-errors")
		if err != nil {
			return config.Config{}, err
		}
		cfg.Diagnostics.WarningsAsErrors = warn
	}
	if cmd.Root().PersistentFlags().Changed("color") {
		color, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return config.Config{}, err
		}
		cfg.Diagnostics.Color = color
	}
	return cfg, nil
}

func pathMode(cmd *cobra.Command) (diagfmt.PathMode, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("path-mode")
	if err != nil {
		return diagfmt.PathModeAuto, err
	}
	switch strings.ToLower(mode) {
	case "", "auto":
		return diagfmt.PathModeAuto, nil
	case "absolute":
		return diagfmt.PathModeAbsolute, nil
	case "relative":
		return diagfmt.PathModeRelative, nil
	case "basename":
		return diagfmt.PathModeBasename, nil
	default:
		return diagfmt.PathModeAuto, fmt.Errorf("kermlc: unrecognized --path-mode %q", mode)
	}
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Root().PersistentFlags().GetString("format")
	if err != nil {
		return "", err
	}
	switch strings.ToLower(format) {
	case "pretty", "json":
		return strings.ToLower(format), nil
	default:
		return "", fmt.Errorf("kermlc: unrecognized --format %q (must be pretty or json)", format)
	}
}
