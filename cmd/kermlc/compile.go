package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kermlc/internal/diagfmt"
	"kermlc/internal/session"
)

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	pmode, err := pathMode(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	s := session.New(cfg.SessionOptions())

	var name string
	if len(args) == 1 {
		name = args[0]
		if _, err := s.CompileFile(name); err != nil {
			return fmt.Errorf("kermlc: %w", err)
		}
	} else {
		name = "<stdin>"
		if _, err := s.CompileReader(name, cmd.InOrStdin()); err != nil {
			return fmt.Errorf("kermlc: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := diagfmt.JSON(out, s.Diags, s.Files, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pmode,
		}); err != nil {
			return fmt.Errorf("kermlc: %w", err)
		}
	default:
		diagfmt.Pretty(out, s.Diags, s.Files, diagfmt.PrettyOpts{
			Color:    cfg.ColorMode(),
			Context:  1,
			PathMode: pmode,
		})
		diagfmt.PrintSummary(out, s.Diags)
	}

	if s.Diags.HasErrors() || s.Diags.HasFatal() {
		os.Exit(1)
	}
	return nil
}
