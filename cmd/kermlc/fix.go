package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kermlc/internal/fix"
	"kermlc/internal/session"
)

var fixCmd = &cobra.Command{
	Use:   "fix <file>",
	Short: "Compile a file and apply its machine-applicable edits",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-conflicting edit")
	fixCmd.Flags().String("id", "", "apply only the candidate with this identifier")
}

func runFix(cmd *cobra.Command, args []string) error {
	path := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	if targetID != "" && applyAll {
		return fmt.Errorf("kermlc: --id cannot be combined with --all")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s := session.New(cfg.SessionOptions())
	if _, err := s.CompileFile(path); err != nil {
		return fmt.Errorf("kermlc: %w", err)
	}

	mode := fix.ApplyModeOnce
	switch {
	case targetID != "":
		mode = fix.ApplyModeID
	case applyAll:
		mode = fix.ApplyModeAll
	}

	result, err := fix.Apply(s.Files, s.Diags.Items(), fix.ApplyOptions{Mode: mode, TargetID: targetID})
	if err != nil {
		return fmt.Errorf("kermlc: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, applied := range result.Applied {
		fmt.Fprintf(out, "applied %s: %s (%d edit(s))\n", applied.Code.String(), applied.Message, applied.EditCount)
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "skipped %s: %s\n", skipped.ID, skipped.Reason)
	}
	for _, change := range result.FileChanges {
		fmt.Fprintf(out, "wrote %s (%d edit(s))\n", change.Path, change.EditCount)
	}
	return nil
}
