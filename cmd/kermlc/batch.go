package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kermlc/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Compile several files concurrently and summarize the results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "max concurrent compilations (0 means unbounded)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	units := make([]batch.Unit, len(args))
	for i, path := range args {
		units[i] = batch.Unit{Name: path, Path: path}
	}

	results, err := batch.Run(cmd.Context(), units, batch.Options{
		Session:        cfg.SessionOptions(),
		MaxConcurrency: jobs,
	})
	if err != nil {
		return fmt.Errorf("kermlc: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%s: %v\n", r.Unit.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %d diagnostic(s)\n", r.Unit.Name, len(r.Diags))
	}

	summary := batch.Summarize(results)
	fmt.Fprintf(out, "\n%d unit(s): %d failed to load, %d with errors, %d error(s), %d warning(s)\n",
		summary.Units, summary.Failed, summary.WithErrors, summary.ErrorCount, summary.WarnCount)

	if summary.Failed > 0 || summary.WithErrors > 0 {
		return fmt.Errorf("kermlc: batch completed with failures")
	}
	return nil
}
