package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kermlc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kermlc version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kermlc %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
		}
		return nil
	},
}
