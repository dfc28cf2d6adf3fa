// Command kermlc is a thin demonstration front end over the kermlc
// packages: it wires a file or stdin through internal/session, renders
// whatever internal/diagfmt produces, and optionally writes back the
// edits internal/fix selects. It is a collaborator over the compiler
// packages, not the core deliverable.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"kermlc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kermlc [flags] <file>",
	Short: "KerML/SysML v2 front end: lex, parse, and analyze one file",
	Long: `kermlc compiles a single KerML or SysML v2 source file (or stdin, when
no file is given) through the lexer, parser, and semantic analyzer, then
reports whatever diagnostics came out the other end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(batchCmd)

	rootCmd.PersistentFlags().String("format", "pretty", "diagnostic output format (pretty|json)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize pretty output (auto|always|never)")
	rootCmd.PersistentFlags().String("path-mode", "auto", "how file paths are displayed (auto|absolute|relative|basename)")
	rootCmd.PersistentFlags().Int("max-errors", 0, "stop after this many errors (0 means unlimited)")
	rootCmd.PersistentFlags().Bool("warnings-as-errors", false, "promote warnings to errors")
	rootCmd.PersistentFlags().String("config", "kermlc.toml", "path to an optional config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
