package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotsdoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gotsdoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gotsdoc",
		Short: "A strict, spec-driven TSDoc comment parser",
		Long: `gotsdoc parses TSDoc documentation comments into a typed AST and reports
diagnostics for malformed or misused constructs.

It extracts /** ... */ comments from source files, tokenizes and parses each
one against a configurable tag vocabulary, and prints every diagnostic with
its exact source position. Tag definitions, synonyms, and support lists can
be customized through tsdoc.json files with extends chains.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to tsdoc.json file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
