// Package cli provides the Cobra command structure for mdindex.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdindex/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdindex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdindex",
		Short: "Regenerate the derived Markdown indexes of a notes repository",
		Long: `mdindex keeps a notes repository's derived Markdown in sync with its
content: it reads the MkDocs navigation, scans the category directories,
and regenerates the landing index, the flattened all-notes index, and one
index page per category. Files are only rewritten when their content
actually changes, so repeated runs are no-ops.`,
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
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newSyncCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
