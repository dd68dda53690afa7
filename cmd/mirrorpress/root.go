// Package main provides the entry point for the mirrorpress CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for mirrorpress.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirrorpress",
		Short: "Convert an offline website mirror into a single paginated PDF",
		Long: `mirrorpress turns a locally mirrored website (an HTTrack download or any
directory of HTML files) into one paginated PDF in reading order.

It recovers the site's reading order from its navigation sidebar, renders
each page through headless Chromium with print-friendly styling, and merges
the results with a table of contents and a clickable outline.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewConvertCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
