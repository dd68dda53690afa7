package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mirrorpress/mirrorpress/internal/log"
	"github.com/mirrorpress/mirrorpress/internal/model"
	"github.com/mirrorpress/mirrorpress/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <mirror-dir>",
		Short: "Show the resolved page order without rendering",
		Long: `List runs discovery, navigation extraction, and order resolution, then
prints the page sequence a conversion would produce. No browser is started
and nothing is written.

Use this to check that the navigation sidebar was recognized and the
reading order looks right before a long rendering run.

Examples:
  # Preview the page order
  mirrorpress list ./docs.example.com

  # Preview with a page limit applied
  mirrorpress list -p 50 ./docs.example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runListCmd,
	}

	cmd.Flags().IntP("max-pages", "p", 0,
		"Maximum number of pages in the output (0 = unlimited)")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid mirror directory: %w", err)
	}

	maxPages, err := cmd.Flags().GetInt("max-pages")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd), root)
	slog.SetDefault(logger)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewDiscoverStep(pipeline.WithDiscoverLogger(logger)),
		pipeline.NewNavStep(pipeline.WithNavLogger(logger)),
		pipeline.NewResolveStep(
			pipeline.WithResolveMaxPages(maxPages),
			pipeline.WithResolveLogger(logger),
		),
	)

	conversionReport := model.NewConversionReport(root)
	if err := p.Execute(cmd.Context(), conversionReport); err != nil {
		return err
	}

	printPageOrder(cmd, conversionReport)
	return nil
}

// printPageOrder writes the resolved page sequence to the command's output.
func printPageOrder(cmd *cobra.Command, conversionReport *model.ConversionReport) {
	out := cmd.OutOrStdout()

	if conversionReport.EntryPage != "" {
		fmt.Fprintf(out, "Entry page: %s\n", conversionReport.EntryPage)
	}
	if conversionReport.DegradedOrdering {
		fmt.Fprintln(out, "No navigation region recognized; pages in path-sorted order.")
	}
	fmt.Fprintf(out, "%d pages (%d matched by navigation, %d orphaned)\n\n",
		len(conversionReport.Resolved), conversionReport.Matched, conversionReport.Orphaned)

	for i, page := range conversionReport.Resolved {
		indent := strings.Repeat("  ", page.Depth)
		fmt.Fprintf(out, "%3d. %s%s (%s)\n", i+1, indent, page.Title, page.URLPath)
	}

	if len(conversionReport.Skipped) > 0 {
		fmt.Fprintf(out, "\nSkipped:\n")
		for _, skipped := range conversionReport.Skipped {
			fmt.Fprintf(out, "  [-] %s: %s\n", skipped.Path, skipped.Reason)
		}
	}
}
