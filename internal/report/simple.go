package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mirrorpress/mirrorpress/internal/model"
)

// SimpleWriter outputs human-readable text summaries.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no entries are shown.
	showEmpty bool

	// verbose enables the per-page listing in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with the full page listing.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the conversion summary in human-readable format.
func (w *SimpleWriter) Write(report *model.ConversionReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeCounts(&sb, report)
	w.writePages(&sb, report)
	w.writeSkipped(&sb, report)
	w.writeWarnings(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the summary header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ConversionReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      CONVERSION SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Mirror Root:  %s\n", report.MirrorRoot))
	if report.EntryPage != "" {
		sb.WriteString(fmt.Sprintf("Entry Page:   %s\n", report.EntryPage))
	}
	sb.WriteString(fmt.Sprintf("Output:       %s\n", report.OutputPath))
	sb.WriteString(fmt.Sprintf("Date:         %s\n", report.DateConverted.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Elapsed:      %s\n", report.Elapsed.Round(time.Millisecond)))

	switch {
	case report.Error != nil:
		sb.WriteString(fmt.Sprintf("Status:       ERROR - %s\n", report.ErrorMessage))
	case report.DegradedOrdering:
		sb.WriteString("Status:       Complete (path-sorted order, no navigation found)\n")
	default:
		sb.WriteString("Status:       Complete\n")
	}

	sb.WriteString("\n")
}

// writeCounts writes the page-count summary section.
func (w *SimpleWriter) writeCounts(sb *strings.Builder, report *model.ConversionReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Discovered: %d\n", report.Discovered()))
	sb.WriteString(fmt.Sprintf("  Matched:    %d (positioned by navigation)\n", report.Matched))
	sb.WriteString(fmt.Sprintf("  Orphaned:   %d (appended in path order)\n", report.Orphaned))
	sb.WriteString(fmt.Sprintf("  Rendered:   %d\n", report.RenderedCount()))
	sb.WriteString(fmt.Sprintf("  Skipped:    %d\n", len(report.Skipped)))
	sb.WriteString("\n")
}

// writePages writes the ordered page listing when verbose is enabled.
func (w *SimpleWriter) writePages(sb *strings.Builder, report *model.ConversionReport) {
	if !w.verbose || len(report.Resolved) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PAGE ORDER\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for i, page := range report.Resolved {
		indent := strings.Repeat("  ", page.Depth)
		sb.WriteString(fmt.Sprintf("  %3d. %s%s (%s)\n", i+1, indent, page.Title, page.URLPath))
	}
	sb.WriteString("\n")
}

// writeSkipped writes the skipped-pages section.
func (w *SimpleWriter) writeSkipped(sb *strings.Builder, report *model.ConversionReport) {
	if len(report.Skipped) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SKIPPED PAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Skipped) == 0 {
		sb.WriteString("  No pages skipped\n")
	} else {
		for _, skipped := range report.Skipped {
			sb.WriteString(fmt.Sprintf("  [-] %s: %s\n", skipped.Path, skipped.Reason))
		}
	}
	sb.WriteString("\n")
}

// writeWarnings writes the warnings section.
func (w *SimpleWriter) writeWarnings(sb *strings.Builder, report *model.ConversionReport) {
	if len(report.Warnings) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("WARNINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Warnings) == 0 {
		sb.WriteString("  No warnings\n")
	} else {
		for _, warning := range report.Warnings {
			sb.WriteString(fmt.Sprintf("  [!] %s\n", warning))
		}
	}
	sb.WriteString("\n")
}

// writeFooter writes the summary footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Generated by mirrorpress\n")
	sb.WriteString("https://github.com/mirrorpress/mirrorpress\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
