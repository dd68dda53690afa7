package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mirrorpress/mirrorpress/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs conversion summaries in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the conversion summary in Markdown format.
func (w *MarkdownWriter) Write(report *model.ConversionReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeCounts(md, report)
	w.writePages(md, report)
	w.writeSkipped(md, report)
	w.writeWarnings(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the summary header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ConversionReport) {
	md.H1("Conversion Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Mirror Root", "`" + report.MirrorRoot + "`"},
			{"Entry Page", codeOrDash(report.EntryPage)},
			{"Output", "`" + report.OutputPath + "`"},
			{"Date", report.DateConverted.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed.Round(time.Millisecond).String()},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// codeOrDash wraps a value in backticks, or returns a dash when empty.
func codeOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.ConversionReport) string {
	if report.Error != nil {
		return "❌ Error - " + report.ErrorMessage
	}
	if report.DegradedOrdering {
		return "⚠️ Complete (path-sorted order, no navigation found)"
	}
	return "✅ Complete"
}

// writeCounts writes the page-count summary section.
func (w *MarkdownWriter) writeCounts(md *markdown.Markdown, report *model.ConversionReport) {
	md.H2("Pages")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Stage", "Count"},
		Rows: [][]string{
			{"Discovered", strconv.Itoa(report.Discovered())},
			{"Matched by navigation", strconv.Itoa(report.Matched)},
			{"Orphaned", strconv.Itoa(report.Orphaned)},
			{"Rendered", strconv.Itoa(report.RenderedCount())},
			{"Skipped", strconv.Itoa(len(report.Skipped))},
		},
	})
	md.PlainText("")

	w.writeAlert(md, report)
}

// writeAlert writes an appropriate alert based on the run outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ConversionReport) {
	switch {
	case report.Error != nil:
		md.Cautionf("Conversion failed: %s", report.ErrorMessage)
	case report.DegradedOrdering:
		md.Warningf("No navigation region was recognized. Pages appear in path-sorted order.")
	case len(report.Skipped) > 0:
		md.Importantf("%d page(s) were skipped. See the skipped pages section below.", len(report.Skipped))
	default:
		md.Tip("All discovered pages made it into the document.")
	}
	md.PlainText("")
}

// writePages writes the ordered page listing.
func (w *MarkdownWriter) writePages(md *markdown.Markdown, report *model.ConversionReport) {
	md.H2("Page Order")
	md.PlainText("")

	if len(report.Resolved) == 0 {
		md.PlainText("No pages resolved.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Resolved))
	for i, page := range report.Resolved {
		indent := strings.Repeat("&nbsp;&nbsp;", page.Depth)
		rows[i] = []string{
			strconv.Itoa(i + 1),
			indent + page.Title,
			"`" + page.URLPath + "`",
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Title", "Path"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSkipped writes the skipped-pages section.
func (w *MarkdownWriter) writeSkipped(md *markdown.Markdown, report *model.ConversionReport) {
	if len(report.Skipped) == 0 {
		return
	}

	md.H2("Skipped Pages")
	md.PlainText("")

	rows := make([][]string, len(report.Skipped))
	for i, skipped := range report.Skipped {
		rows[i] = []string{"`" + skipped.Path + "`", skipped.Reason}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Path", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeWarnings writes the warnings section.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, report *model.ConversionReport) {
	if len(report.Warnings) == 0 {
		return
	}

	md.H2("Warnings")
	md.PlainText("")
	md.BulletList(report.Warnings...)
	md.PlainText("")
}

// writeFooter writes the summary footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [mirrorpress](https://github.com/mirrorpress/mirrorpress)*")
}
