package model

import "time"

// SkippedPage records a page that was excluded from the output along with
// the reason, so the final summary can enumerate skipped pages by path.
type SkippedPage struct {
	// Path is the page path relative to the mirror root.
	Path string `json:"path"`

	// Reason is a short human-readable explanation.
	Reason string `json:"reason"`
}

// ConversionReport carries the working state and outcome of one conversion
// run through the pipeline. Each step reads what earlier steps produced and
// appends its own results; the report writers consume the final state.
//
// The report is mutated by exactly one goroutine at a time: steps execute
// sequentially, and the render step synchronizes its own workers before
// writing results back.
type ConversionReport struct {
	// MirrorRoot is the absolute path of the mirror directory being converted.
	MirrorRoot string `json:"mirror_root"`

	// EntryPage is the mirror-relative path of the page used for navigation
	// extraction, empty if none was found.
	EntryPage string `json:"entry_page,omitempty"`

	// OutputPath is where the assembled PDF was (or would be) written.
	OutputPath string `json:"output_path"`

	// DateConverted is when the run started.
	DateConverted time.Time `json:"date_converted"`

	// Elapsed is the total wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// Pages holds all discovered content pages, in discovery order.
	Pages []*PageRecord `json:"pages,omitempty"`

	// NavEntries holds the navigation entries extracted from the entry page.
	NavEntries []NavigationEntry `json:"nav_entries,omitempty"`

	// Resolved holds the final ordered page sequence. OrderIndex values are
	// unique and contiguous from 0.
	Resolved []*PageRecord `json:"resolved,omitempty"`

	// Rendered holds the successfully rendered content pages.
	Rendered []*RenderedPage `json:"rendered,omitempty"`

	// TOC is the rendered table-of-contents page, nil when disabled or when
	// TOC rendering failed.
	TOC *RenderedPage `json:"toc,omitempty"`

	// Matched counts resolved pages that were positioned by a navigation entry.
	Matched int `json:"matched"`

	// Orphaned counts discovered pages with no matching navigation entry.
	Orphaned int `json:"orphaned"`

	// Skipped enumerates pages excluded from the output (failed render,
	// truncated by the page ceiling, unreadable file).
	Skipped []SkippedPage `json:"skipped,omitempty"`

	// Warnings collects per-page and degraded-mode warnings for the summary.
	Warnings []string `json:"warnings,omitempty"`

	// DegradedOrdering is true when no navigation region was recognized and
	// the run fell back to path-sorted ordering.
	DegradedOrdering bool `json:"degraded_ordering"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the fatal error that aborted the run, if any.
	// Not serialized; ErrorMessage carries the text for JSON output.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewConversionReport creates a report for the given mirror root with the
// start time set to now.
func NewConversionReport(mirrorRoot string) *ConversionReport {
	return &ConversionReport{
		MirrorRoot:    mirrorRoot,
		DateConverted: time.Now(),
	}
}

// Discovered returns the number of content pages found in the mirror.
func (r *ConversionReport) Discovered() int {
	return len(r.Pages)
}

// RenderedCount returns the number of successfully rendered content pages.
// The TOC page is not counted.
func (r *ConversionReport) RenderedCount() int {
	return len(r.Rendered)
}

// AddWarning appends a warning to the report.
func (r *ConversionReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddSkipped records a page excluded from the output.
func (r *ConversionReport) AddSkipped(path, reason string) {
	r.Skipped = append(r.Skipped, SkippedPage{Path: path, Reason: reason})
}
