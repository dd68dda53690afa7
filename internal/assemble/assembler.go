package assemble

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mirrorpress/mirrorpress/internal/model"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// ErrNothingRendered is returned when no content pages were successfully
// rendered. An empty output document is never produced silently.
var ErrNothingRendered = errors.New("no pages were rendered, refusing to write an empty document")

// Assembler merges rendered pages into the final output document.
type Assembler struct {
	// outputPath is where the combined PDF is written.
	outputPath string

	// withOutline controls generation of the bookmark tree.
	withOutline bool

	// logger is used for merge progress output.
	logger *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithOutline controls whether an outline tree is attached to the merged
// document. Enabled by default.
func WithOutline(enabled bool) Option {
	return func(a *Assembler) {
		a.withOutline = enabled
	}
}

// WithLogger sets a custom logger for the assembler.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// New creates an Assembler writing to outputPath.
func New(outputPath string, opts ...Option) *Assembler {
	a := &Assembler{
		outputPath:  outputPath,
		withOutline: true,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Assemble merges the table of contents (optional, nil to omit) and the
// rendered content pages into the output document.
//
// Returns ErrNothingRendered when pages is empty; the TOC alone does not
// make a document.
func (a *Assembler) Assemble(toc *model.RenderedPage, pages []*model.RenderedPage) error {
	if len(pages) == 0 {
		return ErrNothingRendered
	}

	ordered := make([]*model.RenderedPage, len(pages))
	copy(ordered, pages)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	var files []string
	if toc != nil {
		files = append(files, toc.File)
	}
	for _, p := range ordered {
		files = append(files, p.File)
	}

	a.logger.Info("merging rendered pages", "files", len(files), "output", a.outputPath)
	if err := api.MergeCreateFile(files, a.outputPath, false, nil); err != nil {
		return fmt.Errorf("failed to merge pages: %w", err)
	}

	if !a.withOutline {
		return nil
	}
	if err := a.attachOutline(toc, ordered); err != nil {
		// The merged document is complete and readable without an outline;
		// losing navigation is not worth losing the artifact.
		a.logger.Warn("failed to attach outline", "error", err)
	}
	return nil
}

// attachOutline computes each page's position in the merged document and
// writes the bookmark tree. The outline is the document's jump-target
// surface: every content page gets a bookmark at its first merged page.
func (a *Assembler) attachOutline(toc *model.RenderedPage, ordered []*model.RenderedPage) error {
	var bookmarks []pdfcpu.Bookmark

	preceding := 0
	if toc != nil {
		count, err := api.PageCountFile(toc.File)
		if err != nil {
			return fmt.Errorf("failed to count toc pages: %w", err)
		}
		bookmarks = append(bookmarks, pdfcpu.Bookmark{Title: "Table of Contents", PageFrom: 1})
		preceding = count
	}

	counts := make([]int, len(ordered))
	for i, p := range ordered {
		count, err := api.PageCountFile(p.File)
		if err != nil {
			return fmt.Errorf("failed to count pages of %s: %w", p.File, err)
		}
		counts[i] = count
	}

	bookmarks = append(bookmarks, buildOutline(ordered, pageStarts(preceding, counts))...)

	if err := api.AddBookmarksFile(a.outputPath, a.outputPath, bookmarks, true, nil); err != nil {
		return fmt.Errorf("failed to write outline: %w", err)
	}
	return nil
}

// pageStarts returns the 1-based first page of each merged file in the
// combined document, given the per-file page counts and the number of
// pages preceding the first file (the table of contents, usually).
func pageStarts(preceding int, counts []int) []int {
	starts := make([]int, len(counts))
	offset := preceding + 1
	for i, count := range counts {
		starts[i] = offset
		offset += count
	}
	return starts
}

// buildOutline converts the flat depth-annotated page sequence into a
// nested bookmark tree. A page deeper than its predecessor becomes a child
// of it; a page with no possible parent is flattened to the current level
// rather than dropped.
func buildOutline(pages []*model.RenderedPage, starts []int) []pdfcpu.Bookmark {
	var build func(i, depth int) ([]pdfcpu.Bookmark, int)
	build = func(i, depth int) ([]pdfcpu.Bookmark, int) {
		var out []pdfcpu.Bookmark
		for i < len(pages) {
			switch d := pages[i].Depth; {
			case d < depth:
				return out, i
			case d > depth && len(out) > 0:
				var kids []pdfcpu.Bookmark
				kids, i = build(i, d)
				out[len(out)-1].Kids = kids
			default:
				out = append(out, pdfcpu.Bookmark{
					Title:    pages[i].Title,
					PageFrom: starts[i],
				})
				i++
			}
		}
		return out, i
	}

	bookmarks, _ := build(0, 0)
	return bookmarks
}
