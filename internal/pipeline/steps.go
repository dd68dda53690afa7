package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/mirrorpress/mirrorpress/internal/discover"
	"github.com/mirrorpress/mirrorpress/internal/model"
	"github.com/mirrorpress/mirrorpress/internal/nav"
	"github.com/mirrorpress/mirrorpress/internal/order"
	"golang.org/x/sync/errgroup"
)

// Renderer is the rendering capability the pipeline consumes: HTML in,
// fixed-page-size PDF out. Implementations must be safe for concurrent use.
type Renderer interface {
	// RenderPage captures one content page from the mirror to outFile.
	RenderPage(ctx context.Context, page *model.PageRecord, outFile string) error

	// RenderHTML captures a generated HTML document to outFile.
	RenderHTML(ctx context.Context, htmlContent, outFile string) error
}

// Assembler merges rendered pages into the final output document.
type Assembler interface {
	// Assemble writes the combined document from the TOC (nil to omit) and
	// the rendered content pages.
	Assemble(toc *model.RenderedPage, pages []*model.RenderedPage) error
}

// DiscoverStep scans the mirror root for content pages.
type DiscoverStep struct {
	logger *slog.Logger
}

// DiscoverStepOption configures a DiscoverStep.
type DiscoverStepOption func(*DiscoverStep)

// WithDiscoverLogger sets a custom logger for the step.
func WithDiscoverLogger(logger *slog.Logger) DiscoverStepOption {
	return func(s *DiscoverStep) {
		s.logger = logger
	}
}

// NewDiscoverStep creates the discovery step.
func NewDiscoverStep(opts ...DiscoverStepOption) *DiscoverStep {
	s := &DiscoverStep{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name.
func (s *DiscoverStep) Name() string { return "discover_pages" }

// Do walks the mirror tree. A missing or empty mirror is fatal.
func (s *DiscoverStep) Do(_ context.Context, report *model.ConversionReport) error {
	d := discover.New(report.MirrorRoot, discover.WithLogger(s.logger))

	pages, skipped, err := d.Discover()
	for _, sk := range skipped {
		report.AddSkipped(sk.Path, sk.Reason)
		report.AddWarning(fmt.Sprintf("skipped %s: %s", sk.Path, sk.Reason))
	}
	if err != nil {
		return err
	}

	report.Pages = pages
	return nil
}

// NavStep extracts navigation entries from the mirror's entry page.
type NavStep struct {
	logger *slog.Logger
}

// NavStepOption configures a NavStep.
type NavStepOption func(*NavStep)

// WithNavLogger sets a custom logger for the step.
func WithNavLogger(logger *slog.Logger) NavStepOption {
	return func(s *NavStep) {
		s.logger = logger
	}
}

// NewNavStep creates the navigation extraction step.
func NewNavStep(opts ...NavStepOption) *NavStep {
	s := &NavStep{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name.
func (s *NavStep) Name() string { return "extract_navigation" }

// Do locates the entry page and extracts its navigation region.
// Missing navigation is not an error; the resolver falls back.
func (s *NavStep) Do(_ context.Context, report *model.ConversionReport) error {
	entry, ok := nav.FindEntryPage(report.Pages)
	if !ok {
		return nil
	}
	report.EntryPage = entry

	extractor := nav.NewExtractor(report.MirrorRoot, nav.WithLogger(s.logger))
	report.NavEntries = extractor.Extract(entry)
	return nil
}

// ResolveStep merges discovered pages with navigation entries into the
// final total order.
type ResolveStep struct {
	maxPages int
	logger   *slog.Logger
}

// ResolveStepOption configures a ResolveStep.
type ResolveStepOption func(*ResolveStep)

// WithResolveMaxPages sets the page-count ceiling. Zero means unlimited.
func WithResolveMaxPages(n int) ResolveStepOption {
	return func(s *ResolveStep) {
		s.maxPages = n
	}
}

// WithResolveLogger sets a custom logger for the step.
func WithResolveLogger(logger *slog.Logger) ResolveStepOption {
	return func(s *ResolveStep) {
		s.logger = logger
	}
}

// NewResolveStep creates the order resolution step.
func NewResolveStep(opts ...ResolveStepOption) *ResolveStep {
	s := &ResolveStep{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name.
func (s *ResolveStep) Name() string { return "resolve_order" }

// Do assigns the total order and records degraded/truncation outcomes.
func (s *ResolveStep) Do(_ context.Context, report *model.ConversionReport) error {
	resolver := order.NewResolver(
		order.WithMaxPages(s.maxPages),
		order.WithLogger(s.logger),
	)

	result := resolver.Resolve(report.Pages, report.NavEntries)

	report.Resolved = result.Pages
	report.Matched = result.Matched
	report.Orphaned = result.Orphaned

	if result.Degraded {
		report.DegradedOrdering = true
		report.AddWarning("no navigation region recognized, using path-sorted order")
	}
	for _, p := range result.Truncated {
		report.AddSkipped(p.URLPath, "over page limit")
	}
	return nil
}

// RenderStep renders every resolved page to its own PDF, dispatching up to
// a bounded number of concurrent rendering sessions.
type RenderStep struct {
	renderer    Renderer
	workDir     string
	concurrency int
	logger      *slog.Logger
}

// RenderStepOption configures a RenderStep.
type RenderStepOption func(*RenderStep)

// WithRenderConcurrency sets the number of simultaneous rendering sessions.
func WithRenderConcurrency(n int) RenderStepOption {
	return func(s *RenderStep) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithRenderLogger sets a custom logger for the step.
func WithRenderLogger(logger *slog.Logger) RenderStepOption {
	return func(s *RenderStep) {
		s.logger = logger
	}
}

// NewRenderStep creates the rendering step. Intermediate PDFs are written
// into workDir, which the caller owns and cleans up.
func NewRenderStep(renderer Renderer, workDir string, opts ...RenderStepOption) *RenderStep {
	s := &RenderStep{
		renderer:    renderer,
		workDir:     workDir,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name.
func (s *RenderStep) Name() string { return "render_pages" }

// Do renders all resolved pages. Individual failures are logged and the
// page is skipped; the step itself only fails on cancellation.
func (s *RenderStep) Do(ctx context.Context, report *model.ConversionReport) error {
	total := len(report.Resolved)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, page := range report.Resolved {
		i, page := i, page
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			s.logger.Info(fmt.Sprintf("[%d/%d] rendering", i+1, total), "page", page.URLPath)

			outFile := filepath.Join(s.workDir, fmt.Sprintf("page_%04d.pdf", page.OrderIndex))
			if err := s.renderer.RenderPage(ctx, page, outFile); err != nil {
				s.logger.Warn("render failed", "page", page.URLPath, "error", err)
				mu.Lock()
				report.AddSkipped(page.URLPath, "render failed")
				report.AddWarning(fmt.Sprintf("skipped %s: render failed: %v", page.URLPath, err))
				mu.Unlock()
				return nil
			}

			mu.Lock()
			report.Rendered = append(report.Rendered, &model.RenderedPage{
				File:       outFile,
				OrderIndex: page.OrderIndex,
				Title:      page.Title,
				Depth:      page.Depth,
			})
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

// TOCStep generates and renders the table-of-contents page.
type TOCStep struct {
	renderer Renderer
	workDir  string
	enabled  bool
	buildTOC func([]*model.PageRecord) string
	logger   *slog.Logger
}

// TOCStepOption configures a TOCStep.
type TOCStepOption func(*TOCStep)

// WithTOCEnabled toggles TOC generation. Enabled by default.
func WithTOCEnabled(enabled bool) TOCStepOption {
	return func(s *TOCStep) {
		s.enabled = enabled
	}
}

// WithTOCLogger sets a custom logger for the step.
func WithTOCLogger(logger *slog.Logger) TOCStepOption {
	return func(s *TOCStep) {
		s.logger = logger
	}
}

// NewTOCStep creates the TOC step. buildTOC turns the ordered page
// sequence into the TOC document's HTML.
func NewTOCStep(renderer Renderer, workDir string, buildTOC func([]*model.PageRecord) string, opts ...TOCStepOption) *TOCStep {
	s := &TOCStep{
		renderer: renderer,
		workDir:  workDir,
		enabled:  true,
		buildTOC: buildTOC,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name.
func (s *TOCStep) Name() string { return "build_toc" }

// Do renders the table of contents from the pages that rendered
// successfully, so TOC numbering always matches the assembled document.
// A TOC render failure drops the TOC with a warning, never the run.
func (s *TOCStep) Do(ctx context.Context, report *model.ConversionReport) error {
	if !s.enabled {
		s.logger.Debug("toc generation disabled")
		return nil
	}
	if len(report.Rendered) == 0 {
		return nil
	}

	rendered := make(map[int]bool, len(report.Rendered))
	for _, p := range report.Rendered {
		rendered[p.OrderIndex] = true
	}

	var tocPages []*model.PageRecord
	for _, p := range report.Resolved {
		if rendered[p.OrderIndex] {
			tocPages = append(tocPages, p)
		}
	}

	outFile := filepath.Join(s.workDir, "toc.pdf")
	if err := s.renderer.RenderHTML(ctx, s.buildTOC(tocPages), outFile); err != nil {
		s.logger.Warn("toc render failed", "error", err)
		report.AddWarning(fmt.Sprintf("table of contents omitted: %v", err))
		return nil
	}

	report.TOC = &model.RenderedPage{
		File:       outFile,
		OrderIndex: model.TOCOrderIndex,
		Title:      "Table of Contents",
	}
	return nil
}

// AssembleStep merges the rendered pages into the output document.
type AssembleStep struct {
	assembler Assembler
	logger    *slog.Logger
}

// AssembleStepOption configures an AssembleStep.
type AssembleStepOption func(*AssembleStep)

// WithAssembleLogger sets a custom logger for the step.
func WithAssembleLogger(logger *slog.Logger) AssembleStepOption {
	return func(s *AssembleStep) {
		s.logger = logger
	}
}

// NewAssembleStep creates the assembly step.
func NewAssembleStep(assembler Assembler, opts ...AssembleStepOption) *AssembleStep {
	s := &AssembleStep{assembler: assembler}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name.
func (s *AssembleStep) Name() string { return "assemble_document" }

// Do writes the combined document. Zero rendered pages is fatal.
func (s *AssembleStep) Do(_ context.Context, report *model.ConversionReport) error {
	if err := s.assembler.Assemble(report.TOC, report.Rendered); err != nil {
		return err
	}

	s.logger.Info("document assembled",
		"output", report.OutputPath,
		"pages", len(report.Rendered),
		"toc", report.TOC != nil,
	)
	return nil
}
