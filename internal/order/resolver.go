package order

import (
	"log/slog"
	"sort"

	"github.com/mirrorpress/mirrorpress/internal/model"
)

// Result is the outcome of order resolution.
type Result struct {
	// Pages is the resolved sequence. OrderIndex values are contiguous
	// from 0 and match each page's slice position.
	Pages []*model.PageRecord

	// Matched counts pages positioned by a navigation entry.
	Matched int

	// Orphaned counts pages appended without a navigation match.
	Orphaned int

	// Truncated counts pages dropped by the page ceiling.
	Truncated []*model.PageRecord

	// Degraded is true when no navigation entries were available and the
	// order fell back to path sorting.
	Degraded bool
}

// Resolver assigns the total order.
type Resolver struct {
	// maxPages truncates the resolved order when positive.
	maxPages int

	// logger is used for resolution summaries.
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxPages sets the page-count ceiling. Zero means unlimited.
func WithMaxPages(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxPages = n
		}
	}
}

// WithLogger sets a custom logger for the resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Resolve merges pages and navigation entries into the final order.
//
// Matching is exact: entry.Href against page.URLPath. The first navigation
// occurrence of a page wins its position and depth; later duplicates are
// ignored. Unmatched entries are dropped silently per the best-effort
// contract.
func (r *Resolver) Resolve(pages []*model.PageRecord, entries []model.NavigationEntry) *Result {
	result := &Result{}

	byURLPath := make(map[string]*model.PageRecord, len(pages))
	for _, p := range pages {
		byURLPath[p.URLPath] = p
	}

	placed := make(map[string]bool, len(pages))

	if len(entries) == 0 {
		result.Degraded = true
	} else {
		for _, entry := range entries {
			page, ok := byURLPath[entry.Href]
			if !ok || placed[page.URLPath] {
				continue
			}
			placed[page.URLPath] = true

			page.Depth = entry.Depth
			page.OrderIndex = len(result.Pages)
			// A navigation label is the author's name for the page; prefer
			// it when the page itself had only the filename fallback.
			if page.Title == "" {
				page.Title = entry.Label
			}
			result.Pages = append(result.Pages, page)
		}
		result.Matched = len(result.Pages)
	}

	// Orphans (or, in degraded mode, everything) in path-sorted order.
	var rest []*model.PageRecord
	for _, p := range pages {
		if !placed[p.URLPath] {
			rest = append(rest, p)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].URLPath < rest[j].URLPath
	})
	for _, p := range rest {
		p.Depth = 0
		p.OrderIndex = len(result.Pages)
		result.Pages = append(result.Pages, p)
	}
	if !result.Degraded {
		result.Orphaned = len(rest)
	}

	if r.maxPages > 0 && len(result.Pages) > r.maxPages {
		result.Truncated = result.Pages[r.maxPages:]
		result.Pages = result.Pages[:r.maxPages]
	}

	r.logger.Info("order resolved",
		"pages", len(result.Pages),
		"matched", result.Matched,
		"orphaned", result.Orphaned,
		"truncated", len(result.Truncated),
		"degraded", result.Degraded,
	)

	return result
}
