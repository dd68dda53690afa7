package nav

import (
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mirrorpress/mirrorpress/internal/discover"
	"github.com/mirrorpress/mirrorpress/internal/model"
)

// Extractor parses a mirror's entry page and produces the ordered
// navigation entries found in its navigation region.
type Extractor struct {
	// root is the absolute mirror root, used to relativize resolved hrefs.
	root string

	// detectors are tried in order against the entry page.
	detectors []Detector

	// logger is used for debug output about detector selection.
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDetectors replaces the default detector list.
func WithDetectors(detectors []Detector) Option {
	return func(e *Extractor) {
		e.detectors = detectors
	}
}

// WithLogger sets a custom logger for the extractor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor for the given mirror root.
func NewExtractor(root string, opts ...Option) *Extractor {
	e := &Extractor{root: root}

	for _, opt := range opts {
		opt(e)
	}

	if e.detectors == nil {
		e.detectors = DefaultDetectors()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Extract parses the entry page (given relative to the mirror root) and
// returns the navigation entries in document order with depths.
//
// A missing navigation region, an unreadable entry page, or markup the
// parser cannot make sense of all yield an empty slice and a nil error:
// absent navigation degrades the run, it never aborts it.
func (e *Extractor) Extract(entryPage string) []model.NavigationEntry {
	f, err := os.Open(filepath.Join(e.root, filepath.FromSlash(entryPage))) //nolint:gosec // Entry page is discovered under the mirror root
	if err != nil {
		e.logger.Warn("cannot open entry page", "page", entryPage, "error", err)
		return nil
	}
	defer f.Close() //nolint:errcheck // Read-only file

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		e.logger.Warn("cannot parse entry page", "page", entryPage, "error", err)
		return nil
	}

	entryDir := path.Dir(entryPage)

	for _, detector := range e.detectors {
		region := doc.Find(detector.Selector).First()
		if region.Length() == 0 {
			continue
		}

		entries := e.collectEntries(region, entryDir)
		if len(entries) == 0 {
			continue
		}

		e.logger.Info("navigation region detected",
			"detector", detector.Name,
			"entries", len(entries),
		)
		return entries
	}

	e.logger.Debug("no navigation region recognized", "page", entryPage)
	return nil
}

// collectEntries walks the region's anchors in document order, normalizing
// hrefs and deriving depth from the list nesting between each anchor and
// the region container.
func (e *Extractor) collectEntries(region *goquery.Selection, entryDir string) []model.NavigationEntry {
	var entries []model.NavigationEntry

	// ParentsUntilSelection excludes the region node itself, so when the
	// region is a list its own nesting level is counted explicitly.
	regionLists := 0
	if name := goquery.NodeName(region); name == "ul" || name == "ol" {
		regionLists = 1
	}

	region.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		raw, _ := a.Attr("href")
		href, ok := normalizeHref(entryDir, raw)
		if !ok {
			return
		}

		label := discover.NormalizeText(a.Text())
		if label == "" {
			label = href
		}

		// Depth is one less than the number of enclosing lists: anchors in
		// the region's top-level list are depth 0.
		depth := a.ParentsUntilSelection(region).Filter("ul, ol").Length() + regionLists - 1
		if depth < 0 {
			depth = 0
		}

		entries = append(entries, model.NavigationEntry{
			Href:  href,
			Label: label,
			Depth: depth,
		})
	})

	return entries
}

// normalizeHref turns a raw href from the entry page's markup into a
// mirror-root-relative slash path comparable to PageRecord.URLPath.
// Query strings and fragments are stripped, percent-encoding is decoded,
// relative paths are resolved against the entry page's directory, and a
// trailing slash maps to the directory's index document.
//
// External links, fragment-only links, and links escaping the mirror root
// are rejected.
func normalizeHref(entryDir, raw string) (string, bool) {
	if raw == "" || strings.HasPrefix(raw, "#") {
		return "", false
	}
	lower := strings.ToLower(raw)
	for _, prefix := range []string{"http://", "https://", "//", "mailto:", "javascript:", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return "", false
		}
	}

	// Strip fragment, then query.
	href := raw
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	if i := strings.IndexByte(href, '?'); i >= 0 {
		href = href[:i]
	}
	if href == "" {
		return "", false
	}

	if decoded, err := url.PathUnescape(href); err == nil {
		href = decoded
	}

	trailingSlash := strings.HasSuffix(href, "/")

	var resolved string
	if strings.HasPrefix(href, "/") {
		// Site-root-absolute: relative to the mirror root.
		resolved = path.Clean(strings.TrimPrefix(href, "/"))
	} else {
		resolved = path.Clean(path.Join(entryDir, href))
	}

	if resolved == "." {
		resolved = ""
	}
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		return "", false
	}

	if trailingSlash || resolved == "" {
		resolved = path.Join(resolved, "index.html")
	}

	return resolved, true
}
