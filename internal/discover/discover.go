package discover

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mirrorpress/mirrorpress/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Discovery failure sentinels. Both abort the run: a conversion with no
// input directory or no pages has nothing to produce.
var (
	// ErrMirrorNotFound is returned when the mirror root does not exist or
	// is not a directory.
	ErrMirrorNotFound = errors.New("mirror directory not found")

	// ErrEmptyMirror is returned when the mirror root contains no content pages.
	ErrEmptyMirror = errors.New("no content pages found in mirror directory")
)

// crawlerDirs are crawler housekeeping directories whose contents are never
// content pages. hts-cache and hts-log are HTTrack's bookkeeping trees.
var crawlerDirs = map[string]bool{
	"hts-cache": true,
	"hts-log":   true,
}

// partialSuffixes mark temporary or incomplete downloads left by the crawler.
var partialSuffixes = []string{"~", ".tmp", ".part", ".crdownload"}

// errorTitlePattern matches <title> text of saved error/placeholder pages.
// Matching is restricted to the title so a document about error handling is
// not excluded by its body text.
var errorTitlePattern = regexp.MustCompile(`(?i)\b(404|page not found|not found|403 forbidden|500 internal server error)\b`)

// whitespacePattern collapses runs of whitespace in extracted titles.
var whitespacePattern = regexp.MustCompile(`\s+`)

// maxTitleScan bounds how much of a page is read when sniffing its title.
// Titles live in <head>; 64KB covers even bloated generator output.
const maxTitleScan = 64 * 1024

// Discoverer scans a mirror root for content pages.
type Discoverer struct {
	// root is the absolute mirror root directory.
	root string

	// logger is used for per-file warnings.
	logger *slog.Logger
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithLogger sets a custom logger for the discoverer.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Discoverer) {
		d.logger = logger
	}
}

// New creates a Discoverer for the given mirror root.
func New(root string, opts ...Option) *Discoverer {
	d := &Discoverer{root: root}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = slog.Default()
	}

	return d
}

// Discover walks the mirror tree and returns the content pages found, in
// lexical path order, together with the files skipped because they could
// not be read or were classified as error pages.
//
// Returns ErrMirrorNotFound if the root is missing and ErrEmptyMirror if
// the walk finds no content pages at all.
func (d *Discoverer) Discover() ([]*model.PageRecord, []model.SkippedPage, error) {
	info, err := os.Stat(d.root)
	if err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrMirrorNotFound, d.root)
	}

	var pages []*model.PageRecord
	var skipped []model.SkippedPage

	walkErr := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			d.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			skipped = append(skipped, model.SkippedPage{Path: path, Reason: "unreadable"})
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if crawlerDirs[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		if !isDocumentPage(entry.Name()) {
			return nil
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		urlPath := filepath.ToSlash(rel)

		if isErrorPath(urlPath) {
			d.logger.Debug("excluding error page by path", "path", path)
			return nil
		}

		title, err := scanTitle(path)
		if err != nil {
			d.logger.Warn("skipping unreadable page", "path", path, "error", err)
			skipped = append(skipped, model.SkippedPage{Path: urlPath, Reason: "unreadable"})
			return nil
		}
		if errorTitlePattern.MatchString(title) {
			d.logger.Debug("excluding error page by title", "path", path, "title", title)
			return nil
		}
		if title == "" {
			title = filenameStem(entry.Name())
		}

		pages = append(pages, &model.PageRecord{
			Path:    rel,
			URLPath: urlPath,
			Title:   title,
		})
		return nil
	})
	if walkErr != nil {
		return nil, nil, fmt.Errorf("failed to walk mirror directory: %w", walkErr)
	}

	if len(pages) == 0 {
		return nil, skipped, fmt.Errorf("%w: %s", ErrEmptyMirror, d.root)
	}

	d.logger.Info("discovery complete", "pages", len(pages), "skipped", len(skipped))
	return pages, skipped, nil
}

// isDocumentPage reports whether the filename has a document-page extension
// and is not a partial download.
func isDocumentPage(name string) bool {
	for _, suffix := range partialSuffixes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// isErrorPath reports whether the mirror-relative slash path signals a saved
// HTTP error page, such as a /404/ directory or a 404.html document.
func isErrorPath(urlPath string) bool {
	base := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(urlPath), ".html"), ".htm")
	if base == "404" || base == "403" || base == "500" {
		return true
	}
	for _, part := range strings.Split(urlPath, "/") {
		if part == "404" {
			return true
		}
	}
	return false
}

// scanTitle reads the page far enough to extract its <title> text.
// The returned title is whitespace-normalized and NFC-normalized; it is
// empty when the page has no title element.
func scanTitle(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Paths come from walking the user-supplied mirror root
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Read-only file

	tokenizer := html.NewTokenizer(io.LimitReader(f, maxTitleScan))
	inTitle := false
	var title strings.Builder

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// EOF or malformed markup past the point of interest.
			return NormalizeText(title.String()), nil
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "title" {
				inTitle = true
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "title" {
				return NormalizeText(title.String()), nil
			}
		case html.TextToken:
			if inTitle {
				title.Write(tokenizer.Text())
			}
		}
	}
}

// filenameStem returns the filename without its extension, used as the
// title fallback for pages with no <title>.
func filenameStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// NormalizeText collapses whitespace runs to single spaces, trims the ends,
// and applies Unicode NFC normalization. Shared with the navigation
// extractor for label cleanup.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " ")))
}
