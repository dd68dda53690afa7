package nav

import (
	"path"
	"strings"

	"github.com/mirrorpress/mirrorpress/internal/model"
)

// entryPageNames are root-level entry document names in priority order.
var entryPageNames = []string{
	"index.html", "index.htm",
	"home.html", "home.htm",
	"default.html", "default.htm",
	"main.html", "main.htm",
}

// FindEntryPage picks the page used for navigation extraction from the
// discovered set. Priority:
//  1. A conventional index document at the mirror root
//  2. The index-named page with the shortest path
//  3. The shallowest page overall (ties broken lexically)
//
// Returns false only when the page set is empty.
func FindEntryPage(pages []*model.PageRecord) (string, bool) {
	if len(pages) == 0 {
		return "", false
	}

	byPath := make(map[string]bool, len(pages))
	for _, p := range pages {
		byPath[p.URLPath] = true
	}
	for _, name := range entryPageNames {
		if byPath[name] {
			return name, true
		}
	}

	best := ""
	for _, p := range pages {
		if !strings.HasPrefix(strings.ToLower(path.Base(p.URLPath)), "index.") {
			continue
		}
		if best == "" || shorter(p.URLPath, best) {
			best = p.URLPath
		}
	}
	if best != "" {
		return best, true
	}

	for _, p := range pages {
		if best == "" || shallower(p.URLPath, best) {
			best = p.URLPath
		}
	}
	return best, true
}

// shorter orders by path length, then lexically.
func shorter(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// shallower orders by path segment count, then lexically.
func shallower(a, b string) bool {
	da, db := strings.Count(a, "/"), strings.Count(b, "/")
	if da != db {
		return da < db
	}
	return a < b
}
