package model

// PageRecord represents one content page discovered in the mirror directory.
// Records are created by the discoverer with Path and URLPath set, enriched
// by the order resolver (Depth, OrderIndex, title refinement), and consumed
// read-only by the renderer, TOC builder, and assembler.
type PageRecord struct {
	// Path is the page's location relative to the mirror root, using the
	// platform separator. It is the record's stable identity key.
	Path string `json:"path"`

	// URLPath is the slash-separated path as it would have appeared on the
	// live site. Navigation hrefs are normalized to this form for matching.
	URLPath string `json:"url_path"`

	// Title is the page title from the <title> tag, falling back to the
	// filename stem when the page has none.
	Title string `json:"title"`

	// Depth is the hierarchy nesting level (0 = top level). Assigned by the
	// order resolver from navigation nesting; pages outside the navigation
	// keep the default of 0.
	Depth int `json:"depth"`

	// OrderIndex is the page's final position in the output sequence.
	// Assigned exactly once by the order resolver and immutable thereafter.
	OrderIndex int `json:"order_index"`
}

// NavigationEntry is a single link found in the entry page's navigation
// region. Each entry maps to at most one PageRecord via Href == URLPath;
// unmatched entries are dropped without error.
type NavigationEntry struct {
	// Href is the link target after normalization: query and fragment
	// stripped, percent-decoded, resolved against the entry page location,
	// relative to the mirror root with forward slashes.
	Href string `json:"href"`

	// Label is the link's visible text, whitespace-normalized.
	Label string `json:"label"`

	// Depth is the nesting level inferred from list structure within the
	// navigation region, not from visual indentation.
	Depth int `json:"depth"`
}
