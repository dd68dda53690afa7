// Package nav recovers the intended reading order of a mirrored site from
// the navigation markup on its entry page.
//
// Documentation generators render the site's page hierarchy into a sidebar
// or navigation container. The extractor locates that region with a small
// ordered list of structural detectors (container selectors for common
// generators, ending with a bare <nav> fallback), then walks the region's
// anchors in document order. Nesting depth comes from the list structure
// inside the region, not from visual styling.
//
// Extraction is best-effort by contract: malformed markup or a page with no
// recognizable navigation region yields an empty entry list and no error.
// The order resolver treats the empty list as the signal to fall back to
// path-sorted ordering.
package nav
