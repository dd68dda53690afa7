// Package render turns content pages into fixed-size PDF pages using a
// headless browser.
//
// Pages are loaded from the mirror over file:// URLs so the browser resolves
// co-located assets exactly as it would on the live site, with full CSS and
// script evaluation. Before capture, a style overlay is injected: navigation
// and sidebar chrome is hidden (unless configured otherwise), wide elements
// such as tables and preformatted code are forced to wrap, and the output is
// pinned to a standard sheet size with margins. A fixed settle interval after
// load gives deferred content (syntax highlighting, lazy images) a chance to
// finish; it is a heuristic, not a guarantee, and heavily dynamic pages may
// capture incomplete.
//
// Two engine backends are supported: a managed Chromium download and a
// browser already installed on the host. Each render uses an isolated
// browser page, so renders are safe to dispatch concurrently.
//
// The package also builds the table-of-contents page: an HTML document
// generated from the resolved order and rendered through the same engine.
package render
