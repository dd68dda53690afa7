package render

import (
	"strings"

	"github.com/mirrorpress/mirrorpress/internal/config"
)

// defaultHideSelectors are the navigation and chrome elements hidden when
// sidebar hiding is enabled. The set covers the common documentation
// generators; profiles add generator-specific selectors on top.
var defaultHideSelectors = []string{
	".sidebar", "aside.sidebar", ".sidebar-mask", ".sidebar-button",
	".navbar", "header.navbar", "nav",
	".page-edit", ".page-nav", ".search-box", ".global-ui",
}

// defaultContentSelectors are elements whose presence signals that the main
// content has been attached, used as a pre-capture readiness check.
var defaultContentSelectors = []string{
	".theme-default-content", ".content__default", "main",
}

// baseStyleRules is the print overlay applied to every page before capture.
// The rules force all content visible and wrapping so nothing is cut off at
// the sheet edge, and keep unbreakable elements on one page.
var baseStyleRules = []string{
	"* { overflow: visible !important; max-width: none !important; }",
	"html, body { width: auto !important; overflow: visible !important; }",
	"body, main, .page, div, section { max-width: none !important; width: auto !important; }",
	"img, svg, video, canvas { max-width: 100% !important; height: auto !important; }",
	"main.page, .page, main { margin: 0 !important; padding: 0 8mm !important; }",
	"pre, pre code, code { white-space: pre-wrap !important; word-break: break-all !important; overflow-wrap: break-word !important; }",
	"table { table-layout: auto !important; width: 100% !important; border-collapse: collapse !important; overflow: visible !important; }",
	"table td, table th { white-space: normal !important; overflow-wrap: break-word !important; overflow: visible !important; padding: 6px !important; font-size: 12px !important; line-height: 1.5 !important; }",
	"table td code, table th code { white-space: pre-wrap !important; word-break: break-all !important; }",
	"[style*='position:fixed'], [style*='position: fixed'] { display: none !important; }",
	"tr, pre, figure { page-break-inside: avoid !important; }",
}

// StyleOverlay assembles the CSS injected into each page before capture.
// When hideSidebar is true, the built-in navigation selectors plus any
// extra profile selectors are hidden.
func StyleOverlay(paper config.Paper, hideSidebar bool, extraHide []string) string {
	var b strings.Builder

	b.WriteString("@page { size: " + string(paper) + "; margin: 10mm 10mm 12mm 10mm; }\n")
	for _, rule := range baseStyleRules {
		b.WriteString(rule)
		b.WriteByte('\n')
	}

	if hideSidebar {
		selectors := make([]string, 0, len(defaultHideSelectors)+len(extraHide))
		selectors = append(selectors, defaultHideSelectors...)
		selectors = append(selectors, extraHide...)
		b.WriteString(strings.Join(selectors, ", "))
		b.WriteString(" { display: none !important; }\n")
	}

	return b.String()
}

// paperSize returns the sheet dimensions in inches for the capture call.
func paperSize(paper config.Paper) (width, height float64) {
	switch paper {
	case config.PaperLetter:
		return 8.5, 11.0
	default: // A4
		return 8.27, 11.69
	}
}
