package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/mirrorpress/mirrorpress/internal/model"
)

// tocMaxDepth caps the indentation levels shown in the table of contents.
// Deeper pages are displayed at this level so entries never crawl off the
// right edge of the sheet.
const tocMaxDepth = 4

// tocStyle is the embedded stylesheet for the table-of-contents page.
// Depth bands get distinct left-border colors so the hierarchy reads at a
// glance even without the indentation.
const tocStyle = `
body { font-family: Arial, sans-serif; max-width: 900px; margin: 40px auto; padding: 20px; }
h1 { color: #333; border-bottom: 3px solid #4CAF50; padding-bottom: 10px; }
.toc-item { margin: 8px 0; padding: 8px 10px; border-left: 3px solid #ddd; }
.toc-item.depth-0 { margin-left: 0; border-left-color: #4CAF50; background-color: #f9f9f9; }
.toc-item.depth-1 { margin-left: 20px; border-left-color: #2196F3; }
.toc-item.depth-2 { margin-left: 40px; border-left-color: #FF9800; }
.toc-item.depth-3 { margin-left: 60px; border-left-color: #9C27B0; }
.toc-item.depth-4 { margin-left: 80px; }
.page-number { color: #666; font-weight: bold; margin-right: 10px; min-width: 30px; display: inline-block; }
.page-title { color: #333; font-size: 15px; font-weight: 500; }
.page-path { color: #999; font-size: 11px; margin-top: 4px; font-family: monospace; }
.depth-indicator { color: #bbb; margin-right: 5px; font-size: 12px; }
`

// TOCHTML generates the table-of-contents document for the given pages,
// in order-index order. Each entry shows its sequence number, title, and
// mirror path, indented by hierarchy depth.
func TOCHTML(pages []*model.PageRecord) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Table of Contents</title>\n<style>")
	b.WriteString(tocStyle)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString("<h1>Table of Contents</h1>\n")
	fmt.Fprintf(&b, "<p><strong>%d</strong> pages</p>\n<hr>\n", len(pages))

	for i, page := range pages {
		depth := page.Depth
		if depth > tocMaxDepth {
			depth = tocMaxDepth
		}

		indicator := ""
		if page.Depth > 0 {
			indicator = "&#9492;&#9472; "
		}

		fmt.Fprintf(&b, "<div class=\"toc-item depth-%d\">\n", depth)
		fmt.Fprintf(&b, "  <span class=\"page-number\">%d.</span>\n", i+1)
		fmt.Fprintf(&b, "  <span class=\"depth-indicator\">%s</span>\n", indicator)
		fmt.Fprintf(&b, "  <span class=\"page-title\">%s</span>\n", html.EscapeString(page.Title))
		fmt.Fprintf(&b, "  <div class=\"page-path\">%s</div>\n", html.EscapeString(page.URLPath))
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
