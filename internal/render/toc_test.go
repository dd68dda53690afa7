package render

import (
	"strings"
	"testing"

	"github.com/mirrorpress/mirrorpress/internal/model"
)

// TestTOCHTML tests table-of-contents generation.
func TestTOCHTML(t *testing.T) {
	t.Parallel()

	t.Run("entries appear in order with depth classes", func(t *testing.T) {
		t.Parallel()

		pages := []*model.PageRecord{
			{URLPath: "intro.html", Title: "Introduction", Depth: 0, OrderIndex: 0},
			{URLPath: "guide/setup.html", Title: "Setup", Depth: 1, OrderIndex: 1},
			{URLPath: "guide/deep.html", Title: "Deep", Depth: 7, OrderIndex: 2},
		}

		html := TOCHTML(pages)

		if !strings.Contains(html, "<strong>3</strong> pages") {
			t.Error("expected page count line")
		}

		introPos := strings.Index(html, "Introduction")
		setupPos := strings.Index(html, "Setup")
		if introPos < 0 || setupPos < 0 || introPos > setupPos {
			t.Error("expected entries in order-index order")
		}

		if !strings.Contains(html, `class="toc-item depth-0"`) {
			t.Error("expected depth-0 class")
		}
		if !strings.Contains(html, `class="toc-item depth-1"`) {
			t.Error("expected depth-1 class")
		}
		// Depth beyond the display cap collapses to the last band.
		if !strings.Contains(html, `class="toc-item depth-4"`) {
			t.Error("expected deep entry clamped to depth-4")
		}
		if strings.Contains(html, "depth-7") {
			t.Error("expected no depth-7 class")
		}

		if !strings.Contains(html, ">1.</span>") || !strings.Contains(html, ">2.</span>") {
			t.Error("expected sequence numbers")
		}
	})

	t.Run("titles and paths are escaped", func(t *testing.T) {
		t.Parallel()

		pages := []*model.PageRecord{
			{URLPath: "a&b.html", Title: "<script>x</script>", Depth: 0},
		}

		html := TOCHTML(pages)

		if strings.Contains(html, "<script>x</script>") {
			t.Error("expected title escaped")
		}
		if !strings.Contains(html, "&lt;script&gt;") {
			t.Error("expected escaped entities present")
		}
		if !strings.Contains(html, "a&amp;b.html") {
			t.Error("expected path escaped")
		}
	})

	t.Run("empty set renders a valid shell", func(t *testing.T) {
		t.Parallel()

		html := TOCHTML(nil)

		if !strings.Contains(html, "<strong>0</strong> pages") {
			t.Error("expected zero count")
		}
		if !strings.Contains(html, "</html>") {
			t.Error("expected complete document")
		}
	})
}
