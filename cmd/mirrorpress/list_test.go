package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeMirrorFixture lays out a small mirror with a sidebar on the entry page.
func writeMirrorFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"index.html": `<!DOCTYPE html>
<html><head><title>Home</title></head>
<body>
<aside class="sidebar">
  <ul>
    <li><a href="guide.html">Guide</a></li>
    <li><a href="guide/setup.html">Setup</a></li>
  </ul>
</aside>
<main>Welcome</main>
</body></html>`,
		"guide.html":       `<html><head><title>Guide</title></head><body><main>guide</main></body></html>`,
		"guide/setup.html": `<html><head><title>Setup</title></head><body><main>setup</main></body></html>`,
		"orphan.html":      `<html><head><title>Orphan</title></head><body><main>orphan</main></body></html>`,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	return dir
}

// TestListCmd runs the dry-run pipeline over a fixture mirror.
func TestListCmd(t *testing.T) {
	t.Parallel()

	t.Run("resolves sidebar order", func(t *testing.T) {
		t.Parallel()

		dir := writeMirrorFixture(t)

		var buf bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{"list", dir})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Entry page: index.html") {
			t.Errorf("output missing entry page: %q", out)
		}
		if !strings.Contains(out, "4 pages (2 matched by navigation, 2 orphaned)") {
			t.Errorf("output missing counts: %q", out)
		}

		// Sidebar pages lead, orphans follow in path order.
		for first, second := range map[string]string{
			"Guide": "Setup",
			"Setup": "Home",
			"Home":  "Orphan",
		} {
			if strings.Index(out, first) > strings.Index(out, second) {
				t.Errorf("expected %q before %q in:\n%s", first, second, out)
			}
		}
	})

	t.Run("missing mirror is an error", func(t *testing.T) {
		t.Parallel()

		root := NewRootCmd()
		root.SetOut(new(bytes.Buffer))
		root.SetErr(new(bytes.Buffer))
		root.SetArgs([]string{"list", filepath.Join(t.TempDir(), "absent")})

		if err := root.Execute(); err == nil {
			t.Error("expected error for missing mirror directory")
		}
	})

	t.Run("page limit truncates the listing", func(t *testing.T) {
		t.Parallel()

		dir := writeMirrorFixture(t)

		var buf bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{"list", "-p", "2", dir})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "2 pages") {
			t.Errorf("expected truncated count in output: %q", out)
		}
		if !strings.Contains(out, "over page limit") {
			t.Errorf("expected truncation reason in skipped section: %q", out)
		}
	})
}
