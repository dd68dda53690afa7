package discover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with parent directories.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

// TestDiscover tests content-page discovery and exclusion rules.
func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("finds content pages and skips noise", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "index.html", "<html><head><title>Home</title></head><body></body></html>")
		writeFile(t, root, "docs/guide.html", "<html><head><title>Guide</title></head></html>")
		writeFile(t, root, "docs/api.htm", "<html><head><title>API</title></head></html>")
		// Noise that must never be enumerated.
		writeFile(t, root, "hts-cache/new.html", "<html><title>cache</title></html>")
		writeFile(t, root, "hts-log/crawl.html", "<html></html>")
		writeFile(t, root, "index.html~", "<html></html>")
		writeFile(t, root, "docs/partial.html.part", "<html></html>")
		writeFile(t, root, "404.html", "<html><head><title>404 Not Found</title></head></html>")
		writeFile(t, root, "404/index.html", "<html><head><title>whatever</title></head></html>")
		writeFile(t, root, "errors/missing.html", "<html><head><title>Page Not Found</title></head></html>")
		writeFile(t, root, "style.css", "body{}")
		writeFile(t, root, "app.js", "void 0")
		writeFile(t, root, "logo.png", "\x89PNG")

		d := New(root)
		pages, _, err := d.Discover()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(pages) != 3 {
			paths := make([]string, 0, len(pages))
			for _, p := range pages {
				paths = append(paths, p.URLPath)
			}
			t.Fatalf("expected 3 pages, got %d: %v", len(pages), paths)
		}

		// Lexical walk order.
		want := []string{"docs/api.htm", "docs/guide.html", "index.html"}
		for i, p := range pages {
			if p.URLPath != want[i] {
				t.Errorf("pages[%d]: expected %q, got %q", i, want[i], p.URLPath)
			}
		}
	})

	t.Run("extracts titles with filename fallback", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "a.html", "<html><head><title>  Getting \n Started  </title></head></html>")
		writeFile(t, root, "untitled.html", "<html><body><p>no title here</p></body></html>")

		pages, _, err := New(root).Discover()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		byPath := make(map[string]string, len(pages))
		for _, p := range pages {
			byPath[p.URLPath] = p.Title
		}
		if byPath["a.html"] != "Getting Started" {
			t.Errorf("expected normalized title, got %q", byPath["a.html"])
		}
		if byPath["untitled.html"] != "untitled" {
			t.Errorf("expected filename stem fallback, got %q", byPath["untitled.html"])
		}
	})

	t.Run("missing root is fatal", func(t *testing.T) {
		t.Parallel()

		_, _, err := New(filepath.Join(t.TempDir(), "nope")).Discover()
		if !errors.Is(err, ErrMirrorNotFound) {
			t.Errorf("expected ErrMirrorNotFound, got %v", err)
		}
	})

	t.Run("empty mirror is fatal", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "only.css", "body{}")

		_, _, err := New(root).Discover()
		if !errors.Is(err, ErrEmptyMirror) {
			t.Errorf("expected ErrEmptyMirror, got %v", err)
		}
	})
}

// TestIsDocumentPage tests the filename classifier.
func TestIsDocumentPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want bool
	}{
		{"html page", "index.html", true},
		{"htm page", "old.htm", true},
		{"uppercase extension", "PAGE.HTML", true},
		{"stylesheet", "site.css", false},
		{"script", "app.js", false},
		{"image", "fade.gif", false},
		{"editor backup", "index.html~", false},
		{"partial download", "big.html.part", false},
		{"temp file", "x.html.tmp", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isDocumentPage(tt.file); got != tt.want {
				t.Errorf("isDocumentPage(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

// TestNormalizeText tests whitespace collapsing.
func TestNormalizeText(t *testing.T) {
	t.Parallel()

	if got := NormalizeText("  a\tb \n c  "); got != "a b c" {
		t.Errorf("expected %q, got %q", "a b c", got)
	}
	if got := NormalizeText(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
