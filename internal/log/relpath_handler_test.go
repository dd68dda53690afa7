package log

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

// TestRelPathHandler tests path rewriting in log attributes.
func TestRelPathHandler(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer, root string) *slog.Logger {
		text := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(NewRelPathHandler(text, root))
	}

	t.Run("rewrites paths under root", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		root := filepath.Join("/", "home", "user", "mirror")
		logger := newLogger(&buf, root)

		logger.Warn("render failed", "page", filepath.Join(root, "docs", "a.html"))

		out := buf.String()
		if strings.Contains(out, root) {
			t.Errorf("expected root trimmed, got %q", out)
		}
		if !strings.Contains(out, filepath.Join("docs", "a.html")) {
			t.Errorf("expected relative path in output, got %q", out)
		}
	})

	t.Run("leaves unrelated values alone", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, filepath.Join("/", "home", "user", "mirror"))

		logger.Warn("note", "count", 3, "path", "/var/tmp/other.html")

		out := buf.String()
		if !strings.Contains(out, "/var/tmp/other.html") {
			t.Errorf("expected untouched path, got %q", out)
		}
		if !strings.Contains(out, "count=3") {
			t.Errorf("expected numeric attr preserved, got %q", out)
		}
	})

	t.Run("rewrites attrs added via With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		root := filepath.Join("/", "mirror")
		logger := newLogger(&buf, root)

		logger.With("entry", filepath.Join(root, "index.html")).Info("found entry page")

		out := buf.String()
		if strings.Contains(out, root+string(filepath.Separator)) {
			t.Errorf("expected root trimmed from With attr, got %q", out)
		}
	})

	t.Run("empty root passes through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, "")

		logger.Warn("msg", "page", "/abs/path.html")

		if !strings.Contains(buf.String(), "/abs/path.html") {
			t.Errorf("expected untouched output, got %q", buf.String())
		}
	})
}

// TestNewLogger tests level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("quiet mode drops info records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false, "")

		logger.Info("hidden")
		logger.Warn("visible")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("expected info suppressed, got %q", out)
		}
		if !strings.Contains(out, "visible") {
			t.Errorf("expected warning logged, got %q", out)
		}
	})

	t.Run("verbose mode keeps debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true, "")

		logger.Debug("detail")

		if !strings.Contains(buf.String(), "detail") {
			t.Errorf("expected debug logged, got %q", buf.String())
		}
	})
}
