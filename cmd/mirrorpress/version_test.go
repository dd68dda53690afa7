package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestVersionCmd tests the version command output.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := NewVersionCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "mirrorpress version") {
		t.Errorf("output missing version line: %q", out)
	}
	if !strings.Contains(out, "commit:") {
		t.Errorf("output missing commit line: %q", out)
	}
	if !strings.Contains(out, "built:") {
		t.Errorf("output missing build date line: %q", out)
	}
}

// TestGetVersion tests version string resolution.
func TestGetVersion(t *testing.T) {
	if v := getVersion(); v == "" {
		t.Error("expected non-empty version")
	}
	if c := getCommit(); c == "" {
		t.Error("expected non-empty commit")
	}
	if d := getDate(); d == "" {
		t.Error("expected non-empty date")
	}
}
