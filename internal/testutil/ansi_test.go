package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStripANSI(t *testing.T) {
	got := StripANSI("\x1b[1;31mred\x1b[0m plain")
	if got != "red plain" {
		t.Fatalf("expected %q, got %q", "red plain", got)
	}
}

func TestPlainLinesTrimsPadding(t *testing.T) {
	lines := PlainLines("\x1b[7m a  \x1b[0m\nb   ")
	if len(lines) != 2 || lines[0] != " a" || lines[1] != "b" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestWidthIgnoresEscapes(t *testing.T) {
	if w := Width("\x1b[32m╭──╮\x1b[0m"); w != 4 {
		t.Fatalf("expected width 4, got %d", w)
	}
}

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}
