package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/carlens/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "carlens.yaml"), []byte("carlens:\n  output:\n    format: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}

	// A file inside the workspace resolves the same way.
	file := filepath.Join(nested, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	got, err = f.FindRoot(file)
	if err != nil || got != root {
		t.Fatalf("expected root=%s from file, got=%s err=%v", root, got, err)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestFindOrDefault(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "plain")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	root, found, err := NewFinder().FindOrDefault(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected no workspace")
	}
	if root != dir {
		t.Fatalf("expected fallback to %s, got %s", dir, root)
	}

	if err := os.WriteFile(filepath.Join(dir, "carlens.yaml"), []byte("carlens: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	root, found, err = NewFinder().FindOrDefault(dir)
	if err != nil || !found || root != dir {
		t.Fatalf("expected workspace at %s, got root=%s found=%v err=%v", dir, root, found, err)
	}
}
