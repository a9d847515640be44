package pkg

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func buildFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []string{
		filepath.Join("app", "main.py"),
		filepath.Join("app", "__pycache__", "main.cpython-312.pyc"),
		filepath.Join(".pytest_cache", "CACHEDIR.TAG"),
		filepath.Join(".ruff_cache", "content"),
		filepath.Join("dist", "demo-0.1.0.tar.gz"),
		filepath.Join("demo.egg-info", "PKG-INFO"),
		filepath.Join(".venv", "bin", "python"),
		filepath.Join(".git", "HEAD"),
		".coverage",
		"stray.pyc",
		"README.md",
	}
	for _, rel := range files {
		writeFile(t, filepath.Join(root, rel), "x")
	}

	return root
}

func relTargets(t *testing.T, root string, targets []string) []string {
	t.Helper()
	rels := make([]string, len(targets))
	for i, target := range targets {
		rel, err := filepath.Rel(root, target)
		if err != nil {
			t.Fatal(err)
		}
		rels[i] = filepath.ToSlash(rel)
	}
	sort.Strings(rels)
	return rels
}

func TestScanCleanTargets(t *testing.T) {
	root := buildFixture(t)

	got := relTargets(t, root, ScanCleanTargets(root, ".venv", nil))
	want := []string{
		".coverage",
		".pytest_cache",
		".ruff_cache",
		"app/__pycache__",
		"demo.egg-info",
		"dist",
		"stray.pyc",
	}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestScanCleanTargetsExtraPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "debug.log"), "x")
	writeFile(t, filepath.Join(root, "keep.txt"), "x")

	got := relTargets(t, root, ScanCleanTargets(root, ".venv", []string{"*.log"}))
	if len(got) != 1 || got[0] != "debug.log" {
		t.Fatalf("expected only debug.log, got %v", got)
	}
}

func TestRemoveTargetsLeavesTheRest(t *testing.T) {
	root := buildFixture(t)

	targets := ScanCleanTargets(root, ".venv", nil)
	removed := RemoveTargets(targets, false)
	if removed != len(targets) {
		t.Fatalf("expected %d removals, got %d", len(targets), removed)
	}

	survivors := []string{
		filepath.Join("app", "main.py"),
		filepath.Join(".venv", "bin", "python"),
		filepath.Join(".git", "HEAD"),
		"README.md",
	}
	for _, rel := range survivors {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Fatalf("%s should have survived: %v", rel, err)
		}
	}

	for _, target := range targets {
		if _, err := os.Stat(target); err == nil {
			t.Fatalf("%s should be gone", target)
		}
	}

	// a second scan finds nothing, clean is idempotent
	if rest := ScanCleanTargets(root, ".venv", nil); len(rest) != 0 {
		t.Fatalf("expected no targets on the second pass, got %v", rest)
	}
}

func TestCleanNamesCoverKnownCaches(t *testing.T) {
	names := CleanNames()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}

	for _, name := range []string{"__pycache__", ".pytest_cache", ".mypy_cache", ".coverage", "dist", "build", "site", "*.pyc", "*.egg-info"} {
		if !seen[name] {
			t.Fatalf("%s missing from CleanNames: %v", name, names)
		}
	}
}
