package hooks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func testCtx() context.Context {
	logger := zerolog.Nop()
	return WithLogger(context.Background(), &logger)
}

func TestRunWritesMarker(t *testing.T) {
	dir := t.TempDir()

	err := Run(testCtx(), Script{
		Name: "post-install",
		Body: "printf ok > marker.txt",
		Dir:  dir,
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "marker.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ok" {
		t.Fatalf("unexpected marker content %q", data)
	}
}

func TestRunPassesEnv(t *testing.T) {
	dir := t.TempDir()

	err := Run(testCtx(), Script{
		Name: "pre-build",
		Body: `printf "$PYDEV_ROOT" > root.txt`,
		Dir:  dir,
		Env:  map[string]string{"PYDEV_ROOT": "/some/root"},
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "root.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/some/root" {
		t.Fatalf("unexpected env content %q", data)
	}
}

func TestRunStopsOnFailure(t *testing.T) {
	dir := t.TempDir()

	err := Run(testCtx(), Script{
		Name: "pre-lint",
		Body: "false\nprintf no > leftover.txt",
		Dir:  dir,
	})
	if err == nil {
		t.Fatal("expected the failing statement to abort the hook")
	}

	if _, statErr := os.Stat(filepath.Join(dir, "leftover.txt")); statErr == nil {
		t.Fatal("statements after a failure must not run")
	}
}

func TestExitCode(t *testing.T) {
	err := Run(testCtx(), Script{
		Name: "pre-dev",
		Body: "exit 3",
		Dir:  t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	code, ok := ExitCode(err)
	if !ok || code != 3 {
		t.Fatalf("expected exit status 3, got %d (ok=%v)", code, ok)
	}
}

func TestRunRejectsBrokenScript(t *testing.T) {
	err := Run(testCtx(), Script{
		Name: "pre-init",
		Body: "if then fi",
		Dir:  t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
