package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pydevtool/pydev/pkg/config"
)

// chdirTemp moves the test into a fresh directory since the commands resolve
// the project from the working directory.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0660); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func withTestSettings(t *testing.T) {
	t.Helper()

	old := settings
	settings = &config.Settings{UV: "uv", Tree: "tree", NoProgress: true}
	t.Cleanup(func() { settings = old })
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestInitRefusesExistingVenv(t *testing.T) {
	dir := chdirTemp(t)
	withTestSettings(t)

	sentinel := filepath.Join(dir, ".venv", "pyvenv.cfg")
	writeFile(t, sentinel, "home = /usr\n")

	err := initCmd.RunE(initCmd, nil)
	if err == nil {
		t.Fatal("expected an error for an existing environment")
	}
	if !strings.Contains(err.Error(), "obliviate") {
		t.Fatalf("error should point at obliviate, got: %v", err)
	}

	if !exists(sentinel) {
		t.Fatal("the existing environment must be left untouched")
	}
}

func TestObliviateRemovesCachesAndVenv(t *testing.T) {
	dir := chdirTemp(t)
	withTestSettings(t)

	writeFile(t, filepath.Join(dir, ".venv", "bin", "python"), "")
	writeFile(t, filepath.Join(dir, "app", "__pycache__", "main.cpython-312.pyc"), "")
	writeFile(t, filepath.Join(dir, "app", "main.py"), "print('hi')\n")

	if err := obliviateCmd.RunE(obliviateCmd, nil); err != nil {
		t.Fatal(err)
	}

	if exists(filepath.Join(dir, ".venv")) {
		t.Fatal(".venv should have been removed")
	}
	if exists(filepath.Join(dir, "app", "__pycache__")) {
		t.Fatal("caches should have been removed")
	}
	if !exists(filepath.Join(dir, "app", "main.py")) {
		t.Fatal("source files must survive")
	}
}

func TestObliviateIsIdempotent(t *testing.T) {
	dir := chdirTemp(t)
	withTestSettings(t)

	writeFile(t, filepath.Join(dir, ".venv", "bin", "python"), "")

	if err := obliviateCmd.RunE(obliviateCmd, nil); err != nil {
		t.Fatal(err)
	}
	if err := obliviateCmd.RunE(obliviateCmd, nil); err != nil {
		t.Fatalf("second run on an already clean project: %v", err)
	}

	if exists(filepath.Join(dir, ".venv")) {
		t.Fatal(".venv should stay gone")
	}
}
