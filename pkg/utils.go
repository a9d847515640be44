package pkg

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
)

// FindProjectRoot walks upwards from dir until it finds a pyproject.toml.
// A fresh project has no manifest yet, so if the search reaches the
// filesystem root without a match, dir itself is returned.
func FindProjectRoot(dir string) string {
	path, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	current := path
	for {
		_, err := os.Stat(filepath.Join(current, ManifestName))
		if err == nil {
			return current
		}
		if !eris.Is(err, os.ErrNotExist) {
			return path
		}

		parent := filepath.Dir(current)
		if parent == current {
			return path
		}
		current = parent
	}
}

func PrintTask(msg string) {
	colorstring.Printf("[blue][bold]==>[default] %s\n", msg)
}

func PrintSubtask(msg string) {
	colorstring.Printf("[green][bold]  ->[reset] %s\n", msg)
}

func PrintWarning(msg string) {
	colorstring.Printf("[yellow][bold]  ->[reset] %s\n", msg)
}

func PrintError(msg string) {
	colorstring.Fprintf(os.Stderr, "[red][bold]  ->[reset] %s\n", msg)
}
