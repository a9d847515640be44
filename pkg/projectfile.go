package pkg

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ProjectFileName is the optional per-project override file.
const ProjectFileName = "pydev.yml"

// ProjectFile mirrors pydev.yml. Everything is optional; zero values keep
// the built-in defaults.
type ProjectFile struct {
	Venv      string            `yaml:"venv,omitempty"`
	Src       string            `yaml:"src,omitempty"`
	AppModule string            `yaml:"appModule,omitempty"`
	DevVar    string            `yaml:"devVar,omitempty"`
	Clean     []string          `yaml:"clean,omitempty"`
	Hooks     map[string]string `yaml:"hooks,omitempty"`
}

// LoadProjectFile reads pydev.yml from root. A missing file is not an
// error, it simply means no overrides.
func LoadProjectFile(root string) (ProjectFile, error) {
	var pf ProjectFile

	path := filepath.Join(root, ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return pf, nil
		}
		return pf, eris.Wrapf(err, "could not open file %s", path)
	}

	err = yaml.Unmarshal(data, &pf)
	if err != nil {
		return pf, eris.Wrapf(err, "failed to parse %s", path)
	}

	return pf, nil
}
