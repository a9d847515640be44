package pkg

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

const (
	// ManifestName is the dependency/build manifest every uv project carries.
	ManifestName = "pyproject.toml"
	// PinFileName holds the pinned Python version, one line.
	PinFileName = ".python-version"
	// FallbackPython is used whenever no (valid) pin file exists.
	FallbackPython = "3.12"

	defaultVenv   = ".venv"
	defaultSrc    = "app"
	defaultModule = "app.main"
	defaultDevVar = "DEV_MODE"
)

// Project describes the state pydev operates on: the project root plus the
// handful of well-known paths inside it. All values besides Root are
// relative to Root and come from defaults or the optional pydev.yml.
type Project struct {
	Root       string
	Venv       string
	Src        string
	AppModule  string
	DevVar     string
	CleanExtra []string
	Hooks      map[string]string
}

// OpenProject locates the project root relative to the working directory and
// applies the pydev.yml overrides if that file exists.
func OpenProject() (*Project, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, eris.Wrap(err, "failed to retrieve the current working directory")
	}

	return openProjectAt(wd)
}

func openProjectAt(dir string) (*Project, error) {
	root := FindProjectRoot(dir)
	pf, err := LoadProjectFile(root)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Root:       root,
		Venv:       defaultVenv,
		Src:        defaultSrc,
		AppModule:  defaultModule,
		DevVar:     defaultDevVar,
		CleanExtra: pf.Clean,
		Hooks:      pf.Hooks,
	}

	if pf.Venv != "" {
		p.Venv = pf.Venv
	}
	if pf.Src != "" {
		p.Src = pf.Src
	}
	if pf.AppModule != "" {
		p.AppModule = pf.AppModule
	}
	if pf.DevVar != "" {
		p.DevVar = pf.DevVar
	}

	return p, nil
}

func (p *Project) VenvPath() string {
	return filepath.Join(p.Root, p.Venv)
}

func (p *Project) ManifestPath() string {
	return filepath.Join(p.Root, ManifestName)
}

func (p *Project) PinPath() string {
	return filepath.Join(p.Root, PinFileName)
}

func (p *Project) HasVenv() bool {
	info, err := os.Stat(p.VenvPath())
	return err == nil && info.IsDir()
}

func (p *Project) HasManifest() bool {
	info, err := os.Stat(p.ManifestPath())
	return err == nil && !info.IsDir()
}

// RequireVenv fails with a remediation hint when the virtual environment is
// missing. Every command that touches the environment checks this first.
func (p *Project) RequireVenv() error {
	if !p.HasVenv() {
		return eris.Errorf("virtual environment %s not found, run `pydev init` first", p.Venv)
	}
	return nil
}

func (p *Project) RequireManifest() error {
	if !p.HasManifest() {
		return eris.Errorf("%s not found, this doesn't look like a project root", ManifestName)
	}
	return nil
}

// VenvBin returns the path a tool installed into the virtual environment
// would have. .zip-based Python distributions on Windows use Scripts\ and an
// .exe suffix instead of bin/.
func (p *Project) VenvBin(tool string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.VenvPath(), "Scripts", tool+".exe")
	}
	return filepath.Join(p.VenvPath(), "bin", tool)
}

// ResolvePython determines the Python version for this project: the first
// line of the pin file if it parses as a version, the fallback otherwise.
// The pin content is returned verbatim, not normalized. The second return
// value names the source (the pin file or "fallback").
func (p *Project) ResolvePython() (string, string) {
	data, err := os.ReadFile(p.PinPath())
	if err != nil {
		if !eris.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msgf("Failed to read %s", PinFileName)
		}
		return FallbackPython, "fallback"
	}

	pin := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	if pin == "" {
		return FallbackPython, "fallback"
	}

	if _, err := semver.NewVersion(pin); err != nil {
		log.Warn().Msgf("Ignoring %s: %q is not a version", PinFileName, pin)
		return FallbackPython, "fallback"
	}

	return pin, PinFileName
}

// HookEnv lists the variables every hook script can rely on.
func (p *Project) HookEnv() map[string]string {
	return map[string]string{
		"PYDEV_ROOT": p.Root,
		"PYDEV_VENV": p.VenvPath(),
		"PYDEV_SRC":  filepath.Join(p.Root, p.Src),
	}
}
