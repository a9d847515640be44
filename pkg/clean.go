package pkg

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// cacheDirNames only ever hold derived state and are safe to delete
// wherever they appear.
var cacheDirNames = map[string]bool{
	"__pycache__":   true,
	".pytest_cache": true,
	".ruff_cache":   true,
	".mypy_cache":   true,
	"htmlcov":       true,
	"build":         true,
	"dist":          true,
	"site":          true,
}

var cacheFileNames = map[string]bool{
	".coverage": true,
}

// CleanNames lists every cache/artifact name clean removes, in the order
// they should appear in help text and tree excludes.
func CleanNames() []string {
	names := make([]string, 0, len(cacheDirNames)+len(cacheFileNames)+2)
	for name := range cacheDirNames {
		names = append(names, name)
	}
	for name := range cacheFileNames {
		names = append(names, name)
	}
	names = append(names, "*.pyc", "*.egg-info")

	sort.Strings(names)
	return names
}

func isCleanTarget(name string, isDir bool, extra []string) bool {
	if isDir {
		if cacheDirNames[name] || strings.HasSuffix(name, ".egg-info") {
			return true
		}
	} else {
		if cacheFileNames[name] || strings.HasSuffix(name, ".pyc") {
			return true
		}
	}

	for _, pattern := range extra {
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}

	return false
}

// ScanCleanTargets walks root and collects every cache/artifact path. The
// virtual environment and .git are never descended into; obliviate handles
// the environment separately.
func ScanCleanTargets(root, venv string, extra []string) []string {
	targets := make([]string, 0)
	venvPath := filepath.Join(root, venv)

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// unreadable entries are skipped, clean is best-effort
			return nil
		}
		if path == root {
			return nil
		}

		if path == venvPath || info.Name() == ".git" {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if isCleanTarget(info.Name(), info.IsDir(), extra) {
			targets = append(targets, path)
			if info.IsDir() {
				return filepath.SkipDir
			}
		}

		return nil
	})

	sort.Strings(targets)
	return targets
}

func newProgressBar(length int64, desc string, visible bool) *progressbar.ProgressBar {
	if !visible || os.Getenv("CI") == "true" {
		return progressbar.NewOptions64(length, progressbar.OptionSetVisibility(false))
	}

	return progressbar.Default(length, desc)
}

// RemoveTargets deletes the given paths, ignoring individual failures, and
// reports how many were actually removed.
func RemoveTargets(targets []string, showProgress bool) int {
	bar := newProgressBar(int64(len(targets)), "clean", showProgress)
	removed := 0

	for _, target := range targets {
		err := os.RemoveAll(target)
		if err != nil {
			log.Debug().Err(err).Msgf("Could not delete %s", target)
		} else {
			removed++
		}
		bar.Add(1)
	}

	bar.Finish()
	return removed
}
