package pkg

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionCollection sorts a string slice based on semver ordering rules
// while keeping the original (verbatim) strings.
type versionCollection struct {
	versions []string
	decoded  []*semver.Version
}

var _ sort.Interface = (*versionCollection)(nil)

func (c versionCollection) Len() int { return len(c.versions) }
func (c *versionCollection) Swap(i, j int) {
	c.versions[i], c.versions[j] = c.versions[j], c.versions[i]
	c.decoded[i], c.decoded[j] = c.decoded[j], c.decoded[i]
}

func (c versionCollection) Less(i, j int) bool {
	return c.decoded[i].LessThan(c.decoded[j])
}

// SortVersions orders version strings ascending. Strings that don't parse
// as versions are dropped since uv only ever reports proper versions.
func SortVersions(versions []string) []string {
	col := versionCollection{
		versions: make([]string, 0, len(versions)),
		decoded:  make([]*semver.Version, 0, len(versions)),
	}

	for _, strVer := range versions {
		ver, err := semver.NewVersion(strVer)
		if err != nil {
			continue
		}

		col.versions = append(col.versions, strVer)
		col.decoded = append(col.decoded, ver)
	}

	sort.Sort(&col)
	return col.versions
}

// ParsePythonList extracts the version column from `uv python list` output.
// Lines look like "cpython-3.12.3-linux-x86_64-gnu  /usr/bin/python3.12" or
// "cpython-3.13.0-linux-x86_64-gnu  <download available>"; the version is
// the second dash-separated field of the first column. Duplicates (several
// interpreters for one version) are collapsed.
func ParsePythonList(out string) []string {
	seen := make(map[string]bool)
	versions := make([]string, 0)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		parts := strings.Split(fields[0], "-")
		if len(parts) < 2 {
			continue
		}

		ver := parts[1]
		if ver == "" || ver[0] < '0' || ver[0] > '9' {
			continue
		}

		if !seen[ver] {
			seen[ver] = true
			versions = append(versions, ver)
		}
	}

	return SortVersions(versions)
}
