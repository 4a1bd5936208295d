package bootstrap

import (
	_ "embed"

	"github.com/shellkit/shellkit/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/packages.yaml
var packageManifest []byte

// PackageGroup is a named set of apt packages in the manifest.
type PackageGroup struct {
	Name     string   `yaml:"name"`
	Packages []string `yaml:"packages"`
}

// Manifest is the embedded apt package manifest.
type Manifest struct {
	Groups []PackageGroup `yaml:"groups"`
}

// LoadManifest parses the embedded package manifest.
func LoadManifest() (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(packageManifest, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse package manifest")
	}
	return &m, nil
}

// Packages flattens the manifest and appends extras, dropping duplicates
// while preserving order.
func (m *Manifest) Packages(extra []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(pkgs []string) {
		for _, p := range pkgs {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, g := range m.Groups {
		add(g.Packages)
	}
	add(extra)
	return out
}
