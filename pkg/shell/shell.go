// Package shell scaffolds the canonical configuration files a fresh
// shellkit repository starts from.
package shell

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/shellkit/shellkit/pkg/errors"
	"github.com/shellkit/shellkit/pkg/logging"
	"github.com/shellkit/shellkit/pkg/types"
)

//go:embed templates
var templates embed.FS

// templateFor maps a link spec name to its embedded template.
var templateFor = map[string]string{
	"zshrc":    "templates/zshrc",
	"sheldon":  "templates/plugins.toml",
	"starship": "templates/starship.toml",
}

// Scaffold writes the embedded template for every spec whose source
// file does not exist yet. Existing sources are never overwritten.
// It returns the paths it created.
func Scaffold(fs types.FS, specs []types.LinkSpec) ([]string, error) {
	logger := logging.GetLogger("shell")
	var created []string

	for _, spec := range specs {
		tmpl, ok := templateFor[spec.Name]
		if !ok {
			logger.Debug().Str("link", spec.Name).Msg("no template for link, skipping")
			continue
		}

		if _, err := fs.Stat(spec.Source); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return created, errors.Wrapf(err, errors.ErrFileAccess,
				"cannot stat source for %q", spec.Name)
		}

		content, err := templates.ReadFile(tmpl)
		if err != nil {
			return created, errors.Wrapf(err, errors.ErrInternal,
				"missing embedded template for %q", spec.Name)
		}

		if err := fs.MkdirAll(filepath.Dir(spec.Source), 0755); err != nil {
			return created, errors.Wrapf(err, errors.ErrDirCreate,
				"cannot create source directory for %q", spec.Name)
		}
		if err := fs.WriteFile(spec.Source, content, 0644); err != nil {
			return created, errors.Wrapf(err, errors.ErrFileWrite,
				"cannot write source for %q", spec.Name)
		}

		logger.Info().Str("link", spec.Name).Str("path", spec.Source).Msg("scaffolded source file")
		created = append(created, spec.Source)
	}

	return created, nil
}
