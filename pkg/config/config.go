package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shellkit/shellkit/pkg/errors"
	"github.com/shellkit/shellkit/pkg/logging"
	"github.com/shellkit/shellkit/pkg/paths"
	"github.com/shellkit/shellkit/pkg/types"
)

// LinkEntry is one row of the link table as written in configuration.
// Source is relative to the repo root; Target may use "~/".
type LinkEntry struct {
	Name   string `koanf:"name" toml:"name"`
	Source string `koanf:"source" toml:"source"`
	Target string `koanf:"target" toml:"target"`
}

// HugoConfig pins the static-site generator release.
type HugoConfig struct {
	Version     string `koanf:"version" toml:"version"`
	URLTemplate string `koanf:"url_template" toml:"url_template"`
}

// StepsConfig controls which bootstrap steps run.
type StepsConfig struct {
	Disabled []string `koanf:"disabled" toml:"disabled"`
}

// Config is the merged shellkit configuration.
type Config struct {
	Root     string      `koanf:"root" toml:"root"`
	Packages []string    `koanf:"packages" toml:"packages"`
	Hugo     HugoConfig  `koanf:"hugo" toml:"hugo"`
	Steps    StepsConfig `koanf:"steps" toml:"steps"`
	Links    []LinkEntry `koanf:"links" toml:"links"`
}

// Load merges the embedded defaults with the user and repo config files.
func Load(p paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User config
	userConfig := p.ConfigFilePath()
	if _, err := os.Stat(userConfig); err == nil {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", userConfig)
		}
		logger.Debug().Str("path", userConfig).Msg("loaded user config")
	}

	// 3. Repo config
	rootConfig := filepath.Join(p.Root(), paths.ConfigFileName)
	if _, err := os.Stat(rootConfig); err == nil {
		if err := k.Load(file.Provider(rootConfig), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", rootConfig)
		}
		logger.Debug().Str("path", rootConfig).Msg("loaded repo config")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Links))
	for _, l := range c.Links {
		if l.Name == "" || l.Source == "" || l.Target == "" {
			return errors.Newf(errors.ErrConfigValid,
				"link entry %+v must set name, source, and target", l)
		}
		if seen[l.Name] {
			return errors.Newf(errors.ErrConfigValid, "duplicate link entry %q", l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}

// LinkSpecs resolves the configured link table into absolute LinkSpecs.
func (c *Config) LinkSpecs(p paths.Paths) ([]types.LinkSpec, error) {
	specs := make([]types.LinkSpec, 0, len(c.Links))
	for _, entry := range c.Links {
		target, err := p.ExpandHome(entry.Target)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid,
				"invalid target for link %q", entry.Name)
		}
		specs = append(specs, types.LinkSpec{
			Name:   entry.Name,
			Source: p.SourcePath(entry.Source),
			Target: target,
		})
	}
	return specs, nil
}

// StepDisabled reports whether a bootstrap step was disabled in config.
func (c *Config) StepDisabled(name string) bool {
	for _, d := range c.Steps.Disabled {
		if d == name {
			return true
		}
	}
	return false
}
