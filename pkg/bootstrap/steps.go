package bootstrap

import (
	"github.com/shellkit/shellkit/pkg/config"
	"github.com/shellkit/shellkit/pkg/paths"
	"github.com/shellkit/shellkit/pkg/types"
)

// DefaultSteps assembles the pre-link bootstrap sequence from the
// merged configuration. Order matters: apt installs zsh before the
// login shell change, and brew must exist before sheldon.
func DefaultSteps(cfg *config.Config, p paths.Paths, fs types.FS, runner CommandRunner) ([]Step, error) {
	manifest, err := LoadManifest()
	if err != nil {
		return nil, err
	}

	return []Step{
		NewAptStep(runner, manifest.Packages(cfg.Packages)),
		NewBrewStep(runner),
		NewLoginShellStep(runner),
		NewStarshipStep(runner),
		NewSheldonStep(runner),
		NewFzfStep(runner, fs, p.HomeDir()),
		NewHugoStep(runner, cfg.Hugo.Version, cfg.Hugo.URLTemplate),
	}, nil
}

// PostLinkSteps are run after the link table is installed, once the
// plugin manager can see its managed config.
func PostLinkSteps(runner CommandRunner) []Step {
	return []Step{NewSheldonLockStep(runner)}
}
