package bootstrap

import (
	"context"
	"path/filepath"

	"github.com/shellkit/shellkit/pkg/logging"
	"github.com/shellkit/shellkit/pkg/types"
)

const fzfRepoURL = "https://github.com/junegunn/fzf.git"

// FzfStep installs fzf by cloning its repository and running its own
// install script. The script is told not to touch rc files since the
// managed zshrc already wires fzf in.
type FzfStep struct {
	runner CommandRunner
	fs     types.FS
	home   string
}

// NewFzfStep creates the fuzzy-finder install step.
func NewFzfStep(runner CommandRunner, fs types.FS, home string) *FzfStep {
	return &FzfStep{runner: runner, fs: fs, home: home}
}

func (s *FzfStep) Name() string { return "fzf" }

func (s *FzfStep) Desc() string { return "install the fzf fuzzy finder" }

func (s *FzfStep) dir() string {
	return filepath.Join(s.home, ".fzf")
}

func (s *FzfStep) Check(ctx context.Context) (bool, error) {
	_, err := s.fs.Stat(s.dir())
	return err == nil, nil
}

func (s *FzfStep) Run(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.fzf")
	logger.Info().Str("dir", s.dir()).Msg("installing fzf")

	if err := s.runner.Run(ctx, "git", "clone", "--depth", "1", fzfRepoURL, s.dir()); err != nil {
		return err
	}
	installScript := filepath.Join(s.dir(), "install")
	return s.runner.Run(ctx, installScript, "--key-bindings", "--completion", "--no-update-rc")
}
