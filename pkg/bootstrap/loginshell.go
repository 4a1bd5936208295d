package bootstrap

import (
	"context"
	"os"
	"strings"

	"github.com/shellkit/shellkit/pkg/errors"
	"github.com/shellkit/shellkit/pkg/logging"
)

// LoginShellStep changes the invoking user's login shell to zsh.
type LoginShellStep struct {
	runner CommandRunner
}

// NewLoginShellStep creates the chsh step.
func NewLoginShellStep(runner CommandRunner) *LoginShellStep {
	return &LoginShellStep{runner: runner}
}

func (s *LoginShellStep) Name() string { return "shell" }

func (s *LoginShellStep) Desc() string { return "set zsh as the login shell" }

func (s *LoginShellStep) Check(ctx context.Context) (bool, error) {
	return strings.HasSuffix(os.Getenv("SHELL"), "/zsh"), nil
}

func (s *LoginShellStep) Run(ctx context.Context) error {
	zshPath, err := s.runner.LookPath("zsh")
	if err != nil {
		return errors.Wrap(err, errors.ErrToolNotFound,
			"zsh is not installed; the apt step must run first")
	}

	logger := logging.GetLogger("bootstrap.shell")
	logger.Info().Str("shell", zshPath).Msg("changing login shell")

	return s.runner.Run(ctx, "chsh", "-s", zshPath)
}
