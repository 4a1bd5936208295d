package bootstrap

import (
	"context"

	"github.com/shellkit/shellkit/pkg/logging"
)

const brewInstallURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

// BrewStep bootstraps Homebrew on Linux when the brew binary is absent.
type BrewStep struct {
	runner CommandRunner
}

// NewBrewStep creates the Homebrew bootstrap step.
func NewBrewStep(runner CommandRunner) *BrewStep {
	return &BrewStep{runner: runner}
}

func (s *BrewStep) Name() string { return "brew" }

func (s *BrewStep) Desc() string { return "bootstrap Homebrew" }

func (s *BrewStep) Check(ctx context.Context) (bool, error) {
	_, err := s.runner.LookPath("brew")
	return err == nil, nil
}

func (s *BrewStep) Run(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.brew")
	logger.Info().Str("url", brewInstallURL).Msg("running Homebrew installer")

	// NONINTERACTIVE suppresses the installer's confirmation prompt.
	script := `NONINTERACTIVE=1 bash -c "$(curl -fsSL ` + brewInstallURL + `)"`
	return s.runner.Run(ctx, "bash", "-c", script)
}
