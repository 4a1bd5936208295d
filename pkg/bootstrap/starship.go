package bootstrap

import (
	"context"

	"github.com/shellkit/shellkit/pkg/logging"
)

const starshipInstallURL = "https://starship.rs/install.sh"

// StarshipStep installs the starship prompt binary via its installer.
type StarshipStep struct {
	runner CommandRunner
}

// NewStarshipStep creates the prompt install step.
func NewStarshipStep(runner CommandRunner) *StarshipStep {
	return &StarshipStep{runner: runner}
}

func (s *StarshipStep) Name() string { return "starship" }

func (s *StarshipStep) Desc() string { return "install the starship prompt" }

func (s *StarshipStep) Check(ctx context.Context) (bool, error) {
	_, err := s.runner.LookPath("starship")
	return err == nil, nil
}

func (s *StarshipStep) Run(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.starship")
	logger.Info().Str("url", starshipInstallURL).Msg("running starship installer")

	script := `curl -sS ` + starshipInstallURL + ` | sh -s -- --yes`
	return s.runner.Run(ctx, "sh", "-c", script)
}
