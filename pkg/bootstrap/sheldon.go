package bootstrap

import (
	"context"

	"github.com/shellkit/shellkit/pkg/logging"
)

// SheldonStep installs the sheldon plugin manager via Homebrew.
type SheldonStep struct {
	runner CommandRunner
}

// NewSheldonStep creates the plugin manager install step.
func NewSheldonStep(runner CommandRunner) *SheldonStep {
	return &SheldonStep{runner: runner}
}

func (s *SheldonStep) Name() string { return "sheldon" }

func (s *SheldonStep) Desc() string { return "install the sheldon plugin manager" }

func (s *SheldonStep) Check(ctx context.Context) (bool, error) {
	_, err := s.runner.LookPath("sheldon")
	return err == nil, nil
}

func (s *SheldonStep) Run(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.sheldon")
	logger.Info().Msg("installing sheldon via brew")
	return s.runner.Run(ctx, "brew", "install", "sheldon")
}

// SheldonLockStep resolves and installs the configured plugins. It runs
// after linking so sheldon sees the managed plugins.toml.
type SheldonLockStep struct {
	runner CommandRunner
}

// NewSheldonLockStep creates the post-link plugin lock step.
func NewSheldonLockStep(runner CommandRunner) *SheldonLockStep {
	return &SheldonLockStep{runner: runner}
}

func (s *SheldonLockStep) Name() string { return "sheldon-lock" }

func (s *SheldonLockStep) Desc() string { return "lock and install shell plugins" }

// Check always reports unsatisfied: sheldon lock is itself idempotent
// and must re-run whenever the plugin config changed.
func (s *SheldonLockStep) Check(ctx context.Context) (bool, error) {
	return false, nil
}

func (s *SheldonLockStep) Run(ctx context.Context) error {
	return s.runner.Run(ctx, "sheldon", "lock")
}
