package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/shellkit/shellkit/pkg/logging"
)

// AptStep installs the package manifest via apt-get. It requires
// elevated privileges and is the one step that does.
type AptStep struct {
	runner   CommandRunner
	packages []string
}

// NewAptStep creates the apt step for the given package list.
func NewAptStep(runner CommandRunner, packages []string) *AptStep {
	return &AptStep{runner: runner, packages: packages}
}

func (s *AptStep) Name() string { return "apt" }

func (s *AptStep) Desc() string {
	return fmt.Sprintf("install %d apt packages", len(s.packages))
}

// Check reports satisfied when every package is already installed.
func (s *AptStep) Check(ctx context.Context) (bool, error) {
	if len(s.packages) == 0 {
		return true, nil
	}
	for _, pkg := range s.packages {
		out, err := s.runner.Output(ctx, "dpkg-query", "-W", "-f=${Status}", pkg)
		if err != nil || !strings.Contains(out, "install ok installed") {
			return false, nil
		}
	}
	return true, nil
}

func (s *AptStep) Run(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.apt")
	logger.Info().Strs("packages", s.packages).Msg("installing apt packages")

	if err := s.runner.Run(ctx, "sudo", "apt-get", "update"); err != nil {
		return err
	}
	args := append([]string{"apt-get", "install", "-y"}, s.packages...)
	return s.runner.Run(ctx, "sudo", args...)
}
