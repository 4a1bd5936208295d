package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shellkit/shellkit/pkg/errors"
	"github.com/shellkit/shellkit/pkg/logging"
)

// HugoStep installs one pinned hugo release. The installed version
// string is compared against the pinned version; only a mismatch (or a
// missing binary) triggers the download-and-dpkg install.
type HugoStep struct {
	runner      CommandRunner
	version     string
	urlTemplate string
}

// NewHugoStep creates the pinned-binary install step. urlTemplate must
// contain "{version}" placeholders.
func NewHugoStep(runner CommandRunner, version, urlTemplate string) *HugoStep {
	return &HugoStep{runner: runner, version: version, urlTemplate: urlTemplate}
}

func (s *HugoStep) Name() string { return "hugo" }

func (s *HugoStep) Desc() string {
	return fmt.Sprintf("install hugo %s", s.version)
}

// URL returns the release URL for the pinned version.
func (s *HugoStep) URL() string {
	return strings.ReplaceAll(s.urlTemplate, "{version}", s.version)
}

// Check compares `hugo version` output against the pinned version
// substring. A missing or failing binary counts as unsatisfied.
func (s *HugoStep) Check(ctx context.Context) (bool, error) {
	out, err := s.runner.Output(ctx, "hugo", "version")
	if err != nil {
		return false, nil
	}
	return strings.Contains(out, "v"+s.version), nil
}

func (s *HugoStep) Run(ctx context.Context) error {
	if s.version == "" {
		return errors.New(errors.ErrConfigValid, "hugo version is not pinned in configuration")
	}

	logger := logging.GetLogger("bootstrap.hugo")
	url := s.URL()
	logger.Info().Str("version", s.version).Str("url", url).Msg("downloading hugo release")

	tmpDir, err := os.MkdirTemp("", "shellkit-hugo-")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create download directory")
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	debPath := filepath.Join(tmpDir, "hugo.deb")
	if err := s.runner.Run(ctx, "curl", "-fsSL", "-o", debPath, url); err != nil {
		return errors.Wrapf(err, errors.ErrDownload, "failed to download hugo %s", s.version)
	}

	return s.runner.Run(ctx, "sudo", "dpkg", "-i", debPath)
}
