package bootstrap

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/shellkit/shellkit/pkg/errors"
	"github.com/shellkit/shellkit/pkg/logging"
)

// CommandRunner abstracts external tool invocation. The production
// implementation shells out; tests substitute a fake.
type CommandRunner interface {
	// LookPath reports the absolute path of an executable, or an error
	// when it is not installed.
	LookPath(name string) (string, error)

	// Run executes a command with stdout/stderr inherited from the
	// process, for interactive installer scripts.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its combined output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct{}

// NewRunner creates the os/exec-backed CommandRunner.
func NewRunner() CommandRunner {
	return &execRunner{}
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	logger := logging.GetLogger("bootstrap.exec")
	logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool,
			"%s %s failed", name, strings.Join(args, " "))
	}
	return nil
}

func (r *execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	logger := logging.GetLogger("bootstrap.exec")
	logger.Debug().Str("command", name).Strs("args", args).Msg("running command for output")

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), errors.Wrapf(err, errors.ErrExternalTool,
			"%s %s failed", name, strings.Join(args, " "))
	}
	return string(out), nil
}
