package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/shellkit/shellkit/pkg/errors"
)

// Environment variable names
const (
	// EnvShellkitRoot is the primary environment variable for the managed
	// repository location
	EnvShellkitRoot = "SHELLKIT_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultRootDir is the default directory name for the managed repo
	DefaultRootDir = "dotfiles"

	// ShellkitDirName is the directory name for shellkit-specific files
	ShellkitDirName = "shellkit"

	// ConfigFileName is the name of the shellkit configuration file
	ConfigFileName = "shellkit.toml"

	// LogFileName is the name of the log file
	LogFileName = "shellkit.log"
)

// Paths provides centralized path management for shellkit
type Paths interface {
	// Root returns the managed repository root directory.
	Root() string

	// UsedFallback reports whether Root came from the built-in default
	// rather than the environment or an explicit argument.
	UsedFallback() bool

	// HomeDir returns the invoking user's home directory.
	HomeDir() string

	// ConfigDir returns the shellkit XDG config directory.
	ConfigDir() string

	// ConfigFilePath returns the user-level config file path.
	ConfigFilePath() string

	// StateDir returns the shellkit XDG state directory.
	StateDir() string

	// LogFilePath returns the log file path under the state directory.
	LogFilePath() string

	// SourcePath resolves a path relative to Root into an absolute path.
	SourcePath(rel string) string

	// ExpandHome expands a leading "~/" against the user's home directory.
	ExpandHome(path string) (string, error)
}

type paths struct {
	root         string
	home         string
	usedFallback bool
}

// New creates a Paths instance. If root is empty, SHELLKIT_ROOT is
// consulted, falling back to ~/dotfiles.
func New(root string) (Paths, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
		}
	}

	usedFallback := false
	if root == "" {
		root = os.Getenv(EnvShellkitRoot)
	}
	if root == "" {
		root = filepath.Join(home, DefaultRootDir)
		usedFallback = true
	}

	root, err := normalize(root, home)
	if err != nil {
		return nil, err
	}

	return &paths{
		root:         root,
		home:         home,
		usedFallback: usedFallback,
	}, nil
}

func (p *paths) Root() string { return p.root }

func (p *paths) UsedFallback() bool { return p.usedFallback }

func (p *paths) HomeDir() string { return p.home }

func (p *paths) ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, ShellkitDirName)
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.ConfigDir(), ConfigFileName)
}

func (p *paths) StateDir() string {
	return filepath.Join(xdg.StateHome, ShellkitDirName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.StateDir(), LogFileName)
}

func (p *paths) SourcePath(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(p.root, rel)
}

func (p *paths) ExpandHome(path string) (string, error) {
	return expandHome(path, p.home)
}

// normalize expands "~/" and makes the path absolute.
func normalize(path, home string) (string, error) {
	expanded, err := expandHome(path, home)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %q", path)
	}
	return abs, nil
}

func expandHome(path, home string) (string, error) {
	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:]), nil
	}
	if strings.HasPrefix(path, "~") {
		// ~user expansion is not supported
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported home reference in %q", path)
	}
	return path, nil
}
