package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellkit/shellkit/pkg/paths"
)

func TestNew_ExplicitRootWins(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(paths.EnvShellkitRoot, "/env/root")

	p, err := paths.New("/explicit/root")
	require.NoError(t, err)
	assert.Equal(t, "/explicit/root", p.Root())
	assert.False(t, p.UsedFallback())
}

func TestNew_EnvRoot(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(paths.EnvShellkitRoot, "/env/root")

	p, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, "/env/root", p.Root())
	assert.False(t, p.UsedFallback())
}

func TestNew_FallbackRoot(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(paths.EnvShellkitRoot, "")

	p, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/dotfiles", p.Root())
	assert.True(t, p.UsedFallback())
}

func TestNew_TildeRoot(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	p, err := paths.New("~/stuff")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/stuff", p.Root())
}

func TestSourcePath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	p, err := paths.New("/repo")
	require.NoError(t, err)

	assert.Equal(t, "/repo/zsh/zshrc", p.SourcePath("zsh/zshrc"))
	assert.Equal(t, "/abs/file", p.SourcePath("/abs/file"))
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	p, err := paths.New("/repo")
	require.NoError(t, err)

	expanded, err := p.ExpandHome("~/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.zshrc", expanded)

	expanded, err = p.ExpandHome("/etc/zshrc")
	require.NoError(t, err)
	assert.Equal(t, "/etc/zshrc", expanded)

	_, err = p.ExpandHome("~other/file")
	assert.Error(t, err)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	p, err := paths.New("/repo")
	require.NoError(t, err)
	assert.Equal(t, paths.LogFileName, filepath.Base(p.LogFilePath()))
}
