// Package testutil provides isolated test environments for shellkit.
//
// Every environment lives in a per-test temp directory with HOME,
// SHELLKIT_ROOT, and the XDG variables pointed inside it, so tests can
// exercise real symlink behavior without touching the user's files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"

	"github.com/shellkit/shellkit/pkg/filesystem"
	"github.com/shellkit/shellkit/pkg/paths"
	"github.com/shellkit/shellkit/pkg/types"
)

// Env is an isolated filesystem environment for one test.
type Env struct {
	Root string // managed repository root
	Home string // fake home directory
	FS   types.FS
	P    paths.Paths
}

// NewEnv creates an isolated environment under t.TempDir.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	tmp := t.TempDir()
	home := filepath.Join(tmp, "home")
	root := filepath.Join(tmp, "dotfiles")
	require.NoError(t, os.MkdirAll(home, 0755))
	require.NoError(t, os.MkdirAll(root, 0755))

	t.Setenv("HOME", home)
	t.Setenv("SHELLKIT_ROOT", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	// adrg/xdg caches its values at init time; pick up the overrides.
	xdg.Reload()

	p, err := paths.New("")
	require.NoError(t, err)

	return &Env{
		Root: root,
		Home: home,
		FS:   filesystem.NewOS(),
		P:    p,
	}
}

// WriteFile creates a file with parent directories.
func (e *Env) WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// Spec builds a LinkSpec with source under the repo root and target
// under the fake home.
func (e *Env) Spec(name, sourceRel, targetRel string) types.LinkSpec {
	return types.LinkSpec{
		Name:   name,
		Source: filepath.Join(e.Root, sourceRel),
		Target: filepath.Join(e.Home, targetRel),
	}
}

// RequireSymlinkTo asserts that path is a symlink resolving to dest.
func RequireSymlinkTo(t *testing.T, path, dest string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected symlink at %s", path)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s is not a symlink", path)
	actual, err := os.Readlink(path)
	require.NoError(t, err)
	require.Equal(t, dest, actual)
}

// RequireRegularFile asserts that path is a regular file with content.
func RequireRegularFile(t *testing.T, path, content string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected file at %s", path)
	require.True(t, info.Mode().IsRegular(), "%s is not a regular file", path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}

// RequireAbsent asserts that nothing exists at path.
func RequireAbsent(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "expected %s to be absent", path)
}
