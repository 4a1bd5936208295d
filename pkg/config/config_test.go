package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellkit/shellkit/pkg/config"
	"github.com/shellkit/shellkit/pkg/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	env := testutil.NewEnv(t)

	cfg, err := config.Load(env.P)
	require.NoError(t, err)

	require.Len(t, cfg.Links, 3)
	assert.Equal(t, "zshrc", cfg.Links[0].Name)
	assert.Equal(t, "sheldon", cfg.Links[1].Name)
	assert.Equal(t, "starship", cfg.Links[2].Name)

	assert.NotEmpty(t, cfg.Hugo.Version)
	assert.Contains(t, cfg.Hugo.URLTemplate, "{version}")
	assert.Empty(t, cfg.Packages)
	assert.Empty(t, cfg.Steps.Disabled)
}

func TestLoad_RepoOverride(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile(t, filepath.Join(env.Root, "shellkit.toml"), `
packages = ["jq"]

[hugo]
version = "0.200.0"

[steps]
disabled = ["hugo", "brew"]
`)

	cfg, err := config.Load(env.P)
	require.NoError(t, err)

	assert.Equal(t, "0.200.0", cfg.Hugo.Version)
	assert.Equal(t, []string{"jq"}, cfg.Packages)
	assert.True(t, cfg.StepDisabled("hugo"))
	assert.True(t, cfg.StepDisabled("brew"))
	assert.False(t, cfg.StepDisabled("apt"))

	// Keys the override does not mention keep their defaults.
	require.Len(t, cfg.Links, 3)
	assert.Contains(t, cfg.Hugo.URLTemplate, "gohugoio")
}

func TestLoad_UserConfigLayer(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile(t, env.P.ConfigFilePath(), `
[hugo]
version = "0.150.0"
`)
	// Repo config wins over user config.
	env.WriteFile(t, filepath.Join(env.Root, "shellkit.toml"), `
[hugo]
version = "0.160.0"
`)

	cfg, err := config.Load(env.P)
	require.NoError(t, err)
	assert.Equal(t, "0.160.0", cfg.Hugo.Version)
}

func TestLoad_InvalidLinkTable(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile(t, filepath.Join(env.Root, "shellkit.toml"), `
[[links]]
name = "broken"
source = "x"
`)

	_, err := config.Load(env.P)
	require.Error(t, err)
}

func TestLinkSpecs_Resolution(t *testing.T) {
	env := testutil.NewEnv(t)

	cfg, err := config.Load(env.P)
	require.NoError(t, err)

	specs, err := cfg.LinkSpecs(env.P)
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, filepath.Join(env.Root, "zsh/zshrc"), specs[0].Source)
	assert.Equal(t, filepath.Join(env.Home, ".zshrc"), specs[0].Target)
	assert.Equal(t, filepath.Join(env.Home, ".zshrc")+".bak", specs[0].BackupPath())
	assert.Equal(t, filepath.Join(env.Home, ".config/sheldon/plugins.toml"), specs[1].Target)
}

func TestDumpTOML_RoundTrips(t *testing.T) {
	env := testutil.NewEnv(t)

	cfg, err := config.Load(env.P)
	require.NoError(t, err)

	out, err := config.DumpTOML(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[[links]]")
	assert.Contains(t, out, "zshrc")
	assert.Contains(t, out, cfg.Hugo.Version)
}
