package shell_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellkit/shellkit/pkg/shell"
	"github.com/shellkit/shellkit/pkg/testutil"
	"github.com/shellkit/shellkit/pkg/types"
)

func TestScaffold_CreatesMissingSources(t *testing.T) {
	env := testutil.NewEnv(t)
	specs := []types.LinkSpec{
		env.Spec("zshrc", "zsh/zshrc", ".zshrc"),
		env.Spec("sheldon", "sheldon/plugins.toml", ".config/sheldon/plugins.toml"),
		env.Spec("starship", "starship/starship.toml", ".config/starship.toml"),
	}

	created, err := shell.Scaffold(env.FS, specs)
	require.NoError(t, err)
	assert.Len(t, created, 3)

	data, err := os.ReadFile(specs[0].Source)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sheldon source")
	assert.Contains(t, string(data), "starship init zsh")
}

func TestScaffold_NeverOverwrites(t *testing.T) {
	env := testutil.NewEnv(t)
	spec := env.Spec("zshrc", "zsh/zshrc", ".zshrc")
	env.WriteFile(t, spec.Source, "my customized zshrc")

	created, err := shell.Scaffold(env.FS, []types.LinkSpec{spec})
	require.NoError(t, err)
	assert.Empty(t, created)

	data, err := os.ReadFile(spec.Source)
	require.NoError(t, err)
	assert.Equal(t, "my customized zshrc", string(data))
}

func TestScaffold_UnknownSpecSkipped(t *testing.T) {
	env := testutil.NewEnv(t)
	spec := env.Spec("mystery", "mystery/file", ".mystery")

	created, err := shell.Scaffold(env.FS, []types.LinkSpec{spec})
	require.NoError(t, err)
	assert.Empty(t, created)
	testutil.RequireAbsent(t, spec.Source)
}
