package linker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellkit/shellkit/pkg/testutil"
	"github.com/shellkit/shellkit/pkg/types"
)

func TestStatus(t *testing.T) {
	env := testutil.NewEnv(t)
	l := newLinker(env)

	t.Run("absent", func(t *testing.T) {
		spec := env.Spec("zshrc", "zsh/zshrc", ".zshrc-absent")
		st, err := l.Status(spec)
		require.NoError(t, err)
		assert.Equal(t, types.StateAbsent, st.State)
		assert.False(t, st.HasBackup)
	})

	t.Run("regular file", func(t *testing.T) {
		spec := env.Spec("zshrc", "zsh/zshrc", ".zshrc-file")
		env.WriteFile(t, spec.Target, "hello")
		st, err := l.Status(spec)
		require.NoError(t, err)
		assert.Equal(t, types.StateFile, st.State)
	})

	t.Run("linked", func(t *testing.T) {
		spec := env.Spec("zshrc", "zsh/zshrc", ".zshrc-linked")
		env.WriteFile(t, spec.Source, "managed")
		require.NoError(t, os.Symlink(spec.Source, spec.Target))
		st, err := l.Status(spec)
		require.NoError(t, err)
		assert.Equal(t, types.StateLinked, st.State)
		assert.Equal(t, spec.Source, st.LinkDest)
	})

	t.Run("foreign link", func(t *testing.T) {
		spec := env.Spec("zshrc", "zsh/zshrc", ".zshrc-foreign")
		other := filepath.Join(env.Home, "elsewhere")
		env.WriteFile(t, other, "other")
		require.NoError(t, os.Symlink(other, spec.Target))
		st, err := l.Status(spec)
		require.NoError(t, err)
		assert.Equal(t, types.StateForeignLink, st.State)
		assert.Equal(t, other, st.LinkDest)
	})

	t.Run("backup detected", func(t *testing.T) {
		spec := env.Spec("zshrc", "zsh/zshrc", ".zshrc-backed")
		env.WriteFile(t, spec.BackupPath(), "old")
		st, err := l.Status(spec)
		require.NoError(t, err)
		assert.Equal(t, types.StateAbsent, st.State)
		assert.True(t, st.HasBackup)
	})
}
