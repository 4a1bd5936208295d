package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrMissingSource, "source is gone")
	assert.Equal(t, "[MISSING_SOURCE] source is gone", err.Error())
	assert.Equal(t, ErrMissingSource, err.Code)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrPermission, "cannot write target")

	assert.Equal(t, "[PERMISSION] cannot write target: permission denied", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "ignored %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := Newf(ErrAmbiguousTarget, "target %s is occupied", "/home/u/.zshrc")
	assert.ErrorIs(t, err, New(ErrAmbiguousTarget, "other message"))
	assert.NotErrorIs(t, err, New(ErrMissingSource, "other code"))
}

func TestGetCode(t *testing.T) {
	err := New(ErrExternalTool, "apt failed")
	assert.Equal(t, ErrExternalTool, GetCode(err))
	assert.Equal(t, ErrExternalTool, GetCode(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, ErrUnknown, GetCode(fmt.Errorf("plain")))
	assert.True(t, IsCode(err, ErrExternalTool))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSymlinkCreate, "failed").WithDetail("target", "/home/u/.zshrc")
	require.NotNil(t, err.Details)
	assert.Equal(t, "/home/u/.zshrc", err.Details["target"])
}
