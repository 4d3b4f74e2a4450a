package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(ErrNotFound, "story not found")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsForbidden(err))
	assert.Equal(t, "story not found", GetMessage(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Internal(nil, "ignored"))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := Internal(cause, "failed to download photo")

	assert.True(t, Is(err, ErrInternalServer))
	assert.True(t, Is(err, cause))
	assert.Equal(t, "failed to download photo", GetMessage(err))
}

func TestGetMessageOutermostWins(t *testing.T) {
	err := Wrap(Wrap(ErrInvalidInput, "inner"), "outer")

	assert.Equal(t, "outer", GetMessage(err))
	assert.True(t, IsInvalidInput(err))
}

func TestGetMessagePlainError(t *testing.T) {
	assert.Equal(t, "plain", GetMessage(stderrors.New("plain")))
	assert.Equal(t, "", GetMessage(nil))
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Wrap(ErrForbidden, "access denied")

	assert.Equal(t, fmt.Sprintf("access denied: %v", ErrForbidden), err.Error())
}
