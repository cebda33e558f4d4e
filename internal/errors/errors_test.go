package errors_test

import (
	"fmt"
	"testing"

	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCodeAndMeta(t *testing.T) {
	base := rpgerr.NotFound("session not found").WithMeta("session_id", "ABCD1234")

	wrapped := rpgerr.Wrapf(base, "failed to join session '%s'", "ABCD1234")

	assert.True(t, rpgerr.IsNotFound(wrapped))
	assert.Equal(t, "ABCD1234", rpgerr.GetMeta(wrapped)["session_id"])
	assert.Equal(t, "failed to join session 'ABCD1234': session not found", wrapped.Error())

	// metadata on the wrapper must not leak back into the cause
	wrapped.WithMeta("player", "Rin")
	assert.NotContains(t, base.Meta, "player")
}

func TestWrapForeignError(t *testing.T) {
	wrapped := rpgerr.Wrap(fmt.Errorf("disk full"), "failed to save")

	assert.Equal(t, rpgerr.CodeUnknown, rpgerr.GetCode(wrapped))
	assert.Nil(t, rpgerr.Wrap(nil, "nothing"))
	assert.Nil(t, rpgerr.WrapWithCode(nil, rpgerr.CodeInternal, "nothing"))
}

func TestCodeChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "invalid class", err: rpgerr.InvalidClassf("unknown class %q", "bard"), check: rpgerr.IsInvalidClass},
		{name: "full", err: rpgerr.ResourceExhausted("session is full"), check: rpgerr.IsResourceExhausted},
		{name: "started", err: rpgerr.FailedPrecondition("session already started"), check: rpgerr.IsFailedPrecondition},
		{name: "duplicate", err: rpgerr.AlreadyExistsf("player %s already in a session", "Rin"), check: rpgerr.IsAlreadyExists},
		{name: "with code", err: rpgerr.WrapWithCode(fmt.Errorf("boom"), rpgerr.CodeInternal, "save failed"), check: rpgerr.IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, rpgerr.IsNotFound(tt.err))
		})
	}
}
