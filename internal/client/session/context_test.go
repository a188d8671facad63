package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	sess, err := New(NewMemoryStore())
	require.NoError(t, err)

	ctx := NewContext(context.Background(), sess)
	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestFromContextMissing(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMustFromContextPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustFromContext(context.Background())
	})
}
