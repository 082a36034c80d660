package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_CopiesKey(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	session := NewSession(1, "alice", key)

	// The caller is expected to zero its own slice after handing it over.
	for i := range key {
		key[i] = 0
	}

	assert.Equal(t, "0123456789abcdef0123456789abcdef", string(session.Key()))
	assert.True(t, session.Active())
}

func TestSession_CloseWipesKey(t *testing.T) {
	session := NewSession(1, "alice", []byte("0123456789abcdef0123456789abcdef"))
	held := session.Key()

	session.Close()

	assert.False(t, session.Active())
	assert.Nil(t, session.Key())
	// Even a reference captured before Close sees only zeroes.
	assert.Equal(t, make([]byte, len(held)), held)
}

func TestSession_EmptyKeyIsNotActive(t *testing.T) {
	session := NewSession(1, "alice", nil)
	require.False(t, session.Active())
}
