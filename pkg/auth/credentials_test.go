package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		hash, err := HashPassword("correct horse battery", bcrypt.MinCost)
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		ok, err := VerifyPassword("correct horse battery", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("distinct salt per call", func(t *testing.T) {
		t.Parallel()

		first, err := HashPassword("same-password", bcrypt.MinCost)
		require.NoError(t, err)
		second, err := HashPassword("same-password", bcrypt.MinCost)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		t.Parallel()

		_, err := HashPassword("", bcrypt.MinCost)
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})

	t.Run("oversized password rejected", func(t *testing.T) {
		t.Parallel()

		_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("zero cost uses default", func(t *testing.T) {
		t.Parallel()

		hash, err := HashPassword("some-password", 0)
		require.NoError(t, err)

		cost, err := bcrypt.Cost(hash)
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	t.Run("mismatch is not an error", func(t *testing.T) {
		t.Parallel()

		hash, err := HashPassword("right-password", bcrypt.MinCost)
		require.NoError(t, err)

		ok, err := VerifyPassword("wrong-password", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt hash signals stored data damage", func(t *testing.T) {
		t.Parallel()

		ok, err := VerifyPassword("anything", []byte("not-a-bcrypt-hash"))
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrCorruptCredential)
	})

	t.Run("empty hash is corrupt", func(t *testing.T) {
		t.Parallel()

		ok, err := VerifyPassword("anything", nil)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrCorruptCredential)
	})
}
