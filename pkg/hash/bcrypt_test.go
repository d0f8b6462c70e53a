package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", digest)

	ok, err := h.Compare("correct horse", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare("battery staple", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompareMalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Compare("secret", "not-a-bcrypt-hash")

	assert.False(t, ok)
	assert.Error(t, err)
}

func TestCostFallback(t *testing.T) {
	assert.Equal(t, DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 10, NewBcryptHasher(10).cost)
}
