package passwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	h, err := NewBcryptHasher(0)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost())
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost - 1)
	assert.Error(t, err)

	_, err = NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestHash_NotPlaintext(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash("Ramesh@001")

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Ramesh@001", hash)
	assert.NotContains(t, hash, "Ramesh@001")
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "hash must carry the algorithm tag: %s", hash)
}

func TestHash_UsesConfiguredCost(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash("Suresh@002")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHash_SaltedTwice(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("Mahesh@003")
	require.NoError(t, err)
	second, err := h.Hash("Mahesh@003")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("Mahesh@003", first))
	assert.True(t, h.Verify("Mahesh@003", second))
}

func TestVerify(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Hash("Ramesh@001")

	assert.True(t, h.Verify("Ramesh@001", hash))
	assert.False(t, h.Verify("wrongpass", hash))
}

func TestVerify_InvalidHash(t *testing.T) {
	h := newTestHasher(t)
	assert.False(t, h.Verify("Ramesh@001", "invalidhash"))
}

func TestHash_TooLong(t *testing.T) {
	h := newTestHasher(t)

	_, err := h.Hash(strings.Repeat("x", 73))

	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
