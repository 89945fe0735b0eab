package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_Verify_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.True(t, hasher.Verify("correct horse battery staple", hashed))
	assert.False(t, hasher.Verify("wrong password", hashed))
}

func TestHash_OutputIsNotPlaintext(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hashed)
	assert.False(t, strings.Contains(hashed, "secret123"))
}

func TestHash_SaltedOutputDiffers(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same input")
	require.NoError(t, err)
	second, err := hasher.Hash("same input")
	require.NoError(t, err)

	// fresh salt per call
	assert.NotEqual(t, first, second)

	assert.True(t, hasher.Verify("same input", first))
	assert.True(t, hasher.Verify("same input", second))
}

func TestVerify_CrossHashFails(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hashOfOther, err := hasher.Hash("p2")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("p1", hashOfOther))
}

func TestVerify_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(0)

	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
}

func TestNewPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(1000).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
