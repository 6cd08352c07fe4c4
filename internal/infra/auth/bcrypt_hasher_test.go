package auth

import (
	"strings"
	"testing"

	"docs/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testCredential = "alice6384e2b2-184b-3bf5-8ecc-f10ca7a6563c"

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "pw123"
	hash, err := hasher.Hash(password, testCredential)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, testCredential, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "pw123"

	hash, err := hasher.Hash(password, testCredential)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, testCredential, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrongpw", testCredential, hash))

	// Test empty password
	assert.False(t, hasher.Check("", testCredential, hash))

	// Test same password with another user's credential
	assert.False(t, hasher.Check(password, "bob9f9d51bc-70ef-31ca-9c14-f307980a29d8", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, testCredential, "invalid_hash"))
}

func TestBcryptHasher_LongPasswordIsNotTruncated(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	base := strings.Repeat("a", 100)
	hash, err := hasher.Hash(base+"1", testCredential)
	require.NoError(t, err)

	assert.True(t, hasher.Check(base+"1", testCredential, hash))
	assert.False(t, hasher.Check(base+"2", testCredential, hash))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("pw123", testCredential)
	require.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected int
	}{
		{name: "nil config", cfg: nil, expected: bcrypt.DefaultCost},
		{name: "no auth section", cfg: &config.Config{}, expected: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, expected: 5},
		{name: "out of range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, expected: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.expected, hasher.cost)
		})
	}
}
