package auth

import (
	"strings"
	"sync"
	"testing"

	"majorexplorer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	other, err := hasher.Hash("SomethingElse9")
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check(password, other))
	assert.False(t, hasher.Check("", hash))

	// malformed hashes never match and never panic
	for _, malformed := range []string{"", "invalid_hash", "$2a$10$short", strings.Repeat("x", 60)} {
		assert.False(t, hasher.Check(password, malformed), "hash %q", malformed)
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_UsesConfigCost(t *testing.T) {
	cfg := config.Default()
	cfg.Auth.BcryptCost = 5

	hash, err := NewBcryptHasher(cfg).Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestNewBcryptHasherWithCost_Clamps(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasherWithCost(1).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasherWithCost(99).(*bcryptHasher).cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_ConcurrentUse(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			password := strings.Repeat("p", i+1)
			hash, err := hasher.Hash(password)
			assert.NoError(t, err)
			assert.True(t, hasher.Check(password, hash))
		}()
	}
	wg.Wait()
}
