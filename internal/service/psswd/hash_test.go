package psswd

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := Hasher{Cost: bcrypt.MinCost}
	password := gofakeit.Password(true, true, true, true, false, 16)

	hash, err := h.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)
	assert.True(t, h.ComparePassword(password, hash))
	assert.False(t, h.ComparePassword(password+"x", hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHasherRejectsLongPassword(t *testing.T) {
	_, err := Hasher{}.HashPassword(strings.Repeat("a", maxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
