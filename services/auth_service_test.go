package services

import (
	"strings"
	"testing"

	"afpromotion_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Small parameters keep the tests fast; production hashing uses DefaultParams.
var testArgonParams = &structs.ArgonParams{
	Memory:  8 * 1024,
	Time:    1,
	Threads: 2,
	KeyLen:  32,
	SaltLen: 16,
}

func TestHashAndVerifyPassword(t *testing.T) {
	as := &AuthService{}

	hash, err := as.HashPassword("hunter2-but-longer", testArgonParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := as.VerifyPassword("hunter2-but-longer", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = as.VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	as := &AuthService{}

	first, err := as.HashPassword("same-password", testArgonParams)
	require.NoError(t, err)
	second, err := as.HashPassword("same-password", testArgonParams)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	as := &AuthService{}

	_, err := as.VerifyPassword("whatever", "not-an-argon2-hash")
	assert.Error(t, err)
}
