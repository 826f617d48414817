package lib

import (
	"testing"
	"time"

	"afpromotion_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func testClaims() *structs.AuthClaims {
	now := time.Now()
	return &structs.AuthClaims{
		Sub:   uuid.New(),
		Email: "jordan@example.com",
		Role:  "CUSTOMER",
		Iat:   now,
		Exp:   now.Add(15 * time.Minute),
		Jti:   uuid.New(),
	}
}

func TestSignAndParseToken(t *testing.T) {
	claims := testClaims()

	tokenStr, err := SignClaims(claims, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	parsed, err := ParseToken(tokenStr, testSecret)
	require.NoError(t, err)

	assert.Equal(t, claims.Sub, parsed.Sub)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
	assert.Equal(t, claims.Jti, parsed.Jti)
	assert.Equal(t, claims.Iat.Unix(), parsed.Iat.Unix())
	assert.Equal(t, claims.Exp.Unix(), parsed.Exp.Unix())
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenStr, err := SignClaims(testClaims(), testSecret)
	require.NoError(t, err)

	parsed, err := ParseToken(tokenStr, "some-other-secret")
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseTokenExpired(t *testing.T) {
	claims := testClaims()
	claims.Iat = time.Now().Add(-2 * time.Hour)
	claims.Exp = time.Now().Add(-1 * time.Hour)

	tokenStr, err := SignClaims(claims, testSecret)
	require.NoError(t, err)

	parsed, err := ParseToken(tokenStr, testSecret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseTokenGarbage(t *testing.T) {
	parsed, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestGenerateInvoiceId(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := GenerateInvoiceId()
		require.NoError(t, err)
		assert.Len(t, id, len("INV-")+8)
		assert.True(t, len(id) > 4 && id[:4] == "INV-")
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1)
}
