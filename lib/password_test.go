package lib

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArgon2Hash(t *testing.T) {
	salt := base64.RawStdEncoding.EncodeToString([]byte("somesaltsomesalt"))
	hash := base64.RawStdEncoding.EncodeToString(bytes.Repeat([]byte{0xab}, 32))
	encoded := "$argon2id$v=19$m=65536,t=1,p=4$" + salt + "$" + hash

	parts, err := DecodeArgon2Hash(encoded)
	require.NoError(t, err)

	assert.Equal(t, uint32(65536), parts.Memory)
	assert.Equal(t, uint32(1), parts.Time)
	assert.Equal(t, uint8(4), parts.Threads)
	assert.Equal(t, []byte("somesaltsomesalt"), parts.Salt)
	assert.Equal(t, bytes.Repeat([]byte{0xab}, 32), parts.Hash)
	assert.Equal(t, uint32(32), parts.KeyLen)
}

func TestDecodeArgon2HashRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"missing sections", "$argon2id$v=19$m=65536,t=1,p=4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeArgon2Hash(tt.encoded)
			assert.Error(t, err)
		})
	}
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare([]byte("abc"), []byte("abc")))
	assert.False(t, SecureCompare([]byte("abc"), []byte("abd")))
	assert.False(t, SecureCompare([]byte("abc"), []byte("abcd")))
	assert.True(t, SecureCompare([]byte{}, []byte{}))
}
