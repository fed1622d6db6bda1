package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHashedPassword(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := HashedPassword{Salt: []byte{0xde, 0xad}, Hash: []byte{0xbe, 0xef}}
		assert.Equal(t, "dead:beef", original.String())

		parsed, err := ParseHashedPassword(original.String())
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"no separator", "not-a-valid-hash"},
		{"missing salt", ":beef"},
		{"missing hash", "dead:"},
		{"extra segment", "dead:beef:cafe"},
		{"salt not hex", "zz:beef"},
		{"hash not hex", "dead:zz"},
		{"odd length hex", "dea:beef"},
		{"phc string", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHashedPassword(tt.content)
			assert.ErrorIs(t, err, ErrInvalidHashFormat)
		})
	}
}

func TestIsPHCHash(t *testing.T) {
	assert.True(t, IsPHCHash("$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"))
	assert.False(t, IsPHCHash("dead:beef"))
	assert.False(t, IsPHCHash(""))
}

func TestParseHashAlgorithm(t *testing.T) {
	alg, err := ParseHashAlgorithm("pbkdf2")
	require.NoError(t, err)
	assert.Equal(t, PBKDF2, alg)

	alg, err = ParseHashAlgorithm("argon2id")
	require.NoError(t, err)
	assert.Equal(t, Argon2id, alg)

	_, err = ParseHashAlgorithm("bcrypt")
	assert.ErrorIs(t, err, ErrUnsupportedHashAlgorithm)
}
