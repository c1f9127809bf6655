package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "segredo123", hash)

	// A second hash of the same password must differ (fresh salt).
	again, err := HashPassword("segredo123")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		plain    string
		hash     string
		expected bool
		wantErr  bool
	}{
		{name: "correct password", plain: "segredo123", hash: hash, expected: true},
		{name: "wrong password", plain: "errado", hash: hash, expected: false},
		{name: "empty password", plain: "", hash: hash, expected: false},
		{name: "malformed hash", plain: "segredo123", hash: "not-a-bcrypt-hash", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword(tt.plain, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedHash)
				assert.False(t, ok)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
		})
	}
}
