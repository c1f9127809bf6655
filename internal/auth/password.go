// Package auth provides password hashing and the session store.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost keeps hashing deliberately expensive to resist offline brute
// force. 10 rounds matches the stored hashes.
const bcryptCost = 10

// ErrMalformedHash indicates the stored hash is not a valid bcrypt hash.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword returns the salted one-way hash of a plaintext password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored hash. A mismatch
// is a false return, not an error; an error is only returned when the hash
// itself is not valid bcrypt output.
func VerifyPassword(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
}
