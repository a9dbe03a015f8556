package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cipher performs one-way password hashing with a fixed bcrypt cost. The
// cost comes from configuration and stays constant for the process lifetime.
type Cipher struct {
	cost int
}

// NewCipher creates a cipher with the given bcrypt cost factor.
func NewCipher(cost int) *Cipher {
	return &Cipher{cost: cost}
}

// Hash returns the salted bcrypt hash of plaintext.
func (c *Cipher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether plaintext matches hash. A mismatch is a false
// result, not an error; only a malformed hash fails.
func (c *Cipher) Compare(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("compare password: %w", err)
}
