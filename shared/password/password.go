package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash hashes a plain text password with bcrypt.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify compares a plain text password against a bcrypt hash.
func Verify(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return fmt.Errorf("password mismatch: %w", err)
	}

	return nil
}
