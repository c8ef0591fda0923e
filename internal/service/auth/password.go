package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts the one-way password digest primitive
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

// BcryptHasher hashes passwords with bcrypt at a configurable cost
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher. Costs outside bcrypt's supported
// range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a password digest
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Compare reports whether the cleartext password matches the stored digest
func (h *BcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
