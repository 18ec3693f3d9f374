// Package password hashes and verifies user passwords.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"expensetracker/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into a stored hash and checks it later.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// NewHasher returns the hasher for a configured scheme.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case config.SchemeSHA256, "":
		return SHA256{}, nil
	case config.SchemeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// SHA256 stores the hex digest of the password with no salt, so equal
// passwords produce equal hashes. It exists to read databases created by
// earlier versions; prefer Bcrypt for new deployments.
type SHA256 struct{}

// Hash returns the lowercase hex SHA-256 digest.
func (SHA256) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify compares in constant time.
func (s SHA256) Verify(hash, password string) bool {
	want, _ := s.Hash(password)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(want)) == 1
}

// Bcrypt stores salted bcrypt hashes.
type Bcrypt struct {
	Cost int
}

// Hash returns a bcrypt hash at the configured cost.
func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify checks password against a bcrypt hash.
func (Bcrypt) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
