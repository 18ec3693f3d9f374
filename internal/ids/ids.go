// Package ids generates and checks the opaque identifiers used for
// transactions, audit entries, sessions and requests.
package ids

import (
	"github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string. Ordering by id therefore follows
// creation order, which keeps ties in date-sorted listings stable.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to a random v4 id if the v7 generator fails
		return uuid.New().String()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Normalize returns the canonical lowercase form of s, or an error if s is
// not a UUID.
func Normalize(s string) (string, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
