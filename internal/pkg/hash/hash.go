// Package hash wraps bcrypt for password storage. The salt is embedded in
// the self-describing hash string, so hashes remain comparable across cost
// or salt changes.
package hash

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

const cost = 10

// maxPasswordBytes is bcrypt's input limit; longer inputs are rejected
// deterministically instead of being silently truncated.
const maxPasswordBytes = 72

// Password hashes a plaintext password.
func Password(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", domain.BadRequest("password", "password must be at most 72 bytes")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
