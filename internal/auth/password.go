package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt hash of the plaintext. The output embeds the
// algorithm tag, cost and salt, so verification needs no other parameters.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IsLegacyPlaintext reports whether a stored credential predates hashing.
// Bcrypt hashes start with "$2a$", "$2b$" or "$2y$"; anything without that
// marker is treated as a plaintext password from before the migration.
func IsLegacyPlaintext(stored string) bool {
	if len(stored) < 4 || stored[0] != '$' || stored[1] != '2' || stored[3] != '$' {
		return true
	}
	switch stored[2] {
	case 'a', 'b', 'y':
		return false
	}
	return true
}

// VerifyPassword checks the plaintext against the stored credential, using
// exact equality for legacy plaintext values and bcrypt comparison otherwise.
func VerifyPassword(plain, stored string) bool {
	if IsLegacyPlaintext(stored) {
		return plain == stored
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
