package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor. 12 keeps one hash well under a
// second on current hardware while staying expensive for offline
// guessing.
const bcryptCost = 12

// HashPassword hashes the plain text password with bcrypt. Every call
// draws a fresh salt, so the same plaintext never hashes to the same
// stored value.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// Malformed hashes report false rather than an error.
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
