package services

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor for password digests.
const bcryptCost = 10

// HashPassword returns a salted bcrypt digest of the plaintext. Each
// call salts independently, so equal inputs produce distinct digests.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the plaintext hashes to the stored
// digest. A mismatch returns false, never an error.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
