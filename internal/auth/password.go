package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest suitable for storage.
// Plaintext passwords never cross the persistence boundary.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored digest. The
// comparison is constant-time.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
