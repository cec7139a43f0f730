package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash using the given cost. The salt
// is generated per call and embedded in the output, so hashing the
// same password twice yields different strings.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash against a plain password.
// The comparison inside bcrypt is constant-time. A malformed hash
// simply returns false, so a corrupted stored record degrades to a
// rejected login rather than an error path.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
