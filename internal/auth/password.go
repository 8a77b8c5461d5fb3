package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Stored passwords are "salt$hash": a random hex salt and the hex SHA-256
// digest of salt+password. The format is fixed by existing user documents.

func HashPassword(plain string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(buf)
	sum := sha256.Sum256([]byte(salt + plain))
	return salt + "$" + hex.EncodeToString(sum[:]), nil
}

// VerifyPassword fails closed: any malformed stored value verifies false.
func VerifyPassword(plain, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	sum := sha256.Sum256([]byte(parts[0] + plain))
	want := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(want), []byte(parts[1])) == 1
}
