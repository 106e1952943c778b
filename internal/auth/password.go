package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Known weakness: the digest is deterministic with no per-record salt, so
// equal passwords produce equal hashes. Kept as-is because clients and
// fixtures depend on recompute-and-compare verification.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func VerifyPassword(password, digest string) bool {
	return HashPassword(password) == digest
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	// BearerTokenLength is the size of login tokens stored in the token
	// directory.
	BearerTokenLength = 100
	// ResetKeyLength is the size of the short-lived password-reset keys
	// sent over mail.
	ResetKeyLength = 6
	// NewPasswordLength is the size of replacement passwords generated
	// when a reset key is consumed.
	NewPasswordLength = 10
)

// GenerateToken returns a uniformly random alphanumeric string. It backs
// bearer tokens, reset keys and generated passwords alike.
func GenerateToken(length int) (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tokenAlphabet[n.Int64()]
	}

	return string(b), nil
}
