package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
)

// RandomHex generates a cryptographically random hex string of n bytes
// (2n characters).
func RandomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// SecureEqual compares two strings in constant time.
func SecureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
