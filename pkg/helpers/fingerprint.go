package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint derives the one-way credential fingerprint of a secret:
// SHA-256, hex-encoded, uppercased. Deterministic, so a stored fingerprint
// and a freshly computed one compare byte-for-byte.
func Fingerprint(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// FingerprintEqual compares two fingerprints case-insensitively, so values
// recorded before case normalization still match.
func FingerprintEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
