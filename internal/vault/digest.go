package vault

import (
	"crypto/sha256"
	"crypto/subtle"
)

// Digest returns the SHA-256 digest of data. The digest is always computed
// over plaintext, never ciphertext, and is stored in symmetric containers
// for tamper detection.
func Digest(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// VerifyDigest reports whether data hashes to expected. The comparison is
// constant-time over the digest length.
func VerifyDigest(data, expected []byte) bool {
	if len(expected) != sha256.Size {
		return false
	}
	sum := sha256.Sum256(data)
	return subtle.ConstantTimeCompare(sum[:], expected) == 1
}
