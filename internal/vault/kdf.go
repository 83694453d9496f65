package vault

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	lberrors "github.com/lockbox-cli/lockbox/internal/errors"
)

// DeriveKey stretches a password and salt into an AES key using
// PBKDF2-HMAC-SHA-256. The same (password, salt) pair always yields the
// same key; that determinism is what lets decryption reconstruct the key
// without storing it.
func (c *Codec) DeriveKey(password, salt []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, lberrors.ErrEmptyPassword
	}
	if len(salt) != c.params.SaltLength {
		return nil, fmt.Errorf("%w: got %d, want %d", lberrors.ErrInvalidSaltLength, len(salt), c.params.SaltLength)
	}
	return pbkdf2.Key(password, salt, c.params.Iterations, c.params.KeyLength, sha256.New), nil
}
