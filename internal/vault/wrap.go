package vault

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	lberrors "github.com/lockbox-cli/lockbox/internal/errors"
)

// WrapSessionKey encrypts a session key with the recipient's RSA public key
// using OAEP. OAEP's randomized padding gives semantic security; wrapping
// the same session key twice yields different blobs.
func (c *Codec) WrapSessionKey(pub *rsa.PublicKey, sessionKey []byte) ([]byte, error) {
	if len(sessionKey) != c.params.KeyLength {
		return nil, fmt.Errorf("%w: got %d, want %d", lberrors.ErrInvalidKeyLength, len(sessionKey), c.params.KeyLength)
	}
	blob, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, sessionKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap session key: %w", err)
	}
	return blob, nil
}

// UnwrapSessionKey recovers a session key with the holder's RSA private key.
//
// All failures collapse into ErrUnwrap with no positional detail, so an
// observer cannot learn which byte of the blob caused a padding mismatch.
func (c *Codec) UnwrapSessionKey(priv *rsa.PrivateKey, blob []byte) ([]byte, error) {
	if len(blob) != priv.Size() {
		return nil, lberrors.ErrUnwrap
	}
	sessionKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, blob, nil)
	if err != nil {
		return nil, lberrors.ErrUnwrap
	}
	return sessionKey, nil
}
