package vault

import (
	"crypto/rsa"
	"fmt"

	lberrors "github.com/lockbox-cli/lockbox/internal/errors"
)

// EncryptSymmetric protects plaintext with a password. The salt and IV are
// generated fresh per call, so encrypting the same input twice produces two
// different containers that both decrypt under the same password.
//
// Container layout: [salt][iv][ciphertext][digest] with fixed-width salt,
// IV, and digest fields.
func (c *Codec) EncryptSymmetric(plaintext, password []byte) ([]byte, error) {
	salt, err := RandomBytes(c.params.SaltLength)
	if err != nil {
		return nil, err
	}

	key, err := c.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	iv, err := RandomBytes(c.params.IVLength)
	if err != nil {
		return nil, err
	}

	ciphertext, err := EncryptCBC(key, iv, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt content: %w", err)
	}

	container := make([]byte, 0, c.params.symmetricOverhead()+len(ciphertext))
	container = append(container, salt...)
	container = append(container, iv...)
	container = append(container, ciphertext...)
	container = append(container, Digest(plaintext)...)
	return container, nil
}

// DecryptSymmetric reverses EncryptSymmetric. It fails with
// ErrMalformedContainer when the input cannot hold the fixed fields,
// ErrWrongPasswordOrCorrupted when block padding does not validate (almost
// always a wrong password), and ErrIntegrityCheckFailed when the container
// decrypts cleanly but the recomputed digest disagrees with the stored one,
// which signals corruption after a successful key derivation rather than a
// bad password.
func (c *Codec) DecryptSymmetric(container, password []byte) ([]byte, error) {
	p := c.params
	if len(container) < p.symmetricOverhead() {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", lberrors.ErrMalformedContainer, len(container), p.symmetricOverhead())
	}

	salt := container[:p.SaltLength]
	iv := container[p.SaltLength : p.SaltLength+p.IVLength]
	ciphertext := container[p.SaltLength+p.IVLength : len(container)-p.DigestLength]
	storedDigest := container[len(container)-p.DigestLength:]

	key, err := c.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := DecryptCBC(key, iv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lberrors.ErrWrongPasswordOrCorrupted, err)
	}

	if !VerifyDigest(plaintext, storedDigest) {
		return nil, lberrors.ErrIntegrityCheckFailed
	}
	return plaintext, nil
}

// EncryptHybrid protects plaintext for the holder of the matching private
// key. A one-time session key encrypts the content and travels inside the
// container wrapped with the recipient's public key; it is never derived
// from a password.
//
// Container layout: [wrapped key][iv][ciphertext], where the wrapped-key
// width is fixed by the RSA modulus size.
func (c *Codec) EncryptHybrid(plaintext []byte, pub *rsa.PublicKey) ([]byte, error) {
	sessionKey, err := RandomBytes(c.params.KeyLength)
	if err != nil {
		return nil, err
	}

	iv, err := RandomBytes(c.params.IVLength)
	if err != nil {
		return nil, err
	}

	ciphertext, err := EncryptCBC(sessionKey, iv, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt content: %w", err)
	}

	wrapped, err := c.WrapSessionKey(pub, sessionKey)
	if err != nil {
		return nil, err
	}

	container := make([]byte, 0, len(wrapped)+c.params.IVLength+len(ciphertext))
	container = append(container, wrapped...)
	container = append(container, iv...)
	container = append(container, ciphertext...)
	return container, nil
}

// DecryptHybrid reverses EncryptHybrid. An unwrap failure (ErrUnwrap)
// signals a wrong private key or a corrupted wrapped-key field; a padding
// failure after a successful unwrap (ErrWrongKeyOrCorrupted) signals
// corruption of the ciphertext itself. Hybrid containers carry no plaintext
// digest, so these two checks are the whole integrity story.
func (c *Codec) DecryptHybrid(container []byte, priv *rsa.PrivateKey) ([]byte, error) {
	p := c.params
	if len(container) < p.hybridOverhead() {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", lberrors.ErrMalformedContainer, len(container), p.hybridOverhead())
	}

	wrapped := container[:p.WrappedKeyLength()]
	iv := container[p.WrappedKeyLength():p.hybridOverhead()]
	ciphertext := container[p.hybridOverhead():]

	sessionKey, err := c.UnwrapSessionKey(priv, wrapped)
	if err != nil {
		return nil, err
	}

	plaintext, err := DecryptCBC(sessionKey, iv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lberrors.ErrWrongKeyOrCorrupted, err)
	}
	return plaintext, nil
}
