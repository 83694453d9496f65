package vault

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	lberrors "github.com/lockbox-cli/lockbox/internal/errors"
)

// KeyPair holds a freshly generated RSA key pair. The private half must
// never leave the holder's control; this package has no mechanism to
// persist or transmit it on its own.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// GenerateKeyPair creates a new RSA key pair of the configured modulus
// size. Prime generation draws from the OS entropy source; its only
// meaningful failure is entropy exhaustion, which aborts the call.
func (c *Codec) GenerateKeyPair() (*KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, c.params.RSABits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lberrors.ErrEntropyFailure, err)
	}
	return &KeyPair{Private: privateKey, Public: &privateKey.PublicKey}, nil
}

// EncodePrivateKeyPEM encodes a private key as a portable PEM block.
func EncodePrivateKeyPEM(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

// EncodePublicKeyPEM encodes a public key as a portable PEM block.
func EncodePublicKeyPEM(key *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	}), nil
}

// ParsePrivateKeyPEM parses a PEM-encoded RSA private key.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		return nil, fmt.Errorf("%w: missing RSA PRIVATE KEY block", lberrors.ErrInvalidPrivateKey)
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lberrors.ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// ParsePublicKeyPEM parses a PEM-encoded RSA public key.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("%w: missing PUBLIC KEY block", lberrors.ErrInvalidPublicKey)
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lberrors.ErrInvalidPublicKey, err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", lberrors.ErrInvalidPublicKey)
	}
	return rsaPub, nil
}
