package vault

import "crypto/aes"

// Params holds the fixed widths and work factors of the container format.
// A Codec treats its Params as immutable; tests construct codecs with a
// reduced iteration count instead of mutating shared state.
type Params struct {
	// SaltLength is the width of the random salt in symmetric containers.
	SaltLength int

	// IVLength is the AES-CBC initialization vector width.
	IVLength int

	// KeyLength is the AES key width. 32 bytes selects AES-256.
	KeyLength int

	// DigestLength is the width of the plaintext integrity digest.
	DigestLength int

	// Iterations is the PBKDF2 iteration count. It is a configuration
	// constant, never attacker- or user-supplied input.
	Iterations int

	// RSABits is the modulus size for generated key pairs.
	RSABits int
}

// DefaultParams returns the production container parameters.
//
// The iteration count follows current OWASP guidance for
// PBKDF2-HMAC-SHA-256 and keeps single-file operations well under a second
// on commodity hardware.
func DefaultParams() Params {
	return Params{
		SaltLength:   32,
		IVLength:     aes.BlockSize,
		KeyLength:    32,
		DigestLength: 32,
		Iterations:   210_000,
		RSABits:      2048,
	}
}

// WrappedKeyLength returns the width of the RSA-wrapped session key field,
// fixed by the modulus size (256 bytes for RSA-2048).
func (p Params) WrappedKeyLength() int {
	return p.RSABits / 8
}

// symmetricOverhead is the total width of the fixed fields in a symmetric
// container. A shorter input cannot be a valid container.
func (p Params) symmetricOverhead() int {
	return p.SaltLength + p.IVLength + p.DigestLength
}

// hybridOverhead is the total width of the fixed fields in a hybrid container.
func (p Params) hybridOverhead() int {
	return p.WrappedKeyLength() + p.IVLength
}

// Codec assembles and parses encrypted containers. The zero value is not
// usable; construct one with NewCodec or Default.
type Codec struct {
	params Params
}

// NewCodec returns a codec using the given parameters.
func NewCodec(p Params) *Codec {
	return &Codec{params: p}
}

// Default returns a codec with the production parameters.
func Default() *Codec {
	return NewCodec(DefaultParams())
}

// Params returns the codec's parameters.
func (c *Codec) Params() Params {
	return c.params
}
