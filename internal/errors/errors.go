package errors

import "errors"

// Input errors indicate invalid parameters or key material supplied by the caller.
var (
	// ErrEmptyPassword indicates an empty password was supplied for key derivation.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrInvalidSaltLength indicates the salt does not match the configured length.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrInvalidKeyLength indicates the symmetric key has an unexpected length.
	ErrInvalidKeyLength = errors.New("invalid symmetric key length")

	// ErrInvalidIVLength indicates the initialization vector has an unexpected length.
	ErrInvalidIVLength = errors.New("invalid initialization vector length")
)

// Key format errors indicate malformed or unsupported PEM key material.
var (
	// ErrInvalidPublicKey indicates the public key is malformed or not RSA.
	ErrInvalidPublicKey = errors.New("invalid or unsupported public key format")

	// ErrInvalidPrivateKey indicates the private key is malformed or unsupported.
	ErrInvalidPrivateKey = errors.New("invalid or unsupported private key format")
)

// Container errors indicate failures while decoding an encrypted container.
var (
	// ErrMalformedContainer indicates the container is too short to hold its fixed fields.
	ErrMalformedContainer = errors.New("container too short for its fixed fields")

	// ErrWrongPasswordOrCorrupted indicates symmetric decryption produced invalid
	// block padding, which almost always means the password was wrong.
	ErrWrongPasswordOrCorrupted = errors.New("wrong password or corrupted container")

	// ErrIntegrityCheckFailed indicates the container decrypted cleanly but the
	// recomputed content digest disagrees with the stored one.
	ErrIntegrityCheckFailed = errors.New("decrypted content failed integrity check")

	// ErrUnwrap indicates the RSA session-key unwrap failed: a wrong private key
	// or a corrupted wrapped-key field.
	ErrUnwrap = errors.New("failed to unwrap session key")

	// ErrWrongKeyOrCorrupted indicates symmetric decryption failed after a
	// successful session-key unwrap, meaning the ciphertext itself was corrupted.
	ErrWrongKeyOrCorrupted = errors.New("wrong key or corrupted container")
)

// Cryptographic primitive errors.
var (
	// ErrEntropyFailure indicates the operating system entropy source failed.
	// The operation in progress must abort; weaker randomness is never substituted.
	ErrEntropyFailure = errors.New("system entropy source failed")

	// ErrInvalidPadding indicates block padding validation failed during decryption.
	ErrInvalidPadding = errors.New("invalid block padding")
)
