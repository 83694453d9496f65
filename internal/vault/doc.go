// Package vault provides the cryptographic core of Lockbox.
//
// This package implements the container format and the encryption,
// decryption, and key-derivation pipeline. It operates purely on in-memory
// byte buffers; file handling, prompting, and output belong to the
// command layer.
//
// # Encryption Architecture
//
// Lockbox supports two schemes that serialize into a single self-describing
// byte stream:
//
// Symmetric (password) mode derives a 256-bit AES key from the password and
// a fresh random salt using PBKDF2, encrypts with AES-256-CBC under a fresh
// random IV, and appends a SHA-256 digest of the plaintext for tamper
// detection:
//
//	[32B salt][16B iv][ciphertext][32B digest]
//
// Hybrid (public-key) mode generates a fresh 256-bit session key per file,
// encrypts the file with AES-256-CBC, and wraps the session key with the
// recipient's RSA-2048 public key using OAEP:
//
//	[256B wrapped key][16B iv][ciphertext]
//
// The mode is not encoded in the container; the caller selects it by
// invoking the symmetric or hybrid entry point, matching which credential
// it holds.
//
// # Key Management
//
// RSA key pairs are generated on demand and returned to the caller as PEM
// blocks (PKCS#1 "RSA PRIVATE KEY", PKIX "PUBLIC KEY"). The package never
// persists key material, passwords, or plaintext; every buffer is owned by
// the single call that created it.
//
// # Failure Semantics
//
// Decoding distinguishes a malformed container (too short for its fixed
// fields), a block-padding failure (the dominant wrong-password signal), a
// digest mismatch (a decryptable container whose content was altered), and
// an RSA unwrap failure (wrong private key or corrupted wrapped-key field).
// Hybrid containers carry no plaintext digest, so their integrity story is
// the OAEP unwrap plus CBC padding validation only.
//
// Salt, IV, and session key are drawn fresh from the OS entropy source for
// every operation. An entropy failure aborts the operation; the package
// never falls back to weaker randomness.
package vault
