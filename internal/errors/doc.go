// Package errors provides typed error values for the Lockbox application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// The container errors mirror the failure taxonomy of the encryption
// pipeline: a malformed container is rejected before any key derivation, a
// block-padding failure is the dominant signal for a wrong password, and a
// digest mismatch signals corruption of a container that was otherwise
// decryptable. Commands collapse all of these into one generic user-facing
// message so an attacker cannot distinguish wrong-credential from
// corruption; the distinct kinds are kept for debug logging and the audit
// trail only.
package errors
