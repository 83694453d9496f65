// Package audit appends a JSON Lines record of every encrypt, decrypt,
// and keygen operation to the user's data directory.
//
// Failed decryptions record the internal failure kind (wrong password,
// integrity mismatch, unwrap failure) that the user-facing output
// deliberately collapses into a single generic message. The log is the
// place to diagnose which one actually happened.
//
// Audit logging is best-effort: an operation never fails because its
// audit entry could not be written.
package audit
