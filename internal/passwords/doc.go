// Package passwords scores password strength for the encrypt command.
//
// The rules are deliberately simple and advisory: at least eight
// characters with one uppercase letter, one lowercase letter, and one
// digit. The cryptographic core accepts any non-empty password; these
// checks only gate the CLI, and --force bypasses them.
package passwords
