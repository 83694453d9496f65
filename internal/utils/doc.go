// Package utils provides small I/O and formatting helpers shared by the
// Lockbox commands: reading piped key material from stdin, prompting for a
// passphrase without echo, and formatting path lists for final messages.
package utils
