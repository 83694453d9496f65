// Package configs resolves user-level paths and settings for Lockbox.
//
// Key material defaults to the XDG data directory and the optional
// config file lives in the XDG config directory:
//
//	~/.local/share/lockbox/keys/   generated key pairs
//	~/.local/share/lockbox/        audit log
//	~/.config/lockbox/config.toml  optional overrides
//
// The config file can override the encrypted-output suffix and the key
// directory. Cryptographic parameters (iteration counts, key sizes) are
// not configurable from the file; they are fixed constants of the
// container format.
package configs
