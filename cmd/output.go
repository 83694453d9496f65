package cmd

import (
	"path/filepath"
	"strings"
)

// encryptOutputName picks the output path for an encrypted file: the
// explicit flag when given, otherwise the input name plus the configured
// suffix.
func encryptOutputName(input, flag, suffix string) string {
	if flag != "" {
		return flag
	}
	return input + suffix
}

// decryptOutputName picks the output path for a decrypted file: the
// explicit flag when given, the input with the suffix stripped when it
// carries one, otherwise a "decrypted_" prefix on the file name so the
// original is never overwritten.
func decryptOutputName(input, flag, suffix string) string {
	if flag != "" {
		return flag
	}
	if strings.HasSuffix(input, suffix) && len(input) > len(suffix) {
		return strings.TrimSuffix(input, suffix)
	}
	dir, base := filepath.Split(input)
	return filepath.Join(dir, "decrypted_"+base)
}
