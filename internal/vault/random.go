package vault

import (
	"crypto/rand"
	"fmt"
	"io"

	lberrors "github.com/lockbox-cli/lockbox/internal/errors"
)

// RandomBytes returns n bytes from the operating system's secure entropy
// source. Salts, IVs, and session keys are all drawn through here so that
// every operation gets independent, uniformly random values.
//
// A failure to obtain entropy wraps ErrEntropyFailure and must abort the
// calling operation; no fallback source is ever substituted.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", lberrors.ErrEntropyFailure, err)
	}
	return b, nil
}
