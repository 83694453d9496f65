package vault

import (
	"sync"
	"testing"
)

// testParams keeps the production field widths but a small iteration count
// so derivation-heavy tests stay fast.
func testParams() Params {
	p := DefaultParams()
	p.Iterations = 1000
	return p
}

func testCodec() *Codec {
	return NewCodec(testParams())
}

var (
	keyPairOnce sync.Once
	keyPairs    [2]*KeyPair
	keyPairErr  error
)

// testKeyPairs returns two distinct RSA key pairs, generated once and
// shared across the package's tests.
func testKeyPairs(t *testing.T) (*KeyPair, *KeyPair) {
	t.Helper()
	keyPairOnce.Do(func() {
		c := testCodec()
		for i := range keyPairs {
			keyPairs[i], keyPairErr = c.GenerateKeyPair()
			if keyPairErr != nil {
				return
			}
		}
	})
	if keyPairErr != nil {
		t.Fatalf("failed to generate test key pairs: %v", keyPairErr)
	}
	return keyPairs[0], keyPairs[1]
}
