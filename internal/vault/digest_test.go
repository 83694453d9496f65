package vault

import (
	"encoding/hex"
	"testing"
)

func TestDigest_KnownVector(t *testing.T) {
	// SHA-256("hello world")
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	got := hex.EncodeToString(Digest([]byte("hello world")))
	if got != want {
		t.Errorf("Digest() = %s, want %s", got, want)
	}
}

func TestVerifyDigest(t *testing.T) {
	data := []byte("the quick brown fox")
	digest := Digest(data)

	if len(digest) != 32 {
		t.Fatalf("digest length = %d, want 32", len(digest))
	}
	if !VerifyDigest(data, digest) {
		t.Error("VerifyDigest() rejected a matching digest")
	}
	if VerifyDigest([]byte("the quick brown fix"), digest) {
		t.Error("VerifyDigest() accepted altered data")
	}

	// A single flipped digest byte must fail.
	digest[0] ^= 0x01
	if VerifyDigest(data, digest) {
		t.Error("VerifyDigest() accepted a corrupted digest")
	}
}

func TestVerifyDigest_WrongLength(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		if VerifyDigest([]byte("data"), make([]byte, size)) {
			t.Errorf("VerifyDigest() accepted a %d-byte digest", size)
		}
	}
}

func TestDigest_EmptyInput(t *testing.T) {
	digest := Digest(nil)
	if len(digest) != 32 {
		t.Fatalf("digest length = %d, want 32", len(digest))
	}
	if !VerifyDigest(nil, digest) {
		t.Error("VerifyDigest() rejected the empty-input digest")
	}
}
