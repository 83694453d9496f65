package vault

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"

	lberrors "github.com/lockbox-cli/lockbox/internal/errors"
)

func TestEncryptCBC_DecryptCBC_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("hi")},
		{"one block minus one", make([]byte, aes.BlockSize-1)},
		{"exactly one block", make([]byte, aes.BlockSize)},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80, 0x10}},
		{"large", make([]byte, 10000)},
	}

	key, err := RandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := RandomBytes(aes.BlockSize)
			if err != nil {
				t.Fatal(err)
			}

			ciphertext, err := EncryptCBC(key, iv, tt.plaintext)
			if err != nil {
				t.Fatalf("EncryptCBC() error = %v", err)
			}

			// Padding always adds at least one byte, so the ciphertext is the
			// plaintext rounded up to the next whole block.
			wantLen := (len(tt.plaintext)/aes.BlockSize + 1) * aes.BlockSize
			if len(ciphertext) != wantLen {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), wantLen)
			}

			plaintext, err := DecryptCBC(key, iv, ciphertext)
			if err != nil {
				t.Fatalf("DecryptCBC() error = %v", err)
			}
			if !bytes.Equal(plaintext, tt.plaintext) {
				t.Errorf("round trip mismatch: got %v, want %v", plaintext, tt.plaintext)
			}
		})
	}
}

func TestEncryptCBC_InvalidKeyLength(t *testing.T) {
	iv := make([]byte, aes.BlockSize)
	for _, size := range []int{0, 16, 31, 64} {
		if _, err := EncryptCBC(make([]byte, size), iv, []byte("data")); !errors.Is(err, lberrors.ErrInvalidKeyLength) {
			t.Errorf("key size %d: expected ErrInvalidKeyLength, got %v", size, err)
		}
	}
}

func TestEncryptCBC_InvalidIVLength(t *testing.T) {
	key := make([]byte, 32)
	for _, size := range []int{0, 8, 15, 17} {
		if _, err := EncryptCBC(key, make([]byte, size), []byte("data")); !errors.Is(err, lberrors.ErrInvalidIVLength) {
			t.Errorf("iv size %d: expected ErrInvalidIVLength, got %v", size, err)
		}
	}
}

func TestDecryptCBC_WrongKeyFailsPadding(t *testing.T) {
	key1 := bytes.Repeat([]byte{0x11}, 32)
	key2 := bytes.Repeat([]byte{0x22}, 32)
	iv := make([]byte, aes.BlockSize)

	ciphertext, err := EncryptCBC(key1, iv, []byte("some plaintext content"))
	if err != nil {
		t.Fatal(err)
	}

	// A wrong key is overwhelmingly likely to produce garbage padding.
	if _, err := DecryptCBC(key2, iv, ciphertext); !errors.Is(err, lberrors.ErrInvalidPadding) {
		t.Errorf("expected ErrInvalidPadding, got %v", err)
	}
}

func TestDecryptCBC_BadCiphertextLength(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, aes.BlockSize)

	for _, size := range []int{0, 1, 15, 17, 33} {
		if _, err := DecryptCBC(key, iv, make([]byte, size)); !errors.Is(err, lberrors.ErrInvalidPadding) {
			t.Errorf("ciphertext size %d: expected ErrInvalidPadding, got %v", size, err)
		}
	}
}

func TestPKCS7Unpad(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    []byte
		wantErr bool
	}{
		{"full padding block", append([]byte{}, bytes.Repeat([]byte{16}, 16)...), []byte{}, false},
		{"single pad byte", append(bytes.Repeat([]byte{0xaa}, 15), 1), bytes.Repeat([]byte{0xaa}, 15), false},
		{"zero pad byte", append(bytes.Repeat([]byte{0xaa}, 15), 0), nil, true},
		{"pad byte too large", append(bytes.Repeat([]byte{0xaa}, 15), 17), nil, true},
		{"inconsistent pad bytes", append(bytes.Repeat([]byte{0xaa}, 14), 1, 2), nil, true},
		{"not block aligned", bytes.Repeat([]byte{0xaa}, 15), nil, true},
		{"empty", []byte{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tt.data, aes.BlockSize)
			if tt.wantErr {
				if !errors.Is(err, lberrors.ErrInvalidPadding) {
					t.Fatalf("expected ErrInvalidPadding, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("pkcs7Unpad() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("pkcs7Unpad() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPKCS7Pad_AlwaysBlockAligned(t *testing.T) {
	for size := 0; size < 3*aes.BlockSize; size++ {
		padded := pkcs7Pad(make([]byte, size), aes.BlockSize)
		if len(padded)%aes.BlockSize != 0 {
			t.Errorf("size %d: padded length %d not block aligned", size, len(padded))
		}
		if len(padded) == size {
			t.Errorf("size %d: padding added no bytes", size)
		}
	}
}
