package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	lberrors "github.com/lockbox-cli/lockbox/internal/errors"
)

// EncryptCBC encrypts plaintext with AES in CBC mode, applying PKCS#7
// padding first. The key must be 32 bytes (AES-256) and the IV one block
// wide. The IV must never be reused with the same key.
func EncryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := newBlockCipher(key, iv)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// DecryptCBC decrypts AES-CBC ciphertext and strips PKCS#7 padding.
// Malformed padding is reported as a distinct ErrInvalidPadding rather
// than silently returning corrupted output; it is the primary signal for a
// wrong key before any digest check runs.
func DecryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := newBlockCipher(key, iv)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of the block size", lberrors.ErrInvalidPadding, len(ciphertext))
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)
	return pkcs7Unpad(padded, aes.BlockSize)
}

func newBlockCipher(key, iv []byte) (cipher.Block, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d, want 32", lberrors.ErrInvalidKeyLength, len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", lberrors.ErrInvalidIVLength, len(iv), aes.BlockSize)
	}
	return aes.NewCipher(key)
}

// pkcs7Pad extends data to a whole number of blocks. Every plaintext gains
// at least one byte of padding, so a zero-length input becomes one full
// block.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

// pkcs7Unpad validates and strips PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: data length %d", lberrors.ErrInvalidPadding, len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: pad byte %d", lberrors.ErrInvalidPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", lberrors.ErrInvalidPadding)
		}
	}
	return data[:len(data)-n], nil
}
