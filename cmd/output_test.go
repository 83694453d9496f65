package cmd

import "testing"

func TestEncryptOutputName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		flag   string
		suffix string
		want   string
	}{
		{"default suffix", "notes.txt", "", ".lockbox", "notes.txt.lockbox"},
		{"explicit flag wins", "notes.txt", "out.bin", ".lockbox", "out.bin"},
		{"custom suffix", "notes.txt", "", ".sealed", "notes.txt.sealed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encryptOutputName(tt.input, tt.flag, tt.suffix); got != tt.want {
				t.Errorf("encryptOutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecryptOutputName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		flag   string
		suffix string
		want   string
	}{
		{"strips suffix", "notes.txt.lockbox", "", ".lockbox", "notes.txt"},
		{"explicit flag wins", "notes.txt.lockbox", "plain.txt", ".lockbox", "plain.txt"},
		{"no suffix gets prefix", "mystery.bin", "", ".lockbox", "decrypted_mystery.bin"},
		{"prefix keeps directory", "sub/dir/mystery.bin", "", ".lockbox", "sub/dir/decrypted_mystery.bin"},
		{"bare suffix not emptied", ".lockbox", "", ".lockbox", "decrypted_.lockbox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decryptOutputName(tt.input, tt.flag, tt.suffix); got != tt.want {
				t.Errorf("decryptOutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}
