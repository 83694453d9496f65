package passwords

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"strong", "Tr0ub4dor&3", nil},
		{"minimal strong", "Abcdefg1", nil},
		{"empty", "", ErrTooShort},
		{"too short", "Ab1", ErrTooShort},
		{"seven chars", "Abcdef1", ErrTooShort},
		{"no uppercase", "abcdefg1", ErrNoUppercase},
		{"no lowercase", "ABCDEFG1", ErrNoLowercase},
		{"no digit", "Abcdefgh", ErrNoDigit},
		{"symbols only pass with all classes", "P@ssw0rd!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.password)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Check(%q) = %v, want nil", tt.password, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Check(%q) = %v, want %v", tt.password, err, tt.want)
			}
		})
	}
}
