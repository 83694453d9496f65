package passwords

import (
	"errors"
	"unicode"
)

// Strength violations, ordered by which rule failed first.
var (
	ErrTooShort    = errors.New("password must be at least 8 characters long")
	ErrNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrNoDigit     = errors.New("password must contain at least one number")
)

// Check reports whether a password meets the minimum strength rules.
// Returns nil for a strong password, or the first violated rule.
func Check(password string) error {
	if len(password) < 8 {
		return ErrTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return ErrNoUppercase
	}
	if !hasLower {
		return ErrNoLowercase
	}
	if !hasDigit {
		return ErrNoDigit
	}
	return nil
}
