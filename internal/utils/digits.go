package utils

import "strings"

const (
	PhoneLength = 10
	CodeLength  = 6
)

// Digits strips every non-digit rune from raw and truncates the result to max
// characters. Applying it twice yields the same value as once.
func Digits(raw string, max int) string {
	var b strings.Builder
	b.Grow(max)
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// IsDigits reports whether s is non-empty and consists only of decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidPhone reports whether s is exactly 10 digits. Inputs are rejected as-is,
// never re-stripped.
func ValidPhone(s string) bool {
	return len(s) == PhoneLength && IsDigits(s)
}

// ValidCode reports whether s is exactly 6 digits.
func ValidCode(s string) bool {
	return len(s) == CodeLength && IsDigits(s)
}
