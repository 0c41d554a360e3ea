package util

import (
	"errors"
	"strings"
)

// PhoneDigits is the length of a normalized phone number.
const PhoneDigits = 10

var (
	ErrPhoneRequired = errors.New("phone number is required")
	ErrPhoneLength   = errors.New("phone number must be 10 digits")
)

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		if c := p[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizePhone reduces p to its digits and requires exactly ten of them.
// Only the empty string counts as missing; whitespace-only input is present
// and fails the length check instead.
func NormalizePhone(p string) (string, error) {
	if p == "" {
		return "", ErrPhoneRequired
	}
	digits := DigitsOnly(p)
	if len(digits) != PhoneDigits {
		return "", ErrPhoneLength
	}
	return digits, nil
}

// FormatPhone groups a normalized number as (xxx) xxx-xxxx.
func FormatPhone(digits string) string {
	if len(digits) != PhoneDigits {
		return digits
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

// MaskPhone keeps the last four digits for logging.
func MaskPhone(digits string) string {
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
