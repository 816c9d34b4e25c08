package kernel

import (
	"fmt"
	"strings"

	"autoparts/internal/pkg/errs"
)

const (
	minPhoneDigits = 8
	maxPhoneDigits = 15
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created via NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// Phone is a value object that represents a customer's phone number in a
// normalized form. It is the natural key for customers: inbound messages
// carry only the sender's phone, and customer records are upserted by it.
//
// Accepted input is an optional leading "+" followed by 8 to 15 digits.
// Spaces, dashes and parentheses are stripped during normalization, so
// "+52 55 1234-5678" and "+525512345678" compare equal.
//
// The zero value is invalid and must be constructed via NewPhone.
type Phone struct {
	value string
}

// NewPhone normalizes and validates a phone number.
// Returns a ValueIsRequiredError for empty input and a ValueIsInvalidError
// when the normalized form is not an international phone number.
func NewPhone(raw string) (Phone, error) {
	normalized := normalizePhone(raw)
	if normalized == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", len(digits), minPhoneDigits, maxPhoneDigits)
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
				fmt.Errorf("%q is not a digit", r))
		}
	}

	return Phone{value: normalized}, nil
}

func normalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators are dropped
		default:
			// keep invalid runes so validation reports them
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the normalized phone number.
func (p Phone) String() string {
	return p.value
}

// Last4 returns the last four digits of the number. Used to derive a
// placeholder name for customers created from inbound messages.
func (p Phone) Last4() string {
	if len(p.value) <= 4 {
		return p.value
	}
	return p.value[len(p.value)-4:]
}

// IsEqual compares two phone numbers by their normalized form.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate checks if the Phone is properly constructed.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
