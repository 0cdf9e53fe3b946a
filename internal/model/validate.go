package model

import (
	"fmt"
	"regexp"
	"strings"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// FieldError reports a single constructor-time validation failure,
// analogous to the assert blocks in the original object constructors.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newFieldErr(field, reason string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(reason, args...)}
}

func requireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return newFieldErr(field, "is required")
	}
	return nil
}

func requireMaxLen(field, value string, max int) error {
	if len([]rune(value)) > max {
		return newFieldErr(field, "must be at most %d characters, got %d", max, len([]rune(value)))
	}
	return nil
}

func requireInTable(field, value string, table map[string]string) error {
	if value == "" {
		return nil
	}
	if !contains(table, value) {
		return newFieldErr(field, "code %q is not in the allowed code table", value)
	}
	return nil
}

func requireDigits(field, value string) error {
	if value == "" {
		return nil
	}
	if !digitsOnly.MatchString(value) {
		return newFieldErr(field, "must contain only digits, got %q", value)
	}
	return nil
}

func requireDigitsMaxLen(field, value string, max int) error {
	if err := requireDigits(field, value); err != nil {
		return err
	}
	return requireMaxLen(field, value, max)
}

// zeroPad left-pads a digit string with zeros to width, used for the
// requester/filler order number fields that must occupy a fixed width on
// the wire regardless of the logical value's magnitude.
func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// ZeroPad15 is the requester-order-number padding width used across orders
// and problems.
func ZeroPad15(s string) string { return zeroPad(s, 15) }

// ZeroPad16 pads to 16 digits, the maximum filler-order-number length;
// order and problem constructors pad filler numbers with ZeroPad15.
func ZeroPad16(s string) string { return zeroPad(s, 16) }
