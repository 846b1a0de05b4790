// Package validation holds the client-side field validators that run before a
// request is submitted. Each validator returns a human-readable message, or
// the empty string when the value passes.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 \-()]{7,20}$`)
)

// Required fails on empty or whitespace-only values.
func Required(value, field string) string {
	if strings.TrimSpace(value) == "" {
		return field + " is required"
	}
	return ""
}

// MinLength fails when value is shorter than min runes.
func MinLength(value string, min int, field string) string {
	if utf8.RuneCountInString(value) < min {
		return fmt.Sprintf("%s must be at least %d characters", field, min)
	}
	return ""
}

// MaxLength fails when value is longer than max runes.
func MaxLength(value string, max int, field string) string {
	if utf8.RuneCountInString(value) > max {
		return fmt.Sprintf("%s must be at most %d characters", field, max)
	}
	return ""
}

// ExactLength fails unless value is exactly n runes long.
func ExactLength(value string, n int, field string) string {
	if utf8.RuneCountInString(value) != n {
		return fmt.Sprintf("%s must be exactly %d characters", field, n)
	}
	return ""
}

// Pattern fails when value does not match re. The message is returned as-is
// so callers control the wording.
func Pattern(value string, re *regexp.Regexp, message string) string {
	if !re.MatchString(value) {
		return message
	}
	return ""
}

// Comparison fails with message when the two values differ (password
// confirmation fields).
func Comparison(a, b, message string) string {
	if a != b {
		return message
	}
	return ""
}

// Email fails when value is not a plausible email address.
func Email(value string) string {
	if !emailPattern.MatchString(value) {
		return "enter a valid email address"
	}
	return ""
}

// Phone fails when value is not a plausible phone number.
func Phone(value string) string {
	if !phonePattern.MatchString(value) {
		return "enter a valid phone number"
	}
	return ""
}

// Fields maps a form field name to its current error message. An empty map
// means the form is valid.
type Fields map[string]string

// Set records msg under field when msg is non-empty, so validators can be
// chained without branching at every call site.
func (f Fields) Set(field, msg string) {
	if msg != "" {
		f[field] = msg
	}
}

// Valid reports whether no field carries an error.
func (f Fields) Valid() bool {
	return len(f) == 0
}

// MergeServerErrors folds an HTTP 400 validation envelope
// (errors: {FieldName: [messages]}) into the same field-error map the
// client-side validators populate. Backend field names arrive PascalCased;
// they are lower-cased on the first rune to line up with form field names.
// Only the first message per field is kept.
func (f Fields) MergeServerErrors(errs map[string][]string) {
	for name, msgs := range errs {
		if len(msgs) == 0 {
			continue
		}
		f[lowerFirst(name)] = msgs[0]
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
