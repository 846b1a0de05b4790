package validation

import (
	"regexp"
	"testing"
)

func TestRequired(t *testing.T) {
	if msg := Required("", "name"); msg == "" {
		t.Error("empty value must fail")
	}
	if msg := Required("   ", "name"); msg == "" {
		t.Error("whitespace-only value must fail")
	}
	if msg := Required("x", "name"); msg != "" {
		t.Errorf("non-empty value must pass, got %q", msg)
	}
}

func TestExactLength(t *testing.T) {
	if msg := ExactLength("1234567", 8, "code"); msg == "" {
		t.Error("7 characters must fail an exact-length-8 check")
	}
	if msg := ExactLength("12345678", 8, "code"); msg != "" {
		t.Errorf("8 characters must pass, got %q", msg)
	}
}

func TestComparison(t *testing.T) {
	if msg := Comparison("a", "a", "msg"); msg != "" {
		t.Errorf("equal values must return empty string, got %q", msg)
	}
	if msg := Comparison("a", "b", "passwords do not match"); msg != "passwords do not match" {
		t.Errorf("unequal values must return the given message, got %q", msg)
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"x@y", false},
		{"x@y.com", true},
		{"", false},
		{"no-at-sign.com", false},
		{"a b@y.com", false},
		{"user+tag@sub.example.org", true},
	}
	for _, tc := range cases {
		msg := Email(tc.value)
		if tc.valid && msg != "" {
			t.Errorf("Email(%q): expected valid, got %q", tc.value, msg)
		}
		if !tc.valid && msg == "" {
			t.Errorf("Email(%q): expected failure", tc.value)
		}
	}
}

func TestMinMaxLength(t *testing.T) {
	if msg := MinLength("abc", 4, "password"); msg == "" {
		t.Error("3 < 4 must fail")
	}
	if msg := MinLength("abcd", 4, "password"); msg != "" {
		t.Errorf("4 >= 4 must pass, got %q", msg)
	}
	if msg := MaxLength("abcde", 4, "name"); msg == "" {
		t.Error("5 > 4 must fail")
	}
}

func TestPattern(t *testing.T) {
	digits := regexp.MustCompile(`^[0-9]+$`)
	if msg := Pattern("12a", digits, "digits only"); msg != "digits only" {
		t.Errorf("expected the custom message, got %q", msg)
	}
	if msg := Pattern("123", digits, "digits only"); msg != "" {
		t.Errorf("match must pass, got %q", msg)
	}
}

func TestFields_SetAndValid(t *testing.T) {
	f := Fields{}
	f.Set("email", "")
	if !f.Valid() {
		t.Error("empty message must not be recorded")
	}
	f.Set("email", Email("x@y"))
	if f.Valid() {
		t.Error("expected a recorded error")
	}
	if f["email"] == "" {
		t.Error("message must be stored under the field name")
	}
}

func TestFields_MergeServerErrors(t *testing.T) {
	f := Fields{}
	f.MergeServerErrors(map[string][]string{
		"Email":       {"email already taken", "second message ignored"},
		"PhoneNumber": {"invalid phone"},
		"Empty":       {},
	})

	if f["email"] != "email already taken" {
		t.Errorf("expected re-cased field name with first message, got %q", f["email"])
	}
	if f["phoneNumber"] != "invalid phone" {
		t.Errorf("expected lower-first re-casing only, got %v", f)
	}
	if _, ok := f["empty"]; ok {
		t.Error("fields with no messages must be skipped")
	}
}
