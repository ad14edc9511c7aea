package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("00123") {
		t.Error("IsNumeric(00123) = false, want true")
	}
	for _, s := range []string{"", "12a", "-5", "1.5"} {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-01-31")
	if !ok {
		t.Fatal("IsValidDate(2025-01-31) = false, want true")
	}
	if date.Year() != 2025 || date.Month() != time.January || date.Day() != 31 {
		t.Errorf("parsed date = %v, want 2025-01-31", date)
	}

	for _, s := range []string{"2025-02-30", "31-01-2025", "2025-1-5", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2025-02")
	if !ok {
		t.Fatal("IsValidMonth(2025-02) = false, want true")
	}
	if month.Year() != 2025 || month.Month() != time.February {
		t.Errorf("parsed month = %v, want 2025-02", month)
	}

	for _, s := range []string{"2025-13", "2025", "2025-2", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be greater than zero"},
		{Field: "date", Message: "must be in YYYY-MM-DD format"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap returned %d entries, want 2", len(m))
	}
	if m["amount"] != "must be greater than zero" {
		t.Errorf("amount message = %q", m["amount"])
	}

	if errs.Error() != "amount: must be greater than zero; date: must be in YYYY-MM-DD format" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
