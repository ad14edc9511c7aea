package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDailyRate(t *testing.T) {
	cases := []struct {
		basic string
		want  string
	}{
		{"9000", "300"},
		{"1000", "33"},  // 33.33... rounds down
		{"1100", "37"},  // 36.66... rounds up
		{"0", "0"},
	}
	for _, c := range cases {
		basic := decimal.RequireFromString(c.basic)
		got := DailyRate(basic)
		if got.String() != c.want {
			t.Errorf("DailyRate(%s) = %s, want %s", c.basic, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	entries := []DailyEntry{
		{Status: EntryPresent, DailySalary: d("300")},
		{Status: EntryPresent, DailySalary: d("300")},
		{Status: EntryLeave, DailySalary: d("0")},
		{Status: EntryHoliday, DailySalary: d("300")},
		{Status: EntryAbsent, DailySalary: d("0")},
	}

	s := Summarize(entries, d("350"))

	if s.TotalDays != 5 {
		t.Errorf("TotalDays = %d, want 5", s.TotalDays)
	}
	if s.PresentDays != 2 {
		t.Errorf("PresentDays = %d, want 2", s.PresentDays)
	}
	if s.LeaveDays != 1 {
		t.Errorf("LeaveDays = %d, want 1", s.LeaveDays)
	}
	if s.HolidayDays != 1 {
		t.Errorf("HolidayDays = %d, want 1", s.HolidayDays)
	}
	if s.AbsentDays != 1 {
		t.Errorf("AbsentDays = %d, want 1", s.AbsentDays)
	}
	if !s.TotalSalary.Equal(d("900")) {
		t.Errorf("TotalSalary = %s, want 900", s.TotalSalary)
	}
	if !s.NetPayable.Equal(d("550")) {
		t.Errorf("NetPayable = %s, want 550", s.NetPayable)
	}
}

func TestSummarizePublicHolidayFlag(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	// A present day flagged as a public holiday counts toward both present
	// and holiday tallies; a holiday-status day is not counted twice.
	entries := []DailyEntry{
		{Status: EntryPresent, IsPublicHoliday: true, DailySalary: d("300")},
		{Status: EntryHoliday, IsPublicHoliday: true, DailySalary: d("300")},
	}

	s := Summarize(entries, decimal.Zero)

	if s.PresentDays != 1 {
		t.Errorf("PresentDays = %d, want 1", s.PresentDays)
	}
	if s.HolidayDays != 2 {
		t.Errorf("HolidayDays = %d, want 2", s.HolidayDays)
	}
}

func TestSummarizeNegativeNetPayable(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	entries := []DailyEntry{
		{Status: EntryPresent, DailySalary: d("300")},
	}

	// Advances beyond the derived salary surface as a negative balance.
	s := Summarize(entries, d("500"))
	if !s.NetPayable.Equal(d("-200")) {
		t.Errorf("NetPayable = %s, want -200", s.NetPayable)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, decimal.Zero)
	if s.TotalDays != 0 {
		t.Errorf("TotalDays = %d, want 0", s.TotalDays)
	}
	if !s.TotalSalary.Equal(decimal.Zero) {
		t.Errorf("TotalSalary = %s, want 0", s.TotalSalary)
	}
	if !s.NetPayable.Equal(decimal.Zero) {
		t.Errorf("NetPayable = %s, want 0", s.NetPayable)
	}
}

func TestIsSubmitted(t *testing.T) {
	for _, s := range []Status{StatusSubmitted, StatusAssigned, Status("submit")} {
		if !IsSubmitted(s) {
			t.Errorf("IsSubmitted(%q) = false, want true", s)
		}
	}
	for _, s := range []Status{StatusDraft, StatusApproved, StatusRejected, StatusClarification} {
		if IsSubmitted(s) {
			t.Errorf("IsSubmitted(%q) = true, want false", s)
		}
	}
}
