package timesheet

import "github.com/shopspring/decimal"

// Summary holds the derived per-timesheet figures. None of these are ever
// stored; they are recomputed from the raw ledgers on every read so they
// cannot drift from their inputs.
type Summary struct {
	TotalDays     int
	PresentDays   int
	AbsentDays    int
	LeaveDays     int
	HalfDays      int
	HolidayDays   int
	TotalSalary   decimal.Decimal
	TotalAdvances decimal.Decimal
	NetPayable    decimal.Decimal
}

// Summarize computes the attendance counts and financial totals for a set
// of daily entries and the timesheet's advance total.
//
// HolidayDays also counts entries flagged as a public holiday even when
// their status differs. NetPayable is not clamped: advances exceeding the
// derived salary yield a negative figure, which is surfaced as-is.
func Summarize(entries []DailyEntry, totalAdvances decimal.Decimal) Summary {
	s := Summary{
		TotalDays:     len(entries),
		TotalSalary:   decimal.Zero,
		TotalAdvances: totalAdvances,
	}
	for _, e := range entries {
		switch e.Status {
		case EntryPresent:
			s.PresentDays++
		case EntryAbsent:
			s.AbsentDays++
		case EntryLeave:
			s.LeaveDays++
		case EntryHalfDay:
			s.HalfDays++
		case EntryHoliday:
			s.HolidayDays++
		}
		if e.IsPublicHoliday && e.Status != EntryHoliday {
			s.HolidayDays++
		}
		s.TotalSalary = s.TotalSalary.Add(e.DailySalary)
	}
	s.NetPayable = s.TotalSalary.Sub(totalAdvances)
	return s
}
