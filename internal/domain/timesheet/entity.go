package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. The caller moves a timesheet through these states; the core
// never transitions them on its own.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusSubmitted     Status = "submitted"
	StatusAssigned      Status = "assigned"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusClarification Status = "clarification"
)

// IsSubmitted reports whether a status counts as "submitted" for downstream
// checks. Legacy records carry "submit" and "assigned" for the same state.
func IsSubmitted(s Status) bool {
	switch s {
	case StatusSubmitted, StatusAssigned, Status("submit"):
		return true
	}
	return false
}

// EntryStatus enum for a single day's attendance fact.
type EntryStatus string

const (
	EntryPresent EntryStatus = "present"
	EntryLeave   EntryStatus = "leave"
	EntryHalfDay EntryStatus = "half-day"
	EntryHoliday EntryStatus = "holiday"
	EntryAbsent  EntryStatus = "absent"
)

// Timesheet is one payroll document scoped to (employee, period).
type Timesheet struct {
	TimesheetID string // "<ShortCode>-<YY>-<MM>[-<n>]"
	EmployeeID  string
	PeriodKey   string // "YYYY-MM" or "<start>_to_<end>"
	Status      Status
	PaidStatus  *PaidStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// IsFinalized reports whether the one-way paid marker has been written.
func (t Timesheet) IsFinalized() bool {
	return t.PaidStatus != nil
}

// PaidStatus is the write-once payout marker. Once present it is never
// amended; there is no transition back to the open state.
type PaidStatus struct {
	Amount        decimal.Decimal
	UpdatedAt     time.Time
	UpdatedByID   string
	UpdatedByName string
}

// DailyEntry is one calendar day's attendance fact within a timesheet,
// keyed by its ISO date. At most one entry exists per date; re-saving the
// same date overwrites the prior record.
type DailyEntry struct {
	TimesheetID     string
	Date            time.Time
	ClientID        string
	ClientName      string
	JobRole         string
	Status          EntryStatus
	IsPublicHoliday bool
	IsEmergency     bool
	Notes           string
	DailySalary     decimal.Decimal // round(BasicSalary / 30), fixed at save time
	BasicSalary     decimal.Decimal // salary snapshot, not a live reference
	EmployeeID      string
	EmployeeName    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DaysPerMonth is the fixed divisor for deriving a day's pay from the
// monthly basic salary, regardless of the calendar month's length.
const DaysPerMonth = 30

// DailyRate derives the per-day pay from a monthly basic salary, rounded to
// a whole amount. Half-day and emergency flags do not change the formula;
// they are informational only (known product gap, kept for data parity).
func DailyRate(basicSalary decimal.Decimal) decimal.Decimal {
	return basicSalary.Div(decimal.NewFromInt(DaysPerMonth)).Round(0)
}
