package timesheet

import (
	"github.com/shopspring/decimal"
	"github.com/stafflink/staffing-backend-go/internal/pkg/validator"
)

// ========== RESOLVE ==========

// ResolveRequest selects a payroll period: either a "YYYY-MM" month token or
// an explicit start/end date pair.
type ResolveRequest struct {
	EmployeeID string  `json:"-"`
	Month      *string `json:"month,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *ResolveRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case r.Month != nil:
		if _, ok := validator.IsValidMonth(*r.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
		}
	case r.StartDate != nil || r.EndDate != nil:
		if r.StartDate == nil || r.EndDate == nil {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date and end_date are both required for a range period"})
			break
		}
		start, okStart := validator.IsValidDate(*r.StartDate)
		if !okStart {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
		end, okEnd := validator.IsValidDate(*r.EndDate)
		if !okEnd {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
		if okStart && okEnd && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "month", Message: "either month or start_date/end_date is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodKey builds the canonical period token for the selection. Validate
// must have passed first.
func (r *ResolveRequest) PeriodKey() string {
	if r.Month != nil {
		return *r.Month
	}
	start, _ := validator.IsValidDate(*r.StartDate)
	end, _ := validator.IsValidDate(*r.EndDate)
	return RangePeriodKey(start, end)
}

type ResolveResponse struct {
	TimesheetID string `json:"timesheet_id"`
	PeriodKey   string `json:"period_key"`
	Created     bool   `json:"created"`
}

// ========== DAILY ENTRIES ==========

type UpsertEntryRequest struct {
	TimesheetID     string `json:"-"`
	Date            string `json:"-"`
	ClientID        string `json:"client_id"`
	ClientName      string `json:"client_name"`
	JobRole         string `json:"job_role"`
	Status          string `json:"status"`
	IsPublicHoliday bool   `json:"is_public_holiday"`
	IsEmergency     bool   `json:"is_emergency"`
	Notes           string `json:"notes"`
}

func (r *UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "is required"})
	}
	if validator.IsEmpty(r.JobRole) {
		errs = append(errs, validator.ValidationError{Field: "job_role", Message: "is required"})
	}
	if !validator.IsInSlice(r.Status, []string{
		string(EntryPresent), string(EntryLeave), string(EntryHalfDay),
		string(EntryHoliday), string(EntryAbsent),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, leave, half-day, holiday, absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyEntryResponse struct {
	Date            string          `json:"date"`
	ClientID        string          `json:"client_id"`
	ClientName      string          `json:"client_name"`
	JobRole         string          `json:"job_role"`
	Status          string          `json:"status"`
	IsPublicHoliday bool            `json:"is_public_holiday"`
	IsEmergency     bool            `json:"is_emergency"`
	Notes           string          `json:"notes"`
	DailySalary     decimal.Decimal `json:"daily_salary"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	UpdatedAt       string          `json:"updated_at"`
}

// ========== STATUS / FINALIZE ==========

type UpdateStatusRequest struct {
	TimesheetID string `json:"-"`
	Status      string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	// "submit" is accepted as a legacy alias for submitted.
	if !validator.IsInSlice(r.Status, []string{
		string(StatusDraft), string(StatusSubmitted), "submit", string(StatusAssigned),
		string(StatusApproved), string(StatusRejected), string(StatusClarification),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid timesheet status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalized maps legacy aliases onto the canonical status.
func (r *UpdateStatusRequest) Normalized() Status {
	if r.Status == "submit" {
		return StatusSubmitted
	}
	return Status(r.Status)
}

type FinalizeRequest struct {
	TimesheetID string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *FinalizeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Zero is a legal payout (fully advanced period); negative is not.
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type SummaryResponse struct {
	TotalDays     int             `json:"total_days"`
	PresentDays   int             `json:"present_days"`
	AbsentDays    int             `json:"absent_days"`
	LeaveDays     int             `json:"leave_days"`
	HalfDays      int             `json:"half_days"`
	HolidayDays   int             `json:"holiday_days"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	TotalAdvances decimal.Decimal `json:"total_advances"`
	NetPayable    decimal.Decimal `json:"net_payable"`
}

type PaidStatusResponse struct {
	Amount        decimal.Decimal `json:"amount"`
	UpdatedAt     string          `json:"updated_at"`
	UpdatedByID   string          `json:"updated_by_id"`
	UpdatedByName string          `json:"updated_by_name"`
}

type TimesheetResponse struct {
	TimesheetID  string               `json:"timesheet_id"`
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name,omitempty"`
	PeriodKey    string               `json:"period_key"`
	Status       string               `json:"status"`
	PaidStatus   *PaidStatusResponse  `json:"paid_status,omitempty"`
	Entries      []DailyEntryResponse `json:"entries"`
	Summary      SummaryResponse      `json:"summary"`
}

type TimesheetRefResponse struct {
	TimesheetID string `json:"timesheet_id"`
	PeriodKey   string `json:"period_key"`
	Status      string `json:"status"`
	IsFinalized bool   `json:"is_finalized"`
}
