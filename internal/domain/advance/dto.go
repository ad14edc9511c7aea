package advance

import (
	"github.com/shopspring/decimal"
	"github.com/stafflink/staffing-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	TimesheetID string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	Date        string          `json:"date"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvanceRequest struct {
	ID     string
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Reason *string          `json:"reason,omitempty"`
	Date   *string          `json:"date,omitempty"`
	Status *string          `json:"status,omitempty"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "must not be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusApproved), string(StatusPending), string(StatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid advance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID            string          `json:"id"`
	TimesheetID   string          `json:"timesheet_id"`
	EmployeeID    string          `json:"employee_id"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	CreatedBy     string          `json:"created_by"`
	CreatedByName string          `json:"created_by_name"`
	CreatedAt     string          `json:"created_at"`
	UpdatedBy     string          `json:"updated_by"`
	UpdatedByName string          `json:"updated_by_name"`
	UpdatedAt     string          `json:"updated_at"`
}
