package employee

import (
	"github.com/shopspring/decimal"
	"github.com/stafflink/staffing-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code"`
	FullName     string           `json:"full_name"`
	Trade        string           `json:"trade"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Mobile       *string          `json:"mobile,omitempty"`
	JoiningDate  *string          `json:"joining_date,omitempty"`
	BasicSalary  *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not exceed 255 characters"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	FullName     *string          `json:"full_name,omitempty"`
	Trade        *string          `json:"trade,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Mobile       *string          `json:"mobile,omitempty"`
	BasicSalary  *decimal.Decimal `json:"basic_salary,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusOnLeave),
		string(StatusTerminated), string(StatusResigned),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid employee status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Trade        string          `json:"trade"`
	DepartmentID *string         `json:"department_id,omitempty"`
	Mobile       *string         `json:"mobile,omitempty"`
	JoiningDate  *string         `json:"joining_date,omitempty"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Status       string          `json:"status"`
}
