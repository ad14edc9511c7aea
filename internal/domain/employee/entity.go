package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
	StatusResigned   Status = "resigned"
)

// Employee is a worker on the agency's roster. The payroll ledgers treat
// this record as read-only: they consume the id, code, display name and
// basic salary, and never write back.
type Employee struct {
	ID           string
	EmployeeCode string // e.g. "JW00007"
	FullName     string
	Trade        string
	DepartmentID *string
	Mobile       *string
	JoiningDate  *time.Time
	BasicSalary  decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
