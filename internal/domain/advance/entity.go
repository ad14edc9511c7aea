package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. New advances are approved immediately; the other states
// exist for imported legacy records.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Advance is a cash payment made ahead of settlement, deducted from the
// timesheet's net payable. Each advance is independently keyed, so
// concurrent edits to different advances never conflict.
type Advance struct {
	ID            string
	TimesheetID   string
	EmployeeID    string
	Amount        decimal.Decimal
	Reason        string
	Date          time.Time
	Status        Status
	CreatedBy     string
	CreatedByName string
	CreatedAt     time.Time
	UpdatedBy     string
	UpdatedByName string
	UpdatedAt     time.Time
}
