package timesheet

import "errors"

var (
	ErrTimesheetNotFound  = errors.New("timesheet not found")
	ErrEntryNotFound      = errors.New("daily entry not found")
	ErrAlreadyFinalized   = errors.New("timesheet already finalized, paid amount cannot change")
	ErrTimesheetLocked    = errors.New("timesheet is finalized, its records are locked")
	ErrInvalidPeriod      = errors.New("invalid payroll period")
	ErrInvalidStatus      = errors.New("invalid timesheet status")
	ErrInvalidEntryStatus = errors.New("invalid daily entry status")
)
