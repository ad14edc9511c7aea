package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance not found")
	ErrAdvanceLocked   = errors.New("advance belongs to a finalized timesheet")
)
