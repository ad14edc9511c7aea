package response

import (
	"errors"
	"net/http"

	"github.com/stafflink/staffing-backend-go/internal/domain/advance"
	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
	"github.com/stafflink/staffing-backend-go/internal/domain/employee"
	"github.com/stafflink/staffing-backend-go/internal/domain/timesheet"
	"github.com/stafflink/staffing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already registered")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Daily entry not found")
	case errors.Is(err, timesheet.ErrAlreadyFinalized):
		Conflict(w, "Timesheet has already been paid")
	case errors.Is(err, timesheet.ErrTimesheetLocked):
		Conflict(w, "Timesheet is locked after payment")
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Invalid timesheet period", nil)
	case errors.Is(err, timesheet.ErrInvalidStatus):
		BadRequest(w, "Invalid timesheet status", nil)
	case errors.Is(err, timesheet.ErrInvalidEntryStatus):
		BadRequest(w, "Invalid daily entry status", nil)

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, advance.ErrAdvanceLocked):
		Conflict(w, "Advance is locked after payment")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
