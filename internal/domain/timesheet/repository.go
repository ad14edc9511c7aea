package timesheet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
)

type TimesheetRepository interface {
	// CreateIfAbsent inserts the timesheet row unless the id already exists.
	// It reports whether a row was created.
	CreateIfAbsent(ctx context.Context, ts Timesheet) (bool, error)
	GetByID(ctx context.Context, timesheetID string) (Timesheet, error)
	ListRefsByEmployee(ctx context.Context, employeeID string) ([]TimesheetRef, error)
	UpdateStatus(ctx context.Context, timesheetID string, status Status) error

	// FinalizePaidStatus writes the paid marker only while none is present;
	// a concurrent finalize that lost the race gets ErrAlreadyFinalized.
	FinalizePaidStatus(ctx context.Context, timesheetID string, amount decimal.Decimal, actor auth.Actor) (PaidStatus, error)

	UpsertEntry(ctx context.Context, entry DailyEntry) (DailyEntry, error)
	GetEntries(ctx context.Context, timesheetID string) ([]DailyEntry, error)
	RemoveEntry(ctx context.Context, timesheetID string, date time.Time) error
}

// AdvanceTotals is the slice of the advance ledger the summary engine needs.
// Implemented by the advance repository.
type AdvanceTotals interface {
	TotalForTimesheet(ctx context.Context, timesheetID string) (decimal.Decimal, error)
}

type TimesheetService interface {
	Resolve(ctx context.Context, req ResolveRequest) (ResolveResponse, error)
	Get(ctx context.Context, timesheetID string) (TimesheetResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TimesheetRefResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	UpsertEntry(ctx context.Context, req UpsertEntryRequest, actor auth.Actor) (DailyEntryResponse, error)
	RemoveEntry(ctx context.Context, timesheetID, date string) error
	Finalize(ctx context.Context, req FinalizeRequest, actor auth.Actor) (PaidStatusResponse, error)
}
