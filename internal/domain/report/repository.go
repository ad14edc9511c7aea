package report

import "context"

// ReportRepository pulls raw dated money rows for a calendar year. The
// grouping happens in the service, not in SQL, so all three series go
// through the same rollup code path.
type ReportRepository interface {
	SalaryRows(ctx context.Context, year int, employeeID string) ([]MoneyRow, error)
	AdvanceRows(ctx context.Context, year int, employeeID string) ([]MoneyRow, error)
	PayoutRows(ctx context.Context, year int, employeeID string) ([]MoneyRow, error)
}

type ReportService interface {
	Monthly(ctx context.Context, year int, employeeID string) (MonthlyReportResponse, error)
}
