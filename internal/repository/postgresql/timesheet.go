package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
	"github.com/stafflink/staffing-backend-go/internal/domain/timesheet"
	"github.com/stafflink/staffing-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

// ========== TIMESHEETS ==========

func (r *timesheetRepository) CreateIfAbsent(ctx context.Context, ts timesheet.Timesheet) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (timesheet_id, employee_id, period_key, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (timesheet_id) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, ts.TimesheetID, ts.EmployeeID, ts.PeriodKey, ts.Status)
	if err != nil {
		return false, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, timesheetID string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.timesheet_id, t.employee_id, t.period_key, t.status,
			   t.payed_amount, t.payed_at, t.payed_by_id, t.payed_by_name,
			   t.created_at, t.updated_at,
			   e.full_name AS employee_name, e.employee_code
		FROM timesheets t
		JOIN employees e ON t.employee_id = e.id
		WHERE t.timesheet_id = $1
	`

	var (
		ts         timesheet.Timesheet
		paidAmount *decimal.Decimal
		paidAt     *time.Time
		paidByID   *string
		paidByName *string
	)
	err := q.QueryRow(ctx, query, timesheetID).Scan(
		&ts.TimesheetID, &ts.EmployeeID, &ts.PeriodKey, &ts.Status,
		&paidAmount, &paidAt, &paidByID, &paidByName,
		&ts.CreatedAt, &ts.UpdatedAt,
		&ts.EmployeeName, &ts.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	if paidAmount != nil {
		ts.PaidStatus = &timesheet.PaidStatus{
			Amount:        *paidAmount,
			UpdatedAt:     derefTime(paidAt),
			UpdatedByID:   derefString(paidByID),
			UpdatedByName: derefString(paidByName),
		}
	}

	return ts, nil
}

func (r *timesheetRepository) ListRefsByEmployee(ctx context.Context, employeeID string) ([]timesheet.TimesheetRef, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT timesheet_id, period_key, status, payed_amount IS NOT NULL
		FROM timesheets
		WHERE employee_id = $1
		ORDER BY timesheet_id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var refs []timesheet.TimesheetRef
	for rows.Next() {
		var ref timesheet.TimesheetRef
		if err := rows.Scan(&ref.TimesheetID, &ref.PeriodKey, &ref.Status, &ref.Finalized); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet ref: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

func (r *timesheetRepository) UpdateStatus(ctx context.Context, timesheetID string, status timesheet.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = $2, updated_at = NOW()
		WHERE timesheet_id = $1
		RETURNING timesheet_id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, timesheetID, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to update timesheet status: %w", err)
	}

	return nil
}

// FinalizePaidStatus is a conditional write: the paid marker lands only
// while none is present, so of two concurrent finalizers exactly one wins
// and the loser gets ErrAlreadyFinalized instead of silently overwriting.
func (r *timesheetRepository) FinalizePaidStatus(ctx context.Context, timesheetID string, amount decimal.Decimal, actor auth.Actor) (timesheet.PaidStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET payed_amount = $2, payed_at = NOW(), payed_by_id = $3, payed_by_name = $4, updated_at = NOW()
		WHERE timesheet_id = $1 AND payed_amount IS NULL
		RETURNING payed_amount, payed_at, payed_by_id, payed_by_name
	`

	var ps timesheet.PaidStatus
	err := q.QueryRow(ctx, query, timesheetID, amount, actor.ID, actor.DisplayName).Scan(
		&ps.Amount, &ps.UpdatedAt, &ps.UpdatedByID, &ps.UpdatedByName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the timesheet does not exist or it is already paid.
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM timesheets WHERE timesheet_id = $1)`, timesheetID).Scan(&exists); checkErr != nil {
				return timesheet.PaidStatus{}, fmt.Errorf("failed to finalize timesheet: %w", checkErr)
			}
			if !exists {
				return timesheet.PaidStatus{}, timesheet.ErrTimesheetNotFound
			}
			return timesheet.PaidStatus{}, timesheet.ErrAlreadyFinalized
		}
		return timesheet.PaidStatus{}, fmt.Errorf("failed to finalize timesheet: %w", err)
	}

	return ps, nil
}

// ========== DAILY ENTRIES ==========

func (r *timesheetRepository) UpsertEntry(ctx context.Context, entry timesheet.DailyEntry) (timesheet.DailyEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_entries (
			timesheet_id, date, client_id, client_name, job_role, status,
			is_public_holiday, is_emergency, notes, daily_salary, basic_salary,
			employee_id, employee_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (timesheet_id, date) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			client_name = EXCLUDED.client_name,
			job_role = EXCLUDED.job_role,
			status = EXCLUDED.status,
			is_public_holiday = EXCLUDED.is_public_holiday,
			is_emergency = EXCLUDED.is_emergency,
			notes = EXCLUDED.notes,
			daily_salary = EXCLUDED.daily_salary,
			basic_salary = EXCLUDED.basic_salary,
			employee_id = EXCLUDED.employee_id,
			employee_name = EXCLUDED.employee_name,
			updated_at = NOW()
		RETURNING timesheet_id, date, client_id, client_name, job_role, status,
			is_public_holiday, is_emergency, notes, daily_salary, basic_salary,
			employee_id, employee_name, created_at, updated_at
	`

	var e timesheet.DailyEntry
	err := q.QueryRow(ctx, query,
		entry.TimesheetID, entry.Date, entry.ClientID, entry.ClientName, entry.JobRole, entry.Status,
		entry.IsPublicHoliday, entry.IsEmergency, entry.Notes, entry.DailySalary, entry.BasicSalary,
		entry.EmployeeID, entry.EmployeeName,
	).Scan(
		&e.TimesheetID, &e.Date, &e.ClientID, &e.ClientName, &e.JobRole, &e.Status,
		&e.IsPublicHoliday, &e.IsEmergency, &e.Notes, &e.DailySalary, &e.BasicSalary,
		&e.EmployeeID, &e.EmployeeName, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return timesheet.DailyEntry{}, fmt.Errorf("failed to upsert daily entry: %w", err)
	}

	return e, nil
}

func (r *timesheetRepository) GetEntries(ctx context.Context, timesheetID string) ([]timesheet.DailyEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT timesheet_id, date, client_id, client_name, job_role, status,
			   is_public_holiday, is_emergency, notes, daily_salary, basic_salary,
			   employee_id, employee_name, created_at, updated_at
		FROM daily_entries
		WHERE timesheet_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.DailyEntry
	for rows.Next() {
		var e timesheet.DailyEntry
		if err := rows.Scan(
			&e.TimesheetID, &e.Date, &e.ClientID, &e.ClientName, &e.JobRole, &e.Status,
			&e.IsPublicHoliday, &e.IsEmergency, &e.Notes, &e.DailySalary, &e.BasicSalary,
			&e.EmployeeID, &e.EmployeeName, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *timesheetRepository) RemoveEntry(ctx context.Context, timesheetID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM daily_entries WHERE timesheet_id = $1 AND date = $2 RETURNING timesheet_id`

	var deletedID string
	err := q.QueryRow(ctx, query, timesheetID, date).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrEntryNotFound
		}
		return fmt.Errorf("failed to remove daily entry: %w", err)
	}

	return nil
}

// ========== HELPERS ==========

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
