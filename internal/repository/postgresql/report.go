package postgresql

import (
	"context"
	"fmt"

	"github.com/stafflink/staffing-backend-go/internal/domain/report"
	"github.com/stafflink/staffing-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) rows(ctx context.Context, query string, year int, employeeID string) ([]report.MoneyRow, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{year}
	if employeeID != "" {
		args = append(args, employeeID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
	}
	defer rows.Close()

	var out []report.MoneyRow
	for rows.Next() {
		var row report.MoneyRow
		if err := rows.Scan(&row.Date, &row.Amount, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		out = append(out, row)
	}

	return out, nil
}

func (r *reportRepository) SalaryRows(ctx context.Context, year int, employeeID string) ([]report.MoneyRow, error) {
	query := `
		SELECT date, daily_salary, status
		FROM daily_entries
		WHERE EXTRACT(YEAR FROM date) = $1
	`
	if employeeID != "" {
		query += ` AND employee_id = $2`
	}
	return r.rows(ctx, query, year, employeeID)
}

func (r *reportRepository) AdvanceRows(ctx context.Context, year int, employeeID string) ([]report.MoneyRow, error) {
	query := `
		SELECT date, amount, status
		FROM advances
		WHERE EXTRACT(YEAR FROM date) = $1
	`
	if employeeID != "" {
		query += ` AND employee_id = $2`
	}
	return r.rows(ctx, query, year, employeeID)
}

func (r *reportRepository) PayoutRows(ctx context.Context, year int, employeeID string) ([]report.MoneyRow, error) {
	query := `
		SELECT t.payed_at, t.payed_amount, t.status
		FROM timesheets t
		WHERE t.payed_amount IS NOT NULL AND EXTRACT(YEAR FROM t.payed_at) = $1
	`
	if employeeID != "" {
		query += ` AND t.employee_id = $2`
	}
	return r.rows(ctx, query, year, employeeID)
}
