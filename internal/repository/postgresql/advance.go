package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stafflink/staffing-backend-go/internal/domain/advance"
	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
	"github.com/stafflink/staffing-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, timesheet_id, employee_id, amount, reason, date, status,
	created_by, created_by_name, created_at, updated_by, updated_by_name, updated_at`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID, &a.TimesheetID, &a.EmployeeID, &a.Amount, &a.Reason, &a.Date, &a.Status,
		&a.CreatedBy, &a.CreatedByName, &a.CreatedAt, &a.UpdatedBy, &a.UpdatedByName, &a.UpdatedAt,
	)
	return a, err
}

func (r *advanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO advances (
			id, timesheet_id, employee_id, amount, reason, date, status,
			created_by, created_by_name, updated_by, updated_by_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $8, $9)
		RETURNING %s
	`, advanceColumns)

	a, err := scanAdvance(q.QueryRow(ctx, query,
		adv.ID, adv.TimesheetID, adv.EmployeeID, adv.Amount, adv.Reason, adv.Date, adv.Status,
		adv.CreatedBy, adv.CreatedByName,
	))
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM advances WHERE id = $1`, advanceColumns)

	a, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) ListByTimesheet(ctx context.Context, timesheetID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM advances WHERE timesheet_id = $1 ORDER BY date, created_at`, advanceColumns)

	rows, err := q.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, nil
}

func (r *advanceRepository) Update(ctx context.Context, req advance.UpdateAdvanceRequest, actor auth.Actor) error {
	q := GetQuerier(ctx, r.db)

	// createdBy/createdAt are never touched on update.
	setParts := []string{"updated_at = NOW()", "updated_by = $2", "updated_by_name = $3"}
	args := []interface{}{req.ID, actor.ID, actor.DisplayName}
	argIdx := 4

	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Reason != nil {
		setParts = append(setParts, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err == nil {
			setParts = append(setParts, fmt.Sprintf("date = $%d", argIdx))
			args = append(args, date)
			argIdx++
		}
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE advances
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to update advance: %w", err)
	}

	return nil
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM advances WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to delete advance: %w", err)
	}

	return nil
}

func (r *advanceRepository) TotalForTimesheet(ctx context.Context, timesheetID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(amount), 0) FROM advances WHERE timesheet_id = $1`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, timesheetID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to total advances: %w", err)
	}

	return total, nil
}
