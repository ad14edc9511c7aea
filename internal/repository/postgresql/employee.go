package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/stafflink/staffing-backend-go/internal/domain/employee"
	"github.com/stafflink/staffing-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_code, full_name, trade, department_id, mobile, joining_date, basic_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_code, full_name, trade, department_id, mobile, joining_date, basic_salary, status, created_at, updated_at
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FullName, emp.Trade, emp.DepartmentID, emp.Mobile, emp.JoiningDate, emp.BasicSalary, emp.Status,
	).Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Trade, &e.DepartmentID, &e.Mobile, &e.JoiningDate, &e.BasicSalary, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, trade, department_id, mobile, joining_date, basic_salary, status, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Trade, &e.DepartmentID, &e.Mobile, &e.JoiningDate, &e.BasicSalary, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, trade, department_id, mobile, joining_date, basic_salary, status, created_at, updated_at
		FROM employees
	`
	if activeOnly {
		query += " WHERE status = 'active'"
	}
	query += " ORDER BY employee_code"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.EmployeeCode, &e.FullName, &e.Trade, &e.DepartmentID, &e.Mobile, &e.JoiningDate, &e.BasicSalary, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Trade != nil {
		setParts = append(setParts, fmt.Sprintf("trade = $%d", argIdx))
		args = append(args, *req.Trade)
		argIdx++
	}
	if req.DepartmentID != nil {
		setParts = append(setParts, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, *req.DepartmentID)
		argIdx++
	}
	if req.Mobile != nil {
		setParts = append(setParts, fmt.Sprintf("mobile = $%d", argIdx))
		args = append(args, *req.Mobile)
		argIdx++
	}
	if req.BasicSalary != nil {
		setParts = append(setParts, fmt.Sprintf("basic_salary = $%d", argIdx))
		args = append(args, *req.BasicSalary)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}
