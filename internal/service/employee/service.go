package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stafflink/staffing-backend-go/internal/domain/employee"
	"github.com/stafflink/staffing-backend-go/internal/pkg/validator"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
}

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	basicSalary := decimal.Zero
	if req.BasicSalary != nil {
		basicSalary = *req.BasicSalary
	}

	var joiningDate *time.Time
	if req.JoiningDate != nil {
		if parsed, ok := validator.IsValidDate(*req.JoiningDate); ok {
			joiningDate = &parsed
		}
	}

	emp := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Trade:        req.Trade,
		DepartmentID: req.DepartmentID,
		Mobile:       req.Mobile,
		JoiningDate:  joiningDate,
		BasicSalary:  basicSalary,
		Status:       employee.StatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	var joiningDateStr *string
	if emp.JoiningDate != nil {
		str := emp.JoiningDate.Format("2006-01-02")
		joiningDateStr = &str
	}

	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Trade:        emp.Trade,
		DepartmentID: emp.DepartmentID,
		Mobile:       emp.Mobile,
		JoiningDate:  joiningDateStr,
		BasicSalary:  emp.BasicSalary,
		Status:       string(emp.Status),
	}
}
