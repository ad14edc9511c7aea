package advance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stafflink/staffing-backend-go/internal/domain/advance"
	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
	"github.com/stafflink/staffing-backend-go/internal/domain/timesheet"
	"github.com/stafflink/staffing-backend-go/internal/pkg/validator"
)

type AdvanceServiceImpl struct {
	advanceRepo   advance.AdvanceRepository
	timesheetRepo timesheet.TimesheetRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, timesheetRepo timesheet.TimesheetRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{advanceRepo: advanceRepo, timesheetRepo: timesheetRepo}
}

// guardUnlocked rejects mutations against a finalized timesheet before any
// write is attempted.
func (s *AdvanceServiceImpl) guardUnlocked(ctx context.Context, timesheetID string) (timesheet.Timesheet, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, timesheetID)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	if ts.IsFinalized() {
		return timesheet.Timesheet{}, advance.ErrAdvanceLocked
	}
	return ts, nil
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest, actor auth.Actor) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	ts, err := s.guardUnlocked(ctx, req.TimesheetID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	adv := advance.Advance{
		ID:            uuid.NewString(),
		TimesheetID:   req.TimesheetID,
		EmployeeID:    ts.EmployeeID,
		Amount:        req.Amount,
		Reason:        req.Reason,
		Date:          date,
		Status:        advance.StatusApproved,
		CreatedBy:     actor.ID,
		CreatedByName: actor.DisplayName,
	}

	created, err := s.advanceRepo.Create(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return mapToResponse(created), nil
}

func (s *AdvanceServiceImpl) ListByTimesheet(ctx context.Context, timesheetID string) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListByTimesheet(ctx, timesheetID)
	if err != nil {
		return nil, err
	}

	result := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		result = append(result, mapToResponse(a))
	}
	return result, nil
}

func (s *AdvanceServiceImpl) Update(ctx context.Context, req advance.UpdateAdvanceRequest, actor auth.Actor) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	existing, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if _, err := s.guardUnlocked(ctx, existing.TimesheetID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if err := s.advanceRepo.Update(ctx, req, actor); err != nil {
		return advance.AdvanceResponse{}, err
	}

	updated, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.guardUnlocked(ctx, existing.TimesheetID); err != nil {
		return err
	}

	return s.advanceRepo.Delete(ctx, id)
}

func mapToResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:            a.ID,
		TimesheetID:   a.TimesheetID,
		EmployeeID:    a.EmployeeID,
		Amount:        a.Amount,
		Reason:        a.Reason,
		Date:          a.Date.Format("2006-01-02"),
		Status:        string(a.Status),
		CreatedBy:     a.CreatedBy,
		CreatedByName: a.CreatedByName,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedBy:     a.UpdatedBy,
		UpdatedByName: a.UpdatedByName,
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}
