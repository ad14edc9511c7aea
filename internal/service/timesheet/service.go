package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
	"github.com/stafflink/staffing-backend-go/internal/domain/employee"
	"github.com/stafflink/staffing-backend-go/internal/domain/timesheet"
	"github.com/stafflink/staffing-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
	employeeRepo  employee.EmployeeRepository
	advanceTotals timesheet.AdvanceTotals
}

func NewTimesheetService(
	timesheetRepo timesheet.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
	advanceTotals timesheet.AdvanceTotals,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		timesheetRepo: timesheetRepo,
		employeeRepo:  employeeRepo,
		advanceTotals: advanceTotals,
	}
}

// ========== RESOLUTION ==========

// Resolve turns a period selection into the canonical (periodKey,
// timesheetId) pair, creating the timesheet row on first use. Re-resolving
// the same period returns the existing id; a genuine second timesheet for
// the same month gets a numeric suffix.
func (s *TimesheetServiceImpl) Resolve(ctx context.Context, req timesheet.ResolveRequest) (timesheet.ResolveResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.ResolveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timesheet.ResolveResponse{}, err
	}

	periodKey := req.PeriodKey()
	baseID, err := timesheet.BaseID(timesheet.ShortCode(emp.EmployeeCode), periodKey)
	if err != nil {
		return timesheet.ResolveResponse{}, timesheet.ErrInvalidPeriod
	}

	refs, err := s.timesheetRepo.ListRefsByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return timesheet.ResolveResponse{}, err
	}

	timesheetID := timesheet.ResolveID(baseID, periodKey, refs)

	created, err := s.timesheetRepo.CreateIfAbsent(ctx, timesheet.Timesheet{
		TimesheetID: timesheetID,
		EmployeeID:  req.EmployeeID,
		PeriodKey:   periodKey,
		Status:      timesheet.StatusDraft,
	})
	if err != nil {
		return timesheet.ResolveResponse{}, err
	}

	return timesheet.ResolveResponse{
		TimesheetID: timesheetID,
		PeriodKey:   periodKey,
		Created:     created,
	}, nil
}

// ========== READS ==========

// Get loads the timesheet with its daily entries and a summary recomputed
// from the ledgers. No stored totals are trusted.
func (s *TimesheetServiceImpl) Get(ctx context.Context, timesheetID string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, timesheetID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	entries, err := s.timesheetRepo.GetEntries(ctx, timesheetID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	totalAdvances, err := s.advanceTotals.TotalForTimesheet(ctx, timesheetID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	summary := timesheet.Summarize(entries, totalAdvances)

	resp := timesheet.TimesheetResponse{
		TimesheetID: ts.TimesheetID,
		EmployeeID:  ts.EmployeeID,
		PeriodKey:   ts.PeriodKey,
		Status:      string(ts.Status),
		Entries:     mapEntries(entries),
		Summary: timesheet.SummaryResponse{
			TotalDays:     summary.TotalDays,
			PresentDays:   summary.PresentDays,
			AbsentDays:    summary.AbsentDays,
			LeaveDays:     summary.LeaveDays,
			HalfDays:      summary.HalfDays,
			HolidayDays:   summary.HolidayDays,
			TotalSalary:   summary.TotalSalary,
			TotalAdvances: summary.TotalAdvances,
			NetPayable:    summary.NetPayable,
		},
	}
	if ts.EmployeeName != nil {
		resp.EmployeeName = *ts.EmployeeName
	}
	if ts.PaidStatus != nil {
		resp.PaidStatus = &timesheet.PaidStatusResponse{
			Amount:        ts.PaidStatus.Amount,
			UpdatedAt:     ts.PaidStatus.UpdatedAt.Format(time.RFC3339),
			UpdatedByID:   ts.PaidStatus.UpdatedByID,
			UpdatedByName: ts.PaidStatus.UpdatedByName,
		}
	}

	return resp, nil
}

func (s *TimesheetServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]timesheet.TimesheetRefResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	refs, err := s.timesheetRepo.ListRefsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]timesheet.TimesheetRefResponse, 0, len(refs))
	for _, ref := range refs {
		result = append(result, timesheet.TimesheetRefResponse{
			TimesheetID: ref.TimesheetID,
			PeriodKey:   ref.PeriodKey,
			Status:      string(ref.Status),
			IsFinalized: ref.Finalized,
		})
	}
	return result, nil
}

// ========== MUTATIONS ==========

func (s *TimesheetServiceImpl) UpdateStatus(ctx context.Context, req timesheet.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.timesheetRepo.UpdateStatus(ctx, req.TimesheetID, req.Normalized())
}

// UpsertEntry writes one day's attendance fact. The daily pay is derived
// from the employee's basic salary as it stands right now and snapshotted
// into the entry; later salary changes never alter saved entries.
func (s *TimesheetServiceImpl) UpsertEntry(ctx context.Context, req timesheet.UpsertEntryRequest, actor auth.Actor) (timesheet.DailyEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.DailyEntryResponse{}, err
	}

	ts, err := s.timesheetRepo.GetByID(ctx, req.TimesheetID)
	if err != nil {
		return timesheet.DailyEntryResponse{}, err
	}
	if ts.IsFinalized() {
		// Locked: rejected before any write is attempted.
		return timesheet.DailyEntryResponse{}, timesheet.ErrTimesheetLocked
	}

	emp, err := s.employeeRepo.GetByID(ctx, ts.EmployeeID)
	if err != nil {
		return timesheet.DailyEntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	entry := timesheet.DailyEntry{
		TimesheetID:     req.TimesheetID,
		Date:            date,
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		JobRole:         req.JobRole,
		Status:          timesheet.EntryStatus(req.Status),
		IsPublicHoliday: req.IsPublicHoliday,
		IsEmergency:     req.IsEmergency,
		Notes:           req.Notes,
		DailySalary:     timesheet.DailyRate(emp.BasicSalary),
		BasicSalary:     emp.BasicSalary,
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
	}

	saved, err := s.timesheetRepo.UpsertEntry(ctx, entry)
	if err != nil {
		return timesheet.DailyEntryResponse{}, fmt.Errorf("failed to save daily entry: %w", err)
	}

	return mapEntry(saved), nil
}

func (s *TimesheetServiceImpl) RemoveEntry(ctx context.Context, timesheetID, dateStr string) error {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return validator.ValidationErrors{{Field: "date", Message: "must be in YYYY-MM-DD format"}}
	}

	ts, err := s.timesheetRepo.GetByID(ctx, timesheetID)
	if err != nil {
		return err
	}
	if ts.IsFinalized() {
		return timesheet.ErrTimesheetLocked
	}

	return s.timesheetRepo.RemoveEntry(ctx, timesheetID, date)
}

// Finalize records the payout amount exactly once. The guard here rejects a
// locally-visible duplicate without a write; the repository's conditional
// update closes the window between two concurrent finalizers.
func (s *TimesheetServiceImpl) Finalize(ctx context.Context, req timesheet.FinalizeRequest, actor auth.Actor) (timesheet.PaidStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PaidStatusResponse{}, err
	}

	ts, err := s.timesheetRepo.GetByID(ctx, req.TimesheetID)
	if err != nil {
		return timesheet.PaidStatusResponse{}, err
	}
	if ts.IsFinalized() {
		return timesheet.PaidStatusResponse{}, timesheet.ErrAlreadyFinalized
	}

	paid, err := s.timesheetRepo.FinalizePaidStatus(ctx, req.TimesheetID, req.Amount, actor)
	if err != nil {
		if errors.Is(err, timesheet.ErrAlreadyFinalized) {
			return timesheet.PaidStatusResponse{}, err
		}
		return timesheet.PaidStatusResponse{}, fmt.Errorf("failed to finalize timesheet: %w", err)
	}

	return timesheet.PaidStatusResponse{
		Amount:        paid.Amount,
		UpdatedAt:     paid.UpdatedAt.Format(time.RFC3339),
		UpdatedByID:   paid.UpdatedByID,
		UpdatedByName: paid.UpdatedByName,
	}, nil
}

// ========== HELPERS ==========

func mapEntry(e timesheet.DailyEntry) timesheet.DailyEntryResponse {
	return timesheet.DailyEntryResponse{
		Date:            e.Date.Format("2006-01-02"),
		ClientID:        e.ClientID,
		ClientName:      e.ClientName,
		JobRole:         e.JobRole,
		Status:          string(e.Status),
		IsPublicHoliday: e.IsPublicHoliday,
		IsEmergency:     e.IsEmergency,
		Notes:           e.Notes,
		DailySalary:     e.DailySalary,
		BasicSalary:     e.BasicSalary,
		EmployeeID:      e.EmployeeID,
		EmployeeName:    e.EmployeeName,
		UpdatedAt:       e.UpdatedAt.Format(time.RFC3339),
	}
}

func mapEntries(entries []timesheet.DailyEntry) []timesheet.DailyEntryResponse {
	result := make([]timesheet.DailyEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapEntry(e))
	}
	return result
}
