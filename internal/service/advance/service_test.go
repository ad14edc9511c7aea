package advance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflink/staffing-backend-go/internal/domain/advance"
	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
	"github.com/stafflink/staffing-backend-go/internal/domain/timesheet"
)

// ========== IN-MEMORY FAKES ==========

type fakeAdvanceRepo struct {
	advances map[string]advance.Advance
}

func newFakeAdvanceRepo() *fakeAdvanceRepo {
	return &fakeAdvanceRepo{advances: make(map[string]advance.Advance)}
}

func (f *fakeAdvanceRepo) Create(_ context.Context, adv advance.Advance) (advance.Advance, error) {
	now := time.Now()
	adv.CreatedAt = now
	adv.UpdatedAt = now
	adv.UpdatedBy = adv.CreatedBy
	adv.UpdatedByName = adv.CreatedByName
	f.advances[adv.ID] = adv
	return adv, nil
}

func (f *fakeAdvanceRepo) GetByID(_ context.Context, id string) (advance.Advance, error) {
	adv, ok := f.advances[id]
	if !ok {
		return advance.Advance{}, advance.ErrAdvanceNotFound
	}
	return adv, nil
}

func (f *fakeAdvanceRepo) ListByTimesheet(_ context.Context, timesheetID string) ([]advance.Advance, error) {
	var result []advance.Advance
	for _, adv := range f.advances {
		if adv.TimesheetID == timesheetID {
			result = append(result, adv)
		}
	}
	return result, nil
}

func (f *fakeAdvanceRepo) Update(_ context.Context, req advance.UpdateAdvanceRequest, actor auth.Actor) error {
	adv, ok := f.advances[req.ID]
	if !ok {
		return advance.ErrAdvanceNotFound
	}
	if req.Amount != nil {
		adv.Amount = *req.Amount
	}
	if req.Reason != nil {
		adv.Reason = *req.Reason
	}
	if req.Date != nil {
		adv.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.Status != nil {
		adv.Status = advance.Status(*req.Status)
	}
	adv.UpdatedBy = actor.ID
	adv.UpdatedByName = actor.DisplayName
	adv.UpdatedAt = time.Now()
	f.advances[req.ID] = adv
	return nil
}

func (f *fakeAdvanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.advances[id]; !ok {
		return advance.ErrAdvanceNotFound
	}
	delete(f.advances, id)
	return nil
}

func (f *fakeAdvanceRepo) TotalForTimesheet(_ context.Context, timesheetID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, adv := range f.advances {
		if adv.TimesheetID == timesheetID {
			total = total.Add(adv.Amount)
		}
	}
	return total, nil
}

type fakeTimesheetStore struct {
	timesheets map[string]timesheet.Timesheet
}

func (f *fakeTimesheetStore) CreateIfAbsent(_ context.Context, ts timesheet.Timesheet) (bool, error) {
	if _, ok := f.timesheets[ts.TimesheetID]; ok {
		return false, nil
	}
	f.timesheets[ts.TimesheetID] = ts
	return true, nil
}

func (f *fakeTimesheetStore) GetByID(_ context.Context, id string) (timesheet.Timesheet, error) {
	ts, ok := f.timesheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (f *fakeTimesheetStore) ListRefsByEmployee(_ context.Context, _ string) ([]timesheet.TimesheetRef, error) {
	return nil, nil
}

func (f *fakeTimesheetStore) UpdateStatus(_ context.Context, _ string, _ timesheet.Status) error {
	return nil
}

func (f *fakeTimesheetStore) FinalizePaidStatus(_ context.Context, id string, amount decimal.Decimal, actor auth.Actor) (timesheet.PaidStatus, error) {
	ts := f.timesheets[id]
	paid := timesheet.PaidStatus{Amount: amount, UpdatedAt: time.Now(), UpdatedByID: actor.ID, UpdatedByName: actor.DisplayName}
	ts.PaidStatus = &paid
	f.timesheets[id] = ts
	return paid, nil
}

func (f *fakeTimesheetStore) UpsertEntry(_ context.Context, entry timesheet.DailyEntry) (timesheet.DailyEntry, error) {
	return entry, nil
}

func (f *fakeTimesheetStore) GetEntries(_ context.Context, _ string) ([]timesheet.DailyEntry, error) {
	return nil, nil
}

func (f *fakeTimesheetStore) RemoveEntry(_ context.Context, _ string, _ time.Time) error {
	return nil
}

// ========== SETUP ==========

func newTestService(finalized bool) (advance.AdvanceService, *fakeAdvanceRepo) {
	ts := timesheet.Timesheet{
		TimesheetID: "JW7-25-01",
		EmployeeID:  "emp-1",
		PeriodKey:   "2025-01",
		Status:      timesheet.StatusDraft,
	}
	if finalized {
		ts.PaidStatus = &timesheet.PaidStatus{Amount: decimal.NewFromInt(500)}
	}
	tsStore := &fakeTimesheetStore{timesheets: map[string]timesheet.Timesheet{
		ts.TimesheetID: ts,
	}}
	advRepo := newFakeAdvanceRepo()
	return NewAdvanceService(advRepo, tsStore), advRepo
}

var testActor = auth.Actor{ID: "user-1", DisplayName: "Back Office"}

// ========== TESTS ==========

func TestCreateAdvance(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		TimesheetID: "JW7-25-01",
		Amount:      decimal.NewFromInt(200),
		Reason:      "Fuel money",
		Date:        "2025-01-10",
	}, testActor)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "JW7-25-01", created.TimesheetID)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, string(advance.StatusApproved), created.Status)
	assert.Equal(t, "user-1", created.CreatedBy)
	assert.Equal(t, "Back Office", created.CreatedByName)
}

func TestCreateAdvanceValidation(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	cases := []struct {
		name string
		req  advance.CreateAdvanceRequest
	}{
		{"zero amount", advance.CreateAdvanceRequest{TimesheetID: "JW7-25-01", Amount: decimal.Zero, Reason: "x", Date: "2025-01-10"}},
		{"negative amount", advance.CreateAdvanceRequest{TimesheetID: "JW7-25-01", Amount: decimal.NewFromInt(-50), Reason: "x", Date: "2025-01-10"}},
		{"empty reason", advance.CreateAdvanceRequest{TimesheetID: "JW7-25-01", Amount: decimal.NewFromInt(50), Reason: "  ", Date: "2025-01-10"}},
		{"bad date", advance.CreateAdvanceRequest{TimesheetID: "JW7-25-01", Amount: decimal.NewFromInt(50), Reason: "x", Date: "10-01-2025"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(ctx, c.req, testActor)
			assert.Error(t, err)
		})
	}
}

func TestCreateAdvanceUnknownTimesheet(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		TimesheetID: "ghost",
		Amount:      decimal.NewFromInt(50),
		Reason:      "x",
		Date:        "2025-01-10",
	}, testActor)
	assert.ErrorIs(t, err, timesheet.ErrTimesheetNotFound)
}

func TestUpdateAdvanceStampsAuditFields(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		TimesheetID: "JW7-25-01",
		Amount:      decimal.NewFromInt(200),
		Reason:      "Fuel money",
		Date:        "2025-01-10",
	}, testActor)
	require.NoError(t, err)

	newAmount := decimal.NewFromInt(250)
	editor := auth.Actor{ID: "user-2", DisplayName: "Supervisor"}
	updated, err := svc.Update(ctx, advance.UpdateAdvanceRequest{
		ID:     created.ID,
		Amount: &newAmount,
	}, editor)
	require.NoError(t, err)

	assert.True(t, updated.Amount.Equal(newAmount))
	// Creation stamps survive; only the update stamps move.
	assert.Equal(t, "user-1", updated.CreatedBy)
	assert.Equal(t, "user-2", updated.UpdatedBy)
	assert.Equal(t, "Supervisor", updated.UpdatedByName)
}

func TestDeleteAdvance(t *testing.T) {
	svc, advRepo := newTestService(false)
	ctx := context.Background()

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		TimesheetID: "JW7-25-01",
		Amount:      decimal.NewFromInt(200),
		Reason:      "Fuel money",
		Date:        "2025-01-10",
	}, testActor)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = advRepo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)
}

func TestAdvancesAreIndependentlyKeyed(t *testing.T) {
	svc, advRepo := newTestService(false)
	ctx := context.Background()

	first, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		TimesheetID: "JW7-25-01",
		Amount:      decimal.NewFromInt(200),
		Reason:      "Fuel money",
		Date:        "2025-01-10",
	}, testActor)
	require.NoError(t, err)

	second, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		TimesheetID: "JW7-25-01",
		Amount:      decimal.NewFromInt(150),
		Reason:      "Medical",
		Date:        "2025-01-15",
	}, testActor)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	// Editing one advance leaves the other untouched.
	newAmount := decimal.NewFromInt(300)
	_, err = svc.Update(ctx, advance.UpdateAdvanceRequest{ID: first.ID, Amount: &newAmount}, testActor)
	require.NoError(t, err)

	other, err := advRepo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, other.Amount.Equal(decimal.NewFromInt(150)))

	total, err := advRepo.TotalForTimesheet(ctx, "JW7-25-01")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(450)))
}

func TestAdvanceMutationsLockedAfterFinalize(t *testing.T) {
	svc, advRepo := newTestService(true)
	ctx := context.Background()

	_, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		TimesheetID: "JW7-25-01",
		Amount:      decimal.NewFromInt(200),
		Reason:      "Fuel money",
		Date:        "2025-01-10",
	}, testActor)
	assert.ErrorIs(t, err, advance.ErrAdvanceLocked)

	// Seed one directly to exercise update and delete guards.
	seeded, err := advRepo.Create(ctx, advance.Advance{
		ID:          "adv-1",
		TimesheetID: "JW7-25-01",
		Amount:      decimal.NewFromInt(100),
		Reason:      "Old advance",
	})
	require.NoError(t, err)

	newAmount := decimal.NewFromInt(500)
	_, err = svc.Update(ctx, advance.UpdateAdvanceRequest{ID: seeded.ID, Amount: &newAmount}, testActor)
	assert.ErrorIs(t, err, advance.ErrAdvanceLocked)

	err = svc.Delete(ctx, seeded.ID)
	assert.ErrorIs(t, err, advance.ErrAdvanceLocked)
}
