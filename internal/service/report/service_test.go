package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflink/staffing-backend-go/internal/domain/report"
)

type fakeReportRepo struct {
	salaries []report.MoneyRow
	advances []report.MoneyRow
	payouts  []report.MoneyRow
}

func (f *fakeReportRepo) SalaryRows(_ context.Context, _ int, _ string) ([]report.MoneyRow, error) {
	return f.salaries, nil
}

func (f *fakeReportRepo) AdvanceRows(_ context.Context, _ int, _ string) ([]report.MoneyRow, error) {
	return f.advances, nil
}

func (f *fakeReportRepo) PayoutRows(_ context.Context, _ int, _ string) ([]report.MoneyRow, error) {
	return f.payouts, nil
}

func row(y int, m time.Month, d int, amount string, status string) report.MoneyRow {
	return report.MoneyRow{
		Date:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Amount: decimal.RequireFromString(amount),
		Status: status,
	}
}

func TestMonthlyReport(t *testing.T) {
	repo := &fakeReportRepo{
		salaries: []report.MoneyRow{
			row(2025, time.January, 6, "300", "present"),
			row(2025, time.January, 7, "300", "present"),
			row(2025, time.February, 3, "300", "present"),
		},
		advances: []report.MoneyRow{
			row(2025, time.January, 10, "200", "approved"),
			row(2025, time.January, 15, "150", "approved"),
		},
		payouts: []report.MoneyRow{
			row(2025, time.January, 31, "250", ""),
		},
	}
	svc := NewReportService(repo)

	resp, err := svc.Monthly(context.Background(), 2025, "")
	require.NoError(t, err)

	assert.Equal(t, 2025, resp.Year)
	require.Len(t, resp.Months, 2)

	jan := resp.Months[0]
	assert.Equal(t, 1, jan.Month)
	assert.Equal(t, 2, jan.EntryCount)
	assert.True(t, jan.SalaryTotal.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 2, jan.AdvanceCount)
	assert.True(t, jan.AdvanceTotal.Equal(decimal.NewFromInt(350)))
	assert.True(t, jan.AdvancesByStatus["approved"].Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 1, jan.PayoutCount)
	assert.True(t, jan.PayoutTotal.Equal(decimal.NewFromInt(250)))
	assert.True(t, jan.NetPayable.Equal(decimal.NewFromInt(250)))

	feb := resp.Months[1]
	assert.Equal(t, 2, feb.Month)
	assert.Equal(t, 1, feb.EntryCount)
	assert.True(t, feb.SalaryTotal.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 0, feb.AdvanceCount)
	assert.True(t, feb.NetPayable.Equal(decimal.NewFromInt(300)))
}

func TestMonthlyReportSkipsEmptyMonths(t *testing.T) {
	repo := &fakeReportRepo{
		advances: []report.MoneyRow{
			row(2025, time.June, 1, "100", "approved"),
		},
	}
	svc := NewReportService(repo)

	resp, err := svc.Monthly(context.Background(), 2025, "emp-1")
	require.NoError(t, err)

	// A month with only advances still appears; the rest do not.
	require.Len(t, resp.Months, 1)
	assert.Equal(t, 6, resp.Months[0].Month)
	assert.True(t, resp.Months[0].NetPayable.Equal(decimal.NewFromInt(-100)))
}

func TestMonthlyReportEmptyYear(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	resp, err := svc.Monthly(context.Background(), 2025, "")
	require.NoError(t, err)
	assert.Empty(t, resp.Months)
}
