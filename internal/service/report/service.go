package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stafflink/staffing-backend-go/internal/domain/report"
	"github.com/stafflink/staffing-backend-go/internal/pkg/rollup"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

var moneyRowAccessors = rollup.Accessors[report.MoneyRow]{
	Date:   func(r report.MoneyRow) time.Time { return r.Date },
	Amount: func(r report.MoneyRow) decimal.Decimal { return r.Amount },
}

var moneyRowStatusAccessors = rollup.Accessors[report.MoneyRow]{
	Date:   func(r report.MoneyRow) time.Time { return r.Date },
	Amount: func(r report.MoneyRow) decimal.Decimal { return r.Amount },
	Status: func(r report.MoneyRow) string { return r.Status },
}

// Monthly rolls the year's salary, advance and payout rows into per-month
// buckets. All three series go through the same grouping code.
func (s *ReportServiceImpl) Monthly(ctx context.Context, year int, employeeID string) (report.MonthlyReportResponse, error) {
	salaryRows, err := s.reportRepo.SalaryRows(ctx, year, employeeID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}
	advanceRows, err := s.reportRepo.AdvanceRows(ctx, year, employeeID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}
	payoutRows, err := s.reportRepo.PayoutRows(ctx, year, employeeID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	salaries := rollup.ByMonth(salaryRows, moneyRowAccessors)
	advances := rollup.ByMonth(advanceRows, moneyRowStatusAccessors)
	payouts := rollup.ByMonth(payoutRows, moneyRowAccessors)

	resp := report.MonthlyReportResponse{Year: year}
	for month := time.January; month <= time.December; month++ {
		key := rollup.Month{Year: year, Month: month}

		salary := bucketOrZero(salaries[key])
		adv := bucketOrZero(advances[key])
		payout := bucketOrZero(payouts[key])

		if salary.Count == 0 && adv.Count == 0 && payout.Count == 0 {
			continue
		}

		resp.Months = append(resp.Months, report.MonthSummary{
			Month:            int(month),
			SalaryTotal:      salary.Total,
			EntryCount:       salary.Count,
			AdvanceTotal:     adv.Total,
			AdvanceCount:     adv.Count,
			AdvancesByStatus: adv.ByStatus,
			PayoutTotal:      payout.Total,
			PayoutCount:      payout.Count,
			NetPayable:       salary.Total.Sub(adv.Total),
		})
	}

	return resp, nil
}

func bucketOrZero(b *rollup.Bucket) rollup.Bucket {
	if b == nil {
		return rollup.Bucket{Total: decimal.Zero}
	}
	return *b
}
