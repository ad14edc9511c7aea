package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyRow is one dated money fact pulled from a ledger; the rollup engine
// does not care which ledger it came from.
type MoneyRow struct {
	Date   time.Time
	Amount decimal.Decimal
	Status string
}

type MonthSummary struct {
	Month            int                        `json:"month"`
	SalaryTotal      decimal.Decimal            `json:"salary_total"`
	EntryCount       int                        `json:"entry_count"`
	AdvanceTotal     decimal.Decimal            `json:"advance_total"`
	AdvanceCount     int                        `json:"advance_count"`
	AdvancesByStatus map[string]decimal.Decimal `json:"advances_by_status,omitempty"`
	PayoutTotal      decimal.Decimal            `json:"payout_total"`
	PayoutCount      int                        `json:"payout_count"`
	NetPayable       decimal.Decimal            `json:"net_payable"`
}

type MonthlyReportResponse struct {
	Year   int            `json:"year"`
	Months []MonthSummary `json:"months"`
}
