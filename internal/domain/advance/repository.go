package advance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
)

type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	ListByTimesheet(ctx context.Context, timesheetID string) ([]Advance, error)
	Update(ctx context.Context, req UpdateAdvanceRequest, actor auth.Actor) error
	Delete(ctx context.Context, id string) error

	// TotalForTimesheet implements the summary engine's advance total.
	TotalForTimesheet(ctx context.Context, timesheetID string) (decimal.Decimal, error)
}

type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest, actor auth.Actor) (AdvanceResponse, error)
	ListByTimesheet(ctx context.Context, timesheetID string) ([]AdvanceResponse, error)
	Update(ctx context.Context, req UpdateAdvanceRequest, actor auth.Actor) (AdvanceResponse, error)
	Delete(ctx context.Context, id string) error
}
