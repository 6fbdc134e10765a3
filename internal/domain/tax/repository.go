package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

type LiabilityRepository interface {
	Create(ctx context.Context, liability Liability) (Liability, error)
	GetByID(ctx context.Context, id, companyID string) (Liability, error)
	ListByCompanyID(ctx context.Context, companyID string, status *LiabilityStatus) ([]Liability, error)
	// SumPendingByType aggregates outstanding amounts for the summary
	// dashboard, one row per tax type.
	SumPendingByType(ctx context.Context, companyID string) (map[TaxType]decimal.Decimal, error)
	UpdateStatus(ctx context.Context, id, companyID string, status LiabilityStatus) error
}
