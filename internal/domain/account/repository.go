package account

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, acc Account) (Account, error)
	GetByCode(ctx context.Context, companyID, code string) (Account, error)
	GetByCodes(ctx context.Context, companyID string, codes []string) (map[string]Account, error)
	ListByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]Account, error)
	CountByCompanyID(ctx context.Context, companyID string) (int64, error)
	// ApplyPosting shifts the balance by amount on the given side in one
	// atomic UPDATE. The sign is resolved in SQL from the account's normal
	// side so concurrent postings can never lose an update.
	ApplyPosting(ctx context.Context, companyID, code string, amount decimal.Decimal, side Side) (decimal.Decimal, error)
	Deactivate(ctx context.Context, companyID, code string) error
}
