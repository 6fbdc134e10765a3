package account

import "context"

type AccountService interface {
	// InitializeChart seeds the default chart for the tenant. Safe to call
	// again; an already seeded company is reported, not re-seeded.
	InitializeChart(ctx context.Context) (InitializeChartResponse, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	GetBalance(ctx context.Context, code string) (BalanceResponse, error)
	ListAccounts(ctx context.Context, activeOnly bool) ([]AccountResponse, error)
	DeactivateAccount(ctx context.Context, code string) error
}
