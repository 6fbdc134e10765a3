package statement

import (
	"context"
	"time"
)

type StatementService interface {
	// IncomeStatement aggregates the ledger over the period. The result is
	// cached; pass refresh to force regeneration.
	IncomeStatement(ctx context.Context, periodStart, periodEnd time.Time, refresh bool) (IncomeStatement, error)
	// BalanceSheet reads current account balances, never the ledger.
	BalanceSheet(ctx context.Context, asOf time.Time) (BalanceSheet, error)
	// GetCached returns the stored snapshot for the exact period key, or
	// ErrCacheMiss. Callers decide whether to regenerate.
	GetCached(ctx context.Context, statementType StatementType, periodStart, periodEnd time.Time) (CachedStatementResponse, error)
}
