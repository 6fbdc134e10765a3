package statement

import (
	"context"
	"time"
)

type CacheRepository interface {
	// Upsert replaces any snapshot under the same (company, type, period)
	// key. Concurrent writers may race; last write wins by design of the
	// cache, the content is always reproducible from the ledger.
	Upsert(ctx context.Context, entry CacheEntry) error
	Get(ctx context.Context, companyID string, statementType StatementType, periodStart, periodEnd time.Time) (CacheEntry, error)
}
