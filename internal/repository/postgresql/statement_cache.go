package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/statement"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
)

type statementCacheRepository struct {
	db *database.DB
}

func NewStatementCacheRepository(db *database.DB) statement.CacheRepository {
	return &statementCacheRepository{db: db}
}

func (r *statementCacheRepository) Upsert(ctx context.Context, entry statement.CacheEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO statement_cache (company_id, statement_type, period_start, period_end, payload, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id, statement_type, period_start, period_end)
		DO UPDATE SET payload = EXCLUDED.payload, generated_at = EXCLUDED.generated_at
	`

	_, err := q.Exec(ctx, query,
		entry.CompanyID, entry.Type, entry.PeriodStart, entry.PeriodEnd, entry.Payload, entry.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert statement cache: %w", err)
	}

	return nil
}

func (r *statementCacheRepository) Get(ctx context.Context, companyID string, statementType statement.StatementType, periodStart, periodEnd time.Time) (statement.CacheEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, statement_type, period_start, period_end, payload, generated_at
		FROM statement_cache
		WHERE company_id = $1 AND statement_type = $2 AND period_start = $3 AND period_end = $4
	`

	var entry statement.CacheEntry
	err := q.QueryRow(ctx, query, companyID, statementType, periodStart, periodEnd).Scan(
		&entry.CompanyID, &entry.Type, &entry.PeriodStart, &entry.PeriodEnd, &entry.Payload, &entry.GeneratedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return statement.CacheEntry{}, statement.ErrCacheMiss
		}
		return statement.CacheEntry{}, fmt.Errorf("failed to get cached statement: %w", err)
	}

	return entry, nil
}
