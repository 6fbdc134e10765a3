package ledger

import (
	"context"
	"time"
)

// LineFilter narrows QueryLines. Zero time bounds mean unbounded.
type LineFilter struct {
	From time.Time
	To   time.Time
	Type *TransactionType
}

type LedgerRepository interface {
	// InsertLines writes every line of one transaction. Callers run it
	// inside a database transaction together with the balance postings
	// and the audit record.
	InsertLines(ctx context.Context, lines []Line) ([]Line, error)
	GetByReferenceID(ctx context.Context, companyID, referenceID string) ([]Line, error)
	ExistsByReferenceID(ctx context.Context, companyID, referenceID string) (bool, error)
	Query(ctx context.Context, companyID string, filter LineFilter) ([]Line, error)
	InsertAuditRecord(ctx context.Context, record AuditRecord) error
}
