package payroll

import (
	"context"
	"time"
)

type PayrollService interface {
	// GenerateBatch computes a draft payroll run for every active salaried
	// employee in the period. One batch per company and period.
	GenerateBatch(ctx context.Context, req GenerateBatchRequest) (BatchResponse, error)
	GetBatch(ctx context.Context, batchID string) (BatchResponse, error)
	// ProcessBatch approves a draft batch: records move to approved, the
	// payroll transaction is posted to the ledger and the PAYE and NSSF
	// liabilities are recognized, all or nothing.
	ProcessBatch(ctx context.Context, batchID string) (BatchResponse, error)
	MarkAsPaid(ctx context.Context, req MarkAsPaidRequest) (int, error)
	History(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
	Summary(ctx context.Context, periodStart, periodEnd time.Time) (SummaryResponse, error)
}
