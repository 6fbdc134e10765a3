package payroll

import (
	"context"
	"time"
)

// RecordFilter narrows ListRecords.
type RecordFilter struct {
	BatchID     *string
	EmployeeID  *string
	Status      *PayrollStatus
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Page        int
	Limit       int
}

type PayrollRepository interface {
	CreateBatch(ctx context.Context, batch Batch) (Batch, error)
	GetBatchByID(ctx context.Context, id, companyID string) (Batch, error)
	GetBatchByPeriod(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (Batch, error)
	UpdateBatchStatus(ctx context.Context, id, companyID string, from, to PayrollStatus) error

	CreateRecords(ctx context.Context, records []Record) ([]Record, error)
	ListRecords(ctx context.Context, companyID string, filter RecordFilter) ([]Record, int64, error)
	GetRecordsByIDs(ctx context.Context, ids []string, companyID string) ([]Record, error)
	UpdateRecordsStatus(ctx context.Context, ids []string, companyID string, from, to PayrollStatus) error
	MarkRecordsPaid(ctx context.Context, ids []string, companyID string, paidBy string, paymentDate time.Time, method string) error

	// GetTaxTotals sums recorded gross/PAYE/NSSF over a period. Reporting
	// aggregate, never a recomputation.
	GetTaxTotals(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (TaxTotals, error)
}
