package ledger

import "context"

type LedgerService interface {
	// PostTransaction validates, balances and atomically applies an
	// arbitrary set of entries. Resubmitting a reference ID returns the
	// stored transaction instead of posting twice.
	PostTransaction(ctx context.Context, req PostTransactionRequest) (TransactionResponse, error)

	// Composers build the entries for common business events and post them
	// through the same path as PostTransaction.
	RecordSale(ctx context.Context, req RecordSaleRequest) (TransactionResponse, error)
	RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (TransactionResponse, error)
	RecordExpense(ctx context.Context, req RecordExpenseRequest) (TransactionResponse, error)
	RecordPayroll(ctx context.Context, req RecordPayrollRequest) (TransactionResponse, error)

	GetTransaction(ctx context.Context, referenceID string) (TransactionResponse, error)
	QueryLines(ctx context.Context, req QueryLinesRequest) ([]LineResponse, error)
}
