package tax

import (
	"context"
	"time"
)

type TaxService interface {
	// CalculateVAT builds the VAT return for the period from the ledger.
	// With record set, a pending liability is also persisted.
	CalculateVAT(ctx context.Context, periodStart, periodEnd time.Time, record bool) (VATReturnResponse, error)
	CalculatePayrollTaxes(ctx context.Context, periodStart, periodEnd time.Time) (PayrollTaxesResponse, error)
	AnnualReturn(ctx context.Context, year int) (AnnualReturnResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)
	ListLiabilities(ctx context.Context, status *LiabilityStatus) ([]LiabilityResponse, error)
	UpdateLiabilityStatus(ctx context.Context, req UpdateLiabilityStatusRequest) (LiabilityResponse, error)
}
