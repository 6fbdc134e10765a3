package tax

import (
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type VATReturnResponse struct {
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	Rate         decimal.Decimal `json:"rate"`
	SalesInclVAT decimal.Decimal `json:"sales_incl_vat"`
	VATCollected decimal.Decimal `json:"vat_collected"`
	PurchInclVAT decimal.Decimal `json:"purchases_incl_vat"`
	VATPaid      decimal.Decimal `json:"vat_paid"`
	NetPayable   decimal.Decimal `json:"net_payable"`
	DueDate      string          `json:"due_date"`
	LiabilityID  *string         `json:"liability_id,omitempty"`
}

type PayrollTaxesResponse struct {
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	TotalGross   decimal.Decimal `json:"total_gross"`
	TotalPAYE    decimal.Decimal `json:"total_paye"`
	EmployeeNSSF decimal.Decimal `json:"employee_nssf"`
	EmployerNSSF decimal.Decimal `json:"employer_nssf"`
	TotalNSSF    decimal.Decimal `json:"total_nssf"`
	DueDate      string          `json:"due_date"`
}

type AnnualReturnResponse struct {
	Year               int               `json:"year"`
	Revenue            decimal.Decimal   `json:"revenue"`
	Deductions         []DeductionDetail `json:"deductions"`
	TotalDeductions    decimal.Decimal   `json:"total_deductions"`
	NetProfit          decimal.Decimal   `json:"net_profit"`
	CorporateRate      decimal.Decimal   `json:"corporate_rate"`
	TaxDue             decimal.Decimal   `json:"tax_due"`
	QuarterlyEstimates []decimal.Decimal `json:"quarterly_estimates"`
}

type DeductionDetail struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

type SummaryResponse struct {
	VATDue   decimal.Decimal `json:"vat_due"`
	PAYEDue  decimal.Decimal `json:"paye_due"`
	NSSFDue  decimal.Decimal `json:"nssf_due"`
	TotalDue decimal.Decimal `json:"total_due"`
}

type LiabilityResponse struct {
	ID          string          `json:"id"`
	TaxType     string          `json:"tax_type"`
	Rate        decimal.Decimal `json:"rate"`
	Base        decimal.Decimal `json:"base"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
}

type UpdateLiabilityStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdateLiabilityStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	switch LiabilityStatus(r.Status) {
	case StatusPending, StatusFiled, StatusPaid:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, filed or paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
