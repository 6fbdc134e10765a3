package payroll

import (
	"fmt"

	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EmployeeAdjustment carries one employee's per-period allowances and
// non-statutory deductions. Employees without an adjustment run on base
// salary alone.
type EmployeeAdjustment struct {
	EmployeeID      string          `json:"employee_id"`
	Allowances      decimal.Decimal `json:"allowances,omitempty"`
	OtherDeductions decimal.Decimal `json:"other_deductions,omitempty"`
}

type GenerateBatchRequest struct {
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	Adjustments []EmployeeAdjustment `json:"adjustments,omitempty"`
}

func (r *GenerateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must not be after period_end"})
	}

	for i, adj := range r.Adjustments {
		field := fmt.Sprintf("adjustments[%d]", i)
		if validator.IsEmpty(adj.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: field + ".employee_id", Message: "is required"})
		}
		if adj.Allowances.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".allowances", Message: "must be non-negative"})
		}
		if adj.OtherDeductions.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".other_deductions", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAsPaidRequest struct {
	PayrollIDs    []string `json:"payroll_ids"`
	PaymentDate   string   `json:"payment_date"`
	PaymentMethod string   `json:"payment_method"`
}

func (r *MarkAsPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.PayrollIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "payroll_ids", Message: "at least one record is required"})
	}
	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.PaymentMethod, []string{"cash", "bank_transfer", "mobile_money"}) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be cash, bank_transfer or mobile_money"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                   string          `json:"id"`
	BatchID              string          `json:"batch_id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         string          `json:"employee_name,omitempty"`
	EmployeeCode         string          `json:"employee_code,omitempty"`
	PeriodStart          string          `json:"period_start"`
	PeriodEnd            string          `json:"period_end"`
	GrossPay             decimal.Decimal `json:"gross_pay"`
	Allowances           decimal.Decimal `json:"allowances"`
	PAYETax              decimal.Decimal `json:"paye_tax"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	OtherDeductions      decimal.Decimal `json:"other_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`
	EmployerCost         decimal.Decimal `json:"employer_cost"`
	Status               string          `json:"status"`
	PaidAt               *string         `json:"paid_at,omitempty"`
	PaymentMethod        *string         `json:"payment_method,omitempty"`
}

type BatchResponse struct {
	ID                string           `json:"id"`
	PeriodStart       string           `json:"period_start"`
	PeriodEnd         string           `json:"period_end"`
	EmployeeCount     int              `json:"employee_count"`
	TotalGross        decimal.Decimal  `json:"total_gross"`
	TotalPAYE         decimal.Decimal  `json:"total_paye"`
	TotalEmployeeNSSF decimal.Decimal  `json:"total_employee_nssf"`
	TotalEmployerNSSF decimal.Decimal  `json:"total_employer_nssf"`
	TotalDeductions   decimal.Decimal  `json:"total_deductions"`
	TotalNet          decimal.Decimal  `json:"total_net"`
	TotalEmployerCost decimal.Decimal  `json:"total_employer_cost"`
	Status            string           `json:"status"`
	Records           []RecordResponse `json:"records,omitempty"`
}

type ListRecordsResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type SummaryResponse struct {
	PeriodStart       string          `json:"period_start"`
	PeriodEnd         string          `json:"period_end"`
	EmployeeCount     int             `json:"employee_count"`
	TotalGross        decimal.Decimal `json:"total_gross"`
	TotalPAYE         decimal.Decimal `json:"total_paye"`
	TotalNSSF         decimal.Decimal `json:"total_nssf"`
	TotalNet          decimal.Decimal `json:"total_net"`
	TotalEmployerCost decimal.Decimal `json:"total_employer_cost"`
	DraftCount        int             `json:"draft_count"`
	ApprovedCount     int             `json:"approved_count"`
	PaidCount         int             `json:"paid_count"`
}
