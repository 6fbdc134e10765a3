package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum. Transitions are monotonic: draft -> approved -> paid.
type PayrollStatus string

const (
	StatusDraft    PayrollStatus = "draft"
	StatusApproved PayrollStatus = "approved"
	StatusPaid     PayrollStatus = "paid"
)

// CanTransitionTo enforces forward-only status movement.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	switch s {
	case StatusDraft:
		return next == StatusApproved
	case StatusApproved:
		return next == StatusPaid
	}
	return false
}

// Calculation is the pure per-employee payroll result before persistence.
type Calculation struct {
	EmployeeID           string
	EmployeeName         string
	GrossPay             decimal.Decimal
	Allowances           decimal.Decimal
	PAYETax              decimal.Decimal
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	OtherDeductions      decimal.Decimal
	NetPay               decimal.Decimal
	EmployerCost         decimal.Decimal
}

// Record is one employee's persisted payroll for a batch.
type Record struct {
	ID                   string
	BatchID              string
	CompanyID            string
	EmployeeID           string
	PeriodStart          time.Time
	PeriodEnd            time.Time
	GrossPay             decimal.Decimal
	Allowances           decimal.Decimal
	PAYETax              decimal.Decimal
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	OtherDeductions      decimal.Decimal
	NetPay               decimal.Decimal
	EmployerCost         decimal.Decimal
	Status               PayrollStatus
	PaidAt               *time.Time
	PaidBy               *string
	PaymentMethod        *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Batch groups one payroll run for a period with precomputed totals.
type Batch struct {
	ID                string
	CompanyID         string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	EmployeeCount     int
	TotalGross        decimal.Decimal
	TotalPAYE         decimal.Decimal
	TotalEmployeeNSSF decimal.Decimal
	TotalEmployerNSSF decimal.Decimal
	TotalDeductions   decimal.Decimal
	TotalNet          decimal.Decimal
	TotalEmployerCost decimal.Decimal
	Status            PayrollStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TaxTotals aggregates recorded payroll figures for tax reporting.
type TaxTotals struct {
	TotalGross        decimal.Decimal
	TotalPAYE         decimal.Decimal
	TotalEmployeeNSSF decimal.Decimal
	TotalEmployerNSSF decimal.Decimal
}
