package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

type TaxType string

const (
	TypeVAT  TaxType = "VAT"
	TypePAYE TaxType = "PAYE"
	TypeNSSF TaxType = "NSSF"
)

type LiabilityStatus string

const (
	StatusPending LiabilityStatus = "pending"
	StatusFiled   LiabilityStatus = "filed"
	StatusPaid    LiabilityStatus = "paid"
)

// CanTransitionTo enforces the one-way lifecycle pending -> filed/paid,
// filed -> paid.
func (s LiabilityStatus) CanTransitionTo(next LiabilityStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusFiled || next == StatusPaid
	case StatusFiled:
		return next == StatusPaid
	}
	return false
}

// Liability is one recognized tax obligation for a period.
type Liability struct {
	ID          string
	CompanyID   string
	TaxType     TaxType
	Rate        decimal.Decimal
	Base        decimal.Decimal
	Amount      decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
	DueDate     time.Time
	Status      LiabilityStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Bracket is one progressive PAYE band. Lower is exclusive, Upper
// inclusive; the final band has Upper zero and is open-ended.
type Bracket struct {
	Lower decimal.Decimal
	Upper decimal.Decimal
	Rate  decimal.Decimal
}

// Config carries the statutory rates the calculator runs on.
type Config struct {
	VATRate          decimal.Decimal
	PAYEBrackets     []Bracket
	NSSFEmployeeRate decimal.Decimal
	NSSFEmployerRate decimal.Decimal
	CorporateRate    decimal.Decimal
}

// PAYEResult is the withholding for one gross monthly pay.
type PAYEResult struct {
	Tax           decimal.Decimal
	EffectiveRate decimal.Decimal
}

// NSSFResult splits the contribution between employee and employer.
type NSSFResult struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// VATExtraction reverses tax out of a tax-inclusive amount.
type VATExtraction struct {
	Inclusive decimal.Decimal
	Exclusive decimal.Decimal
	Tax       decimal.Decimal
}
