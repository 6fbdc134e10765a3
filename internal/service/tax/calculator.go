package tax

import (
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// The calculator is pure: statutory rates in, figures out, no I/O. The
// service wraps it with ledger scans and liability persistence.

var hundred = decimal.NewFromInt(100)

// ExtractVAT reverses VAT out of a tax-inclusive amount:
// exclusive = inclusive / (1 + rate).
func ExtractVAT(inclusive, rate decimal.Decimal) tax.VATExtraction {
	exclusive := inclusive.Div(decimal.NewFromInt(1).Add(rate)).Round(2)
	return tax.VATExtraction{
		Inclusive: inclusive,
		Exclusive: exclusive,
		Tax:       inclusive.Sub(exclusive),
	}
}

// PAYE walks the progressive brackets over a gross monthly pay. Bracket
// lower bounds are exclusive, upper bounds inclusive, the last bracket is
// open-ended. The withholding is rounded to whole currency units.
func PAYE(gross decimal.Decimal, brackets []tax.Bracket) (tax.PAYEResult, error) {
	if len(brackets) == 0 {
		return tax.PAYEResult{}, tax.ErrNoBracketsProvided
	}
	if !gross.IsPositive() {
		return tax.PAYEResult{Tax: decimal.Zero, EffectiveRate: decimal.Zero}, nil
	}

	total := decimal.Zero
	for _, b := range brackets {
		if gross.LessThanOrEqual(b.Lower) {
			break
		}
		top := gross
		if !b.Upper.IsZero() && top.GreaterThan(b.Upper) {
			top = b.Upper
		}
		total = total.Add(top.Sub(b.Lower).Mul(b.Rate))
	}

	total = total.Round(0)
	return tax.PAYEResult{
		Tax:           total,
		EffectiveRate: total.Div(gross).Mul(hundred).Round(2),
	}, nil
}

// NSSF splits the statutory contribution between employee and employer,
// each rounded to whole currency units.
func NSSF(gross, employeeRate, employerRate decimal.Decimal) tax.NSSFResult {
	if !gross.IsPositive() {
		return tax.NSSFResult{Employee: decimal.Zero, Employer: decimal.Zero}
	}
	return tax.NSSFResult{
		Employee: gross.Mul(employeeRate).Round(0),
		Employer: gross.Mul(employerRate).Round(0),
	}
}

// CorporateTax applies the flat rate to net profit, floored at zero; a
// loss year owes nothing.
func CorporateTax(netProfit, rate decimal.Decimal) decimal.Decimal {
	if !netProfit.IsPositive() {
		return decimal.Zero
	}
	return netProfit.Mul(rate).Round(0)
}

// FilingDueDate is the 15th of the month following the period end.
func FilingDueDate(periodEnd time.Time) time.Time {
	firstOfNext := time.Date(periodEnd.Year(), periodEnd.Month(), 1, 0, 0, 0, 0, periodEnd.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, 14)
}
