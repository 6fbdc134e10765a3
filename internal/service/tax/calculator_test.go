package tax

import (
	"testing"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/kazi-suite/ledger-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVAT(t *testing.T) {
	rate := decimal.RequireFromString("0.18")

	result := ExtractVAT(decimal.NewFromInt(118000), rate)

	assert.True(t, result.Exclusive.Equal(decimal.NewFromInt(100000)), "exclusive: %s", result.Exclusive)
	assert.True(t, result.Tax.Equal(decimal.NewFromInt(18000)), "tax: %s", result.Tax)
	assert.True(t, result.Exclusive.Add(result.Tax).Equal(result.Inclusive))
}

func TestExtractVATZeroAmount(t *testing.T) {
	result := ExtractVAT(decimal.Zero, decimal.RequireFromString("0.18"))

	assert.True(t, result.Exclusive.IsZero())
	assert.True(t, result.Tax.IsZero())
}

func TestPAYEBelowThreshold(t *testing.T) {
	brackets := fixtures.DefaultPAYEBrackets()

	result, err := PAYE(decimal.NewFromInt(200000), brackets)

	require.NoError(t, err)
	assert.True(t, result.Tax.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
}

func TestPAYEExactThreshold(t *testing.T) {
	brackets := fixtures.DefaultPAYEBrackets()

	result, err := PAYE(decimal.NewFromInt(235000), brackets)

	require.NoError(t, err)
	assert.True(t, result.Tax.IsZero(), "tax at the threshold: %s", result.Tax)
}

func TestPAYESecondBracketTop(t *testing.T) {
	brackets := fixtures.DefaultPAYEBrackets()

	result, err := PAYE(decimal.NewFromInt(335000), brackets)

	require.NoError(t, err)
	assert.True(t, result.Tax.Equal(decimal.NewFromInt(10000)), "tax: %s", result.Tax)
}

func TestPAYEMidBrackets(t *testing.T) {
	brackets := fixtures.DefaultPAYEBrackets()

	// 10000 + 15000 + 177000 across the 10/20/30 percent bands.
	result, err := PAYE(decimal.NewFromInt(1000000), brackets)

	require.NoError(t, err)
	assert.True(t, result.Tax.Equal(decimal.NewFromInt(202000)), "tax: %s", result.Tax)
	assert.True(t, result.EffectiveRate.Equal(decimal.RequireFromString("20.2")), "effective: %s", result.EffectiveRate)
}

func TestPAYETopBracket(t *testing.T) {
	brackets := fixtures.DefaultPAYEBrackets()

	// 10000 + 15000 + 2877000 + 400000 over the open-ended band.
	result, err := PAYE(decimal.NewFromInt(11000000), brackets)

	require.NoError(t, err)
	expected := decimal.NewFromInt(10000 + 15000 + 2877000 + 400000)
	assert.True(t, result.Tax.Equal(expected), "tax: %s", result.Tax)
}

func TestPAYEMonotonic(t *testing.T) {
	brackets := fixtures.DefaultPAYEBrackets()

	prev := decimal.Zero
	for _, gross := range []int64{100000, 235000, 300000, 335000, 410000, 500000, 2000000, 10000000, 20000000} {
		result, err := PAYE(decimal.NewFromInt(gross), brackets)
		require.NoError(t, err)
		assert.True(t, result.Tax.GreaterThanOrEqual(prev), "tax decreased at gross %d", gross)
		prev = result.Tax
	}
}

func TestPAYENoBrackets(t *testing.T) {
	_, err := PAYE(decimal.NewFromInt(500000), nil)

	assert.ErrorIs(t, err, tax.ErrNoBracketsProvided)
}

func TestPAYEZeroGross(t *testing.T) {
	result, err := PAYE(decimal.Zero, fixtures.DefaultPAYEBrackets())

	require.NoError(t, err)
	assert.True(t, result.Tax.IsZero())
}

func TestNSSFSplit(t *testing.T) {
	result := NSSF(decimal.NewFromInt(1000000), decimal.RequireFromString("0.05"), decimal.RequireFromString("0.10"))

	assert.True(t, result.Employee.Equal(decimal.NewFromInt(50000)), "employee: %s", result.Employee)
	assert.True(t, result.Employer.Equal(decimal.NewFromInt(100000)), "employer: %s", result.Employer)
}

func TestNSSFZeroGross(t *testing.T) {
	result := NSSF(decimal.Zero, decimal.RequireFromString("0.05"), decimal.RequireFromString("0.10"))

	assert.True(t, result.Employee.IsZero())
	assert.True(t, result.Employer.IsZero())
}

func TestCorporateTax(t *testing.T) {
	rate := decimal.RequireFromString("0.30")

	assert.True(t, CorporateTax(decimal.NewFromInt(10000000), rate).Equal(decimal.NewFromInt(3000000)))
	assert.True(t, CorporateTax(decimal.NewFromInt(-500000), rate).IsZero(), "a loss year owes nothing")
	assert.True(t, CorporateTax(decimal.Zero, rate).IsZero())
}

func TestFilingDueDate(t *testing.T) {
	due := FilingDueDate(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), due)

	// Year rollover.
	due = FilingDueDate(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), due)

	// Mid-month period ends still file on the 15th of the next month.
	due = FilingDueDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC), due)
}
