package fixtures

import (
	"testing"

	"github.com/kazi-suite/ledger-backend-go/internal/config"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultChartOfAccounts(t *testing.T) {
	accounts := DefaultChartOfAccounts("co-1")

	require.NotEmpty(t, accounts)

	seen := make(map[string]bool)
	for _, acc := range accounts {
		assert.False(t, seen[acc.Code], "duplicate code %s", acc.Code)
		seen[acc.Code] = true

		assert.Equal(t, "co-1", acc.CompanyID)
		assert.True(t, acc.Type.Valid(), "invalid type on %s", acc.Code)
		assert.True(t, acc.IsActive)
		assert.True(t, acc.Balance.IsZero())
		assert.NotEmpty(t, acc.Name)
		assert.NotEmpty(t, acc.SubType)
	}

	// Every account the posting composers write to must be on the chart.
	for _, code := range []string{
		account.CodeCash, account.CodeBank, account.CodeSales, account.CodeInventory,
		account.CodeCOGS, account.CodeAccountsPayable, account.CodeSalaryExpense,
		account.CodePAYEPayable, account.CodeNSSFPayable, account.CodeVATPayable,
		account.CodeMiscExpense,
	} {
		assert.True(t, seen[code], "composer account %s missing from chart", code)
	}

	for _, code := range account.OperatingExpenseCodes {
		assert.True(t, seen[code], "operating expense %s missing from chart", code)
	}
}

func TestDefaultPAYEBrackets(t *testing.T) {
	brackets := DefaultPAYEBrackets()

	require.Len(t, brackets, 5)

	// Contiguous bands: each lower bound equals the previous upper bound.
	for i := 1; i < len(brackets); i++ {
		assert.True(t, brackets[i].Lower.Equal(brackets[i-1].Upper),
			"gap between bracket %d and %d", i-1, i)
	}

	assert.True(t, brackets[0].Lower.IsZero())
	assert.True(t, brackets[0].Rate.IsZero(), "first band is tax free")
	assert.True(t, brackets[len(brackets)-1].Upper.IsZero(), "last band is open-ended")

	// Rates never decrease as income rises.
	for i := 1; i < len(brackets); i++ {
		assert.True(t, brackets[i].Rate.GreaterThanOrEqual(brackets[i-1].Rate))
	}
}

func TestTaxConfigFrom(t *testing.T) {
	cfg := TaxConfigFrom(config.TaxConfig{
		VATRate:          decimal.RequireFromString("0.18"),
		NSSFEmployeeRate: decimal.RequireFromString("0.05"),
		NSSFEmployerRate: decimal.RequireFromString("0.10"),
		CorporateRate:    decimal.RequireFromString("0.30"),
	})

	assert.True(t, cfg.VATRate.Equal(decimal.RequireFromString("0.18")))
	assert.Len(t, cfg.PAYEBrackets, 5)
}
