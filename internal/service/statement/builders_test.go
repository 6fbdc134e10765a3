package statement

import (
	"testing"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartByCode() map[string]account.Account {
	m := make(map[string]account.Account)
	for _, acc := range fixtures.DefaultChartOfAccounts("co-1") {
		m[acc.Code] = acc
	}
	return m
}

func debitLine(code string, v int64, txType ledger.TransactionType) ledger.Line {
	amount := decimal.NewFromInt(v)
	return ledger.Line{
		CompanyID:       "co-1",
		Date:            time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		TransactionType: txType,
		DebitAccount:    &code,
		DebitAmount:     amount,
	}
}

func creditLine(code string, v int64, txType ledger.TransactionType) ledger.Line {
	amount := decimal.NewFromInt(v)
	return ledger.Line{
		CompanyID:       "co-1",
		Date:            time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		TransactionType: txType,
		CreditAccount:   &code,
		CreditAmount:    amount,
	}
}

func TestBuildIncomeStatement(t *testing.T) {
	accounts := chartByCode()
	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	lines := []ledger.Line{
		creditLine(account.CodeSales, 1000000, ledger.TypeSale),
		debitLine(account.CodeCOGS, 400000, ledger.TypeSale),
		debitLine(account.CodeRentExpense, 80000, ledger.TypeExpense),
		debitLine(account.CodeUtilitiesExpense, 20000, ledger.TypeExpense),
		debitLine(account.CodeBankCharges, 10000, ledger.TypeExpense),
	}

	result := buildIncomeStatement(periodStart, periodEnd, lines, accounts)

	assert.True(t, result.Revenue.Equal(decimal.NewFromInt(1000000)), "revenue: %s", result.Revenue)
	assert.True(t, result.CostOfGoodsSold.Equal(decimal.NewFromInt(400000)))
	assert.True(t, result.GrossProfit.Equal(decimal.NewFromInt(600000)))
	assert.True(t, result.OperatingExpenses.Equal(decimal.NewFromInt(100000)))
	assert.True(t, result.OperatingProfit.Equal(decimal.NewFromInt(500000)))
	assert.True(t, result.OtherExpenses.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.NetProfit.Equal(decimal.NewFromInt(490000)))

	assert.True(t, result.GrossMarginPercent.Equal(decimal.NewFromInt(60)), "gross margin: %s", result.GrossMarginPercent)
	assert.True(t, result.OperatingMarginPercent.Equal(decimal.NewFromInt(50)))
	assert.True(t, result.NetMarginPercent.Equal(decimal.NewFromInt(49)))

	require.Len(t, result.OperatingExpenseDetail, 2)
	assert.Equal(t, account.CodeRentExpense, result.OperatingExpenseDetail[0].Code)
	assert.Equal(t, account.CodeUtilitiesExpense, result.OperatingExpenseDetail[1].Code)
}

func TestBuildIncomeStatementContraRevenue(t *testing.T) {
	accounts := chartByCode()
	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	lines := []ledger.Line{
		creditLine(account.CodeSales, 1000000, ledger.TypeSale),
		debitLine(account.CodeSalesReturns, 50000, ledger.TypeAdjustment),
	}

	result := buildIncomeStatement(periodStart, periodEnd, lines, accounts)

	assert.True(t, result.Revenue.Equal(decimal.NewFromInt(950000)), "revenue net of returns: %s", result.Revenue)
}

func TestBuildIncomeStatementZeroRevenue(t *testing.T) {
	accounts := chartByCode()
	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	lines := []ledger.Line{
		debitLine(account.CodeRentExpense, 80000, ledger.TypeExpense),
	}

	result := buildIncomeStatement(periodStart, periodEnd, lines, accounts)

	assert.True(t, result.Revenue.IsZero())
	assert.True(t, result.NetProfit.Equal(decimal.NewFromInt(-80000)))
	assert.True(t, result.GrossMarginPercent.IsZero(), "margins guard division by zero")
	assert.True(t, result.NetMarginPercent.IsZero())
}

func TestBuildIncomeStatementUnknownAccountSkipped(t *testing.T) {
	accounts := chartByCode()
	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	lines := []ledger.Line{
		creditLine("NOT_ON_CHART", 500000, ledger.TypeSale),
		creditLine(account.CodeSales, 100000, ledger.TypeSale),
	}

	result := buildIncomeStatement(periodStart, periodEnd, lines, accounts)

	assert.True(t, result.Revenue.Equal(decimal.NewFromInt(100000)))
}

func withBalance(accounts map[string]account.Account, code string, v int64) {
	acc := accounts[code]
	acc.Balance = decimal.NewFromInt(v)
	accounts[code] = acc
}

func TestBuildBalanceSheetIdentity(t *testing.T) {
	accounts := chartByCode()

	// Owner funds the company, buys equipment, sells for cash, books a
	// month of depreciation.
	withBalance(accounts, account.CodeCash, 1300000)
	withBalance(accounts, account.CodeEquipment, 200000)
	withBalance(accounts, account.CodeAccumulatedDepreciation, -50000)
	withBalance(accounts, account.CodeOwnersCapital, 1000000)
	withBalance(accounts, account.CodeSales, 500000)
	withBalance(accounts, account.CodeDepreciationExpense, 50000)

	all := make([]account.Account, 0, len(accounts))
	for _, acc := range accounts {
		all = append(all, acc)
	}

	bs := buildBalanceSheet(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), all)

	assert.True(t, bs.TotalCurrentAssets.Equal(decimal.NewFromInt(1300000)))
	assert.True(t, bs.TotalFixedAssets.Equal(decimal.NewFromInt(150000)), "fixed assets net of depreciation: %s", bs.TotalFixedAssets)
	assert.True(t, bs.TotalAssets.Equal(decimal.NewFromInt(1450000)))
	assert.True(t, bs.TotalLiabilities.IsZero())
	assert.True(t, bs.RetainedEarnings.Equal(decimal.NewFromInt(450000)), "retained: %s", bs.RetainedEarnings)
	assert.True(t, bs.TotalEquity.Equal(decimal.NewFromInt(1450000)))
	assert.True(t, bs.TotalAssets.Equal(bs.LiabilitiesAndEquity), "accounting identity must hold")
}

func TestBuildBalanceSheetDrawingsReduceEquity(t *testing.T) {
	accounts := chartByCode()

	withBalance(accounts, account.CodeCash, 900000)
	withBalance(accounts, account.CodeOwnersCapital, 1000000)
	withBalance(accounts, account.CodeOwnersDrawings, -100000)

	all := make([]account.Account, 0, len(accounts))
	for _, acc := range accounts {
		all = append(all, acc)
	}

	bs := buildBalanceSheet(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), all)

	assert.True(t, bs.Drawings.Equal(decimal.NewFromInt(-100000)))
	assert.True(t, bs.TotalEquity.Equal(decimal.NewFromInt(900000)))
	assert.True(t, bs.TotalAssets.Equal(bs.LiabilitiesAndEquity))
}

func TestBuildBalanceSheetSkipsZeroBalanceItems(t *testing.T) {
	accounts := chartByCode()
	withBalance(accounts, account.CodeCash, 500000)
	withBalance(accounts, account.CodeOwnersCapital, 500000)

	all := make([]account.Account, 0, len(accounts))
	for _, acc := range accounts {
		all = append(all, acc)
	}

	bs := buildBalanceSheet(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), all)

	require.Len(t, bs.CurrentAssets, 1)
	assert.Equal(t, account.CodeCash, bs.CurrentAssets[0].Code)
	assert.Empty(t, bs.FixedAssets)
}
