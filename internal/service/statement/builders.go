package statement

import (
	"sort"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/statement"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// buildIncomeStatement aggregates period ledger lines by the account
// classification. Contra-revenue accounts accumulate debits and reduce
// revenue without special casing. Pure; no I/O.
func buildIncomeStatement(
	periodStart, periodEnd time.Time,
	lines []ledger.Line,
	accounts map[string]account.Account,
) statement.IncomeStatement {
	revenue := decimal.Zero
	cogs := decimal.Zero
	otherExpenses := decimal.Zero
	opexByCode := make(map[string]decimal.Decimal)

	for _, l := range lines {
		acc, ok := accounts[l.Account()]
		if !ok {
			continue
		}

		// Net movement on the account's normal side.
		amount := l.Amount()
		if (acc.Type.NormalSide() == account.SideDebit) != l.IsDebit() {
			amount = amount.Neg()
		}

		switch {
		case acc.Type == account.TypeIncome:
			revenue = revenue.Add(amount)
		case acc.SubType == account.SubTypeCostOfSales:
			cogs = cogs.Add(amount)
		case acc.SubType == account.SubTypeOperatingExpense:
			opexByCode[acc.Code] = opexByCode[acc.Code].Add(amount)
		case acc.SubType == account.SubTypeFinanceExpense:
			otherExpenses = otherExpenses.Add(amount)
		}
	}

	opexTotal := decimal.Zero
	var opexDetail []statement.LineItem
	for code, amount := range opexByCode {
		if amount.IsZero() {
			continue
		}
		opexTotal = opexTotal.Add(amount)
		opexDetail = append(opexDetail, statement.LineItem{
			Code:   code,
			Name:   accounts[code].Name,
			Amount: amount,
		})
	}
	sort.Slice(opexDetail, func(i, j int) bool { return opexDetail[i].Code < opexDetail[j].Code })

	grossProfit := revenue.Sub(cogs)
	operatingProfit := grossProfit.Sub(opexTotal)
	netProfit := operatingProfit.Sub(otherExpenses)

	margin := func(profit decimal.Decimal) decimal.Decimal {
		if revenue.IsZero() {
			return decimal.Zero
		}
		return profit.Div(revenue).Mul(hundred).Round(2)
	}

	return statement.IncomeStatement{
		PeriodStart:            periodStart.Format(time.DateOnly),
		PeriodEnd:              periodEnd.Format(time.DateOnly),
		Revenue:                revenue,
		CostOfGoodsSold:        cogs,
		GrossProfit:            grossProfit,
		OperatingExpenses:      opexTotal,
		OperatingExpenseDetail: opexDetail,
		OperatingProfit:        operatingProfit,
		OtherExpenses:          otherExpenses,
		NetProfit:              netProfit,
		GrossMarginPercent:     margin(grossProfit),
		OperatingMarginPercent: margin(operatingProfit),
		NetMarginPercent:       margin(netProfit),
	}
}

// buildBalanceSheet groups current account balances. Balances are signed
// on the account's normal side, so accumulated depreciation nets against
// fixed assets and drawings against equity without adjustment, and assets
// equal liabilities plus equity whenever only balanced transactions have
// posted. Current-period income and expense balances fold into retained
// earnings. Pure; no I/O.
func buildBalanceSheet(asOf time.Time, accounts []account.Account) statement.BalanceSheet {
	bs := statement.BalanceSheet{AsOfDate: asOf.Format(time.DateOnly)}

	bs.TotalCurrentAssets = decimal.Zero
	bs.TotalFixedAssets = decimal.Zero
	bs.TotalCurrentLiab = decimal.Zero
	bs.TotalLongTermLiab = decimal.Zero
	bs.Capital = decimal.Zero
	bs.Drawings = decimal.Zero
	bs.RetainedEarnings = decimal.Zero

	item := func(acc account.Account) statement.LineItem {
		return statement.LineItem{Code: acc.Code, Name: acc.Name, Amount: acc.Balance}
	}

	for _, acc := range accounts {
		switch acc.SubType {
		case account.SubTypeCurrentAsset:
			bs.TotalCurrentAssets = bs.TotalCurrentAssets.Add(acc.Balance)
			if !acc.Balance.IsZero() {
				bs.CurrentAssets = append(bs.CurrentAssets, item(acc))
			}
		case account.SubTypeFixedAsset:
			bs.TotalFixedAssets = bs.TotalFixedAssets.Add(acc.Balance)
			if !acc.Balance.IsZero() {
				bs.FixedAssets = append(bs.FixedAssets, item(acc))
			}
		case account.SubTypeCurrentLiability:
			bs.TotalCurrentLiab = bs.TotalCurrentLiab.Add(acc.Balance)
			if !acc.Balance.IsZero() {
				bs.CurrentLiabilities = append(bs.CurrentLiabilities, item(acc))
			}
		case account.SubTypeLongTermLiability:
			bs.TotalLongTermLiab = bs.TotalLongTermLiab.Add(acc.Balance)
			if !acc.Balance.IsZero() {
				bs.LongTermLiabilities = append(bs.LongTermLiabilities, item(acc))
			}
		case account.SubTypeCapital:
			bs.Capital = bs.Capital.Add(acc.Balance)
		case account.SubTypeDrawings:
			bs.Drawings = bs.Drawings.Add(acc.Balance)
		case account.SubTypeRetainedEarnings:
			bs.RetainedEarnings = bs.RetainedEarnings.Add(acc.Balance)
		default:
			switch acc.Type {
			case account.TypeIncome:
				bs.RetainedEarnings = bs.RetainedEarnings.Add(acc.Balance)
			case account.TypeExpense:
				bs.RetainedEarnings = bs.RetainedEarnings.Sub(acc.Balance)
			}
		}
	}

	bs.TotalAssets = bs.TotalCurrentAssets.Add(bs.TotalFixedAssets)
	bs.TotalLiabilities = bs.TotalCurrentLiab.Add(bs.TotalLongTermLiab)
	bs.TotalEquity = bs.Capital.Add(bs.Drawings).Add(bs.RetainedEarnings)
	bs.LiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity)

	return bs
}
