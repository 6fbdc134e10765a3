package statement

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// StatementType keys the cache together with the tenant and period.
type StatementType string

const (
	TypeIncomeStatement StatementType = "income_statement"
	TypeBalanceSheet    StatementType = "balance_sheet"
	TypeAnnualTaxReturn StatementType = "annual_tax_return"
)

func (t StatementType) Valid() bool {
	switch t {
	case TypeIncomeStatement, TypeBalanceSheet, TypeAnnualTaxReturn:
		return true
	}
	return false
}

// IncomeStatement is a flow report derived from a date-ranged ledger scan.
// All figures are period totals, margins are percentages of revenue.
type IncomeStatement struct {
	PeriodStart            string          `json:"period_start"`
	PeriodEnd              string          `json:"period_end"`
	Revenue                decimal.Decimal `json:"revenue"`
	CostOfGoodsSold        decimal.Decimal `json:"cost_of_goods_sold"`
	GrossProfit            decimal.Decimal `json:"gross_profit"`
	OperatingExpenses      decimal.Decimal `json:"operating_expenses"`
	OperatingExpenseDetail []LineItem      `json:"operating_expense_detail"`
	OperatingProfit        decimal.Decimal `json:"operating_profit"`
	OtherExpenses          decimal.Decimal `json:"other_expenses"`
	NetProfit              decimal.Decimal `json:"net_profit"`
	GrossMarginPercent     decimal.Decimal `json:"gross_margin_percent"`
	OperatingMarginPercent decimal.Decimal `json:"operating_margin_percent"`
	NetMarginPercent       decimal.Decimal `json:"net_margin_percent"`
}

// LineItem is one named figure inside a statement section.
type LineItem struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BalanceSheet is a stock report read from current account balances, not a
// ledger scan. Assets equal liabilities plus equity whenever only balanced
// transactions have been posted.
type BalanceSheet struct {
	AsOfDate             string          `json:"as_of_date"`
	CurrentAssets        []LineItem      `json:"current_assets"`
	TotalCurrentAssets   decimal.Decimal `json:"total_current_assets"`
	FixedAssets          []LineItem      `json:"fixed_assets"`
	TotalFixedAssets     decimal.Decimal `json:"total_fixed_assets"`
	TotalAssets          decimal.Decimal `json:"total_assets"`
	CurrentLiabilities   []LineItem      `json:"current_liabilities"`
	TotalCurrentLiab     decimal.Decimal `json:"total_current_liabilities"`
	LongTermLiabilities  []LineItem      `json:"long_term_liabilities"`
	TotalLongTermLiab    decimal.Decimal `json:"total_long_term_liabilities"`
	TotalLiabilities     decimal.Decimal `json:"total_liabilities"`
	Capital              decimal.Decimal `json:"capital"`
	Drawings             decimal.Decimal `json:"drawings"`
	RetainedEarnings     decimal.Decimal `json:"retained_earnings"`
	TotalEquity          decimal.Decimal `json:"total_equity"`
	LiabilitiesAndEquity decimal.Decimal `json:"liabilities_and_equity"`
}

// CacheEntry is one generated snapshot. Disposable: safe to regenerate or
// evict at any time, last write wins.
type CacheEntry struct {
	CompanyID   string
	Type        StatementType
	PeriodStart time.Time
	PeriodEnd   time.Time
	Payload     []byte
	GeneratedAt time.Time
}

// CachedStatementResponse wraps a stored snapshot as-is, without decoding
// it into the statement's concrete shape.
type CachedStatementResponse struct {
	Type        string          `json:"type"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	GeneratedAt string          `json:"generated_at"`
	Statement   json.RawMessage `json:"statement"`
}
