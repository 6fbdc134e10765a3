package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account on the chart of accounts.
type AccountType string

const (
	TypeAsset     AccountType = "ASSET"
	TypeLiability AccountType = "LIABILITY"
	TypeEquity    AccountType = "EQUITY"
	TypeIncome    AccountType = "INCOME"
	TypeExpense   AccountType = "EXPENSE"
)

// Side is the debit/credit direction of a posting.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// NormalSide returns the side that increases balances of this type.
// Assets and expenses grow on debit; liabilities, equity and income on credit.
func (t AccountType) NormalSide() Side {
	switch t {
	case TypeAsset, TypeExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense:
		return true
	}
	return false
}

// Sub-type classifications used by the balance sheet grouping.
const (
	SubTypeCurrentAsset      = "CURRENT_ASSET"
	SubTypeFixedAsset        = "FIXED_ASSET"
	SubTypeCurrentLiability  = "CURRENT_LIABILITY"
	SubTypeLongTermLiability = "LONG_TERM_LIABILITY"
	SubTypeCapital           = "CAPITAL"
	SubTypeDrawings          = "DRAWINGS"
	SubTypeRetainedEarnings  = "RETAINED_EARNINGS"
	SubTypeOperatingRevenue  = "OPERATING_REVENUE"
	SubTypeContraRevenue     = "CONTRA_REVENUE"
	SubTypeCostOfSales       = "COST_OF_SALES"
	SubTypeOperatingExpense  = "OPERATING_EXPENSE"
	SubTypeFinanceExpense    = "FINANCE_EXPENSE"
)

// Account is one entry on a tenant's chart of accounts. Balance always
// equals the cumulative net effect of all ledger postings since creation;
// the only mutation path is ApplyPosting.
type Account struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	Type      AccountType
	SubType   string
	Balance   decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
