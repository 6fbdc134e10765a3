package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType labels the business event a transaction records.
type TransactionType string

const (
	TypeSale       TransactionType = "sale"
	TypePurchase   TransactionType = "purchase"
	TypeExpense    TransactionType = "expense"
	TypePayroll    TransactionType = "payroll"
	TypeTransfer   TransactionType = "transfer"
	TypeAdjustment TransactionType = "adjustment"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeSale, TypePurchase, TypeExpense, TypePayroll, TypeTransfer, TypeAdjustment:
		return true
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalPending  ApprovalStatus = "pending"
)

// Line is one debit or credit against one account. Lines are immutable
// once written; corrections are new adjustment transactions.
type Line struct {
	ID              string
	CompanyID       string
	Date            time.Time
	TransactionType TransactionType
	ReferenceID     string
	ReferenceNumber string
	DebitAccount    *string
	DebitAmount     decimal.Decimal
	CreditAccount   *string
	CreditAmount    decimal.Decimal
	Description     string
	CreatedBy       string
	ApprovalStatus  ApprovalStatus
	CreatedAt       time.Time
}

// IsDebit reports whether the line carries the debit side.
func (l Line) IsDebit() bool {
	return l.DebitAccount != nil
}

// Account returns whichever account the line posts against.
func (l Line) Account() string {
	if l.DebitAccount != nil {
		return *l.DebitAccount
	}
	if l.CreditAccount != nil {
		return *l.CreditAccount
	}
	return ""
}

// Amount returns the populated side's amount.
func (l Line) Amount() decimal.Decimal {
	if l.DebitAccount != nil {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// Transaction is the set of lines sharing one reference ID, together
// recording one business event. Sum of debits equals sum of credits.
type Transaction struct {
	ReferenceID     string
	ReferenceNumber string
	Type            TransactionType
	Date            time.Time
	Lines           []Line
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
}

// AuditRecord snapshots a posted transaction: who posted it and the lines
// as written. Append-only.
type AuditRecord struct {
	ID          string
	CompanyID   string
	ReferenceID string
	Actor       string
	Snapshot    []AuditLine
	CreatedAt   time.Time
}

// AuditLine is the persisted snapshot of one line inside an audit record.
type AuditLine struct {
	Account string          `json:"account"`
	Side    string          `json:"side"`
	Amount  decimal.Decimal `json:"amount"`
}
