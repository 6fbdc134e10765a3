package ledger

import (
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// buildLines turns caller entries into ledger lines and enforces the
// double-entry rules: every entry carries exactly one positive side and
// the debit and credit totals match. Pure; no I/O.
func buildLines(
	companyID, userID string,
	txType ledger.TransactionType,
	referenceID, referenceNumber string,
	date time.Time,
	entries []ledger.Entry,
	description string,
) ([]ledger.Line, decimal.Decimal, decimal.Decimal, error) {
	if len(entries) == 0 {
		return nil, decimal.Zero, decimal.Zero, ledger.ErrEmptyTransaction
	}

	lines := make([]ledger.Line, 0, len(entries))
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, entry := range entries {
		hasDebit := entry.Debit != nil
		hasCredit := entry.Credit != nil
		if hasDebit == hasCredit {
			return nil, decimal.Zero, decimal.Zero, ledger.ErrLineBothSides
		}

		line := ledger.Line{
			CompanyID:       companyID,
			Date:            date,
			TransactionType: txType,
			ReferenceID:     referenceID,
			ReferenceNumber: referenceNumber,
			Description:     description,
			CreatedBy:       userID,
			ApprovalStatus:  ledger.ApprovalApproved,
		}

		acct := entry.Account
		if hasDebit {
			if !entry.Debit.IsPositive() {
				return nil, decimal.Zero, decimal.Zero, ledger.ErrNonPositiveAmount
			}
			line.DebitAccount = &acct
			line.DebitAmount = *entry.Debit
			totalDebit = totalDebit.Add(*entry.Debit)
		} else {
			if !entry.Credit.IsPositive() {
				return nil, decimal.Zero, decimal.Zero, ledger.ErrNonPositiveAmount
			}
			line.CreditAccount = &acct
			line.CreditAmount = *entry.Credit
			totalCredit = totalCredit.Add(*entry.Credit)
		}

		lines = append(lines, line)
	}

	if !totalDebit.Equal(totalCredit) {
		return nil, decimal.Zero, decimal.Zero, ledger.ErrUnbalancedTransaction
	}

	return lines, totalDebit, totalCredit, nil
}

// auditSnapshot flattens posted lines for the append-only audit trail.
func auditSnapshot(lines []ledger.Line) []ledger.AuditLine {
	snapshot := make([]ledger.AuditLine, 0, len(lines))
	for _, l := range lines {
		side := "credit"
		if l.IsDebit() {
			side = "debit"
		}
		snapshot = append(snapshot, ledger.AuditLine{
			Account: l.Account(),
			Side:    side,
			Amount:  l.Amount(),
		})
	}
	return snapshot
}
