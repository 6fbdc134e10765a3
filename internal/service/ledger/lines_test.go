package ledger

import (
	"testing"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testDate() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestBuildLinesBalanced(t *testing.T) {
	entries := []ledger.Entry{
		{Account: "CASH", Debit: amount(118000)},
		{Account: "SALES", Credit: amount(118000)},
	}

	lines, totalDebit, totalCredit, err := buildLines(
		"co-1", "user-1", ledger.TypeSale, "sale-001", "INV-42", testDate(), entries, "June sale",
	)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, totalDebit.Equal(decimal.NewFromInt(118000)))
	assert.True(t, totalCredit.Equal(decimal.NewFromInt(118000)))

	assert.Equal(t, "CASH", lines[0].Account())
	assert.True(t, lines[0].IsDebit())
	assert.Equal(t, "SALES", lines[1].Account())
	assert.False(t, lines[1].IsDebit())

	for _, l := range lines {
		assert.Equal(t, "co-1", l.CompanyID)
		assert.Equal(t, "user-1", l.CreatedBy)
		assert.Equal(t, "sale-001", l.ReferenceID)
		assert.Equal(t, ledger.ApprovalApproved, l.ApprovalStatus)
	}
}

func TestBuildLinesMultiLeg(t *testing.T) {
	entries := []ledger.Entry{
		{Account: "SALARY_EXPENSE", Debit: amount(1100000)},
		{Account: "CASH", Credit: amount(748000)},
		{Account: "PAYE_PAYABLE", Credit: amount(202000)},
		{Account: "NSSF_PAYABLE", Credit: amount(150000)},
	}

	lines, totalDebit, totalCredit, err := buildLines(
		"co-1", "user-1", ledger.TypePayroll, "payroll-06", "", testDate(), entries, "",
	)

	require.NoError(t, err)
	assert.Len(t, lines, 4)
	assert.True(t, totalDebit.Equal(totalCredit))
}

func TestBuildLinesUnbalanced(t *testing.T) {
	entries := []ledger.Entry{
		{Account: "CASH", Debit: amount(100000)},
		{Account: "SALES", Credit: amount(99999)},
	}

	_, _, _, err := buildLines("co-1", "user-1", ledger.TypeSale, "sale-002", "", testDate(), entries, "")

	assert.ErrorIs(t, err, ledger.ErrUnbalancedTransaction)
}

func TestBuildLinesEmpty(t *testing.T) {
	_, _, _, err := buildLines("co-1", "user-1", ledger.TypeSale, "sale-003", "", testDate(), nil, "")

	assert.ErrorIs(t, err, ledger.ErrEmptyTransaction)
}

func TestBuildLinesBothSides(t *testing.T) {
	entries := []ledger.Entry{
		{Account: "CASH", Debit: amount(100), Credit: amount(100)},
		{Account: "SALES", Credit: amount(100)},
	}

	_, _, _, err := buildLines("co-1", "user-1", ledger.TypeSale, "sale-004", "", testDate(), entries, "")

	assert.ErrorIs(t, err, ledger.ErrLineBothSides)
}

func TestBuildLinesNoSide(t *testing.T) {
	entries := []ledger.Entry{
		{Account: "CASH"},
		{Account: "SALES", Credit: amount(100)},
	}

	_, _, _, err := buildLines("co-1", "user-1", ledger.TypeSale, "sale-005", "", testDate(), entries, "")

	assert.ErrorIs(t, err, ledger.ErrLineBothSides)
}

func TestBuildLinesNonPositiveAmount(t *testing.T) {
	entries := []ledger.Entry{
		{Account: "CASH", Debit: amount(0)},
		{Account: "SALES", Credit: amount(0)},
	}

	_, _, _, err := buildLines("co-1", "user-1", ledger.TypeSale, "sale-006", "", testDate(), entries, "")

	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)

	entries[0].Debit = amount(-500)
	_, _, _, err = buildLines("co-1", "user-1", ledger.TypeSale, "sale-006", "", testDate(), entries, "")

	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)
}

func TestAuditSnapshot(t *testing.T) {
	entries := []ledger.Entry{
		{Account: "CASH", Debit: amount(500)},
		{Account: "SALES", Credit: amount(500)},
	}
	lines, _, _, err := buildLines("co-1", "user-1", ledger.TypeSale, "sale-007", "", testDate(), entries, "")
	require.NoError(t, err)

	snapshot := auditSnapshot(lines)

	require.Len(t, snapshot, 2)
	assert.Equal(t, ledger.AuditLine{Account: "CASH", Side: "debit", Amount: decimal.NewFromInt(500)}, snapshot[0])
	assert.Equal(t, ledger.AuditLine{Account: "SALES", Side: "credit", Amount: decimal.NewFromInt(500)}, snapshot[1])
}
