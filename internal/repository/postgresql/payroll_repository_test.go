package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, ctx context.Context, companyID, code string, salary int64) string {
	t.Helper()
	var id string
	err := testDB.QueryRow(ctx, `
		INSERT INTO employees (id, company_id, employee_code, full_name, base_salary, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, true, NOW(), NOW())
		RETURNING id
	`, companyID, code, "Test "+code, decimal.NewFromInt(salary)).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestPayroll(t *testing.T, ctx context.Context, repo payroll.PayrollRepository, companyID string, employeeIDs []string) []payroll.Record {
	t.Helper()
	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	batch, err := repo.CreateBatch(ctx, payroll.Batch{
		CompanyID:         companyID,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		EmployeeCount:     len(employeeIDs),
		TotalGross:        decimal.NewFromInt(900000),
		TotalPAYE:         decimal.NewFromInt(26500),
		TotalEmployeeNSSF: decimal.NewFromInt(45000),
		TotalEmployerNSSF: decimal.NewFromInt(90000),
		TotalDeductions:   decimal.NewFromInt(71500),
		TotalNet:          decimal.NewFromInt(828500),
		TotalEmployerCost: decimal.NewFromInt(990000),
		Status:            payroll.StatusDraft,
	})
	require.NoError(t, err)

	records := make([]payroll.Record, 0, len(employeeIDs))
	for _, empID := range employeeIDs {
		records = append(records, payroll.Record{
			BatchID:              batch.ID,
			CompanyID:            companyID,
			EmployeeID:           empID,
			PeriodStart:          periodStart,
			PeriodEnd:            periodEnd,
			GrossPay:             decimal.NewFromInt(450000),
			Allowances:           decimal.Zero,
			PAYETax:              decimal.NewFromInt(13250),
			EmployeeContribution: decimal.NewFromInt(22500),
			EmployerContribution: decimal.NewFromInt(45000),
			OtherDeductions:      decimal.Zero,
			NetPay:               decimal.NewFromInt(414250),
			EmployerCost:         decimal.NewFromInt(495000),
			Status:               payroll.StatusDraft,
		})
	}
	created, err := repo.CreateRecords(ctx, records)
	require.NoError(t, err)
	require.Len(t, created, len(employeeIDs))
	return created
}

func TestPayrollRepository_MarkRecordsPaid(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx)
	repo := NewPayrollRepository(testDB)

	empA := createTestEmployee(t, ctx, companyID, "E001", 450000)
	empB := createTestEmployee(t, ctx, companyID, "E002", 450000)
	records := createTestPayroll(t, ctx, repo, companyID, []string{empA, empB})

	ids := []string{records[0].ID, records[1].ID}
	require.NoError(t, repo.UpdateRecordsStatus(ctx, ids, companyID, payroll.StatusDraft, payroll.StatusApproved))

	payday := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkRecordsPaid(ctx, ids, companyID, "user-1", payday, "bank_transfer"))

	after, err := repo.GetRecordsByIDs(ctx, ids, companyID)
	require.NoError(t, err)
	for _, rec := range after {
		assert.Equal(t, payroll.StatusPaid, rec.Status)
		require.NotNil(t, rec.PaidAt)
		require.NotNil(t, rec.PaymentMethod)
		assert.Equal(t, "bank_transfer", *rec.PaymentMethod)
	}
}

func TestPayrollRepository_MarkRecordsPaid_RollsBackOnMismatch(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx)
	repo := NewPayrollRepository(testDB)

	empA := createTestEmployee(t, ctx, companyID, "E003", 450000)
	empB := createTestEmployee(t, ctx, companyID, "E004", 450000)
	records := createTestPayroll(t, ctx, repo, companyID, []string{empA, empB})

	// Approve only the first record; the second stays draft, as if a
	// concurrent caller moved it after the selection was made.
	require.NoError(t, repo.UpdateRecordsStatus(ctx, []string{records[0].ID}, companyID, payroll.StatusDraft, payroll.StatusApproved))

	ids := []string{records[0].ID, records[1].ID}
	payday := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	err := WithTransaction(ctx, testDB, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return repo.MarkRecordsPaid(txCtx, ids, companyID, "user-1", payday, "bank_transfer")
	})
	assert.ErrorIs(t, err, payroll.ErrRecordNotApproved)

	// The rollback must leave the approved record unpaid; a partial
	// payment would strand it in paid with the call reported as failed.
	after, err := repo.GetRecordsByIDs(ctx, ids, companyID)
	require.NoError(t, err)
	require.Len(t, after, 2)
	for _, rec := range after {
		assert.NotEqual(t, payroll.StatusPaid, rec.Status)
		assert.Nil(t, rec.PaidAt)
	}
}
