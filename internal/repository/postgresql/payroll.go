package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const batchColumns = `id, company_id, period_start, period_end, employee_count,
	total_gross, total_paye, total_employee_nssf, total_employer_nssf,
	total_deductions, total_net, total_employer_cost, status, created_at, updated_at`

func scanBatch(row interface{ Scan(...interface{}) error }) (payroll.Batch, error) {
	var b payroll.Batch
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.PeriodStart, &b.PeriodEnd, &b.EmployeeCount,
		&b.TotalGross, &b.TotalPAYE, &b.TotalEmployeeNSSF, &b.TotalEmployerNSSF,
		&b.TotalDeductions, &b.TotalNet, &b.TotalEmployerCost, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *payrollRepository) CreateBatch(ctx context.Context, batch payroll.Batch) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_batches (
			company_id, period_start, period_end, employee_count,
			total_gross, total_paye, total_employee_nssf, total_employer_nssf,
			total_deductions, total_net, total_employer_cost, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + batchColumns

	created, err := scanBatch(q.QueryRow(ctx, query,
		batch.CompanyID, batch.PeriodStart, batch.PeriodEnd, batch.EmployeeCount,
		batch.TotalGross, batch.TotalPAYE, batch.TotalEmployeeNSSF, batch.TotalEmployerNSSF,
		batch.TotalDeductions, batch.TotalNet, batch.TotalEmployerCost, batch.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_batch_company_period") {
			return payroll.Batch{}, payroll.ErrBatchAlreadyExists
		}
		return payroll.Batch{}, fmt.Errorf("failed to create payroll batch: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetBatchByID(ctx context.Context, id, companyID string) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + batchColumns + `
		FROM payroll_batches
		WHERE id = $1 AND company_id = $2
	`

	batch, err := scanBatch(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Batch{}, payroll.ErrBatchNotFound
		}
		return payroll.Batch{}, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	return batch, nil
}

func (r *payrollRepository) GetBatchByPeriod(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + batchColumns + `
		FROM payroll_batches
		WHERE company_id = $1 AND period_start = $2 AND period_end = $3
	`

	batch, err := scanBatch(q.QueryRow(ctx, query, companyID, periodStart, periodEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Batch{}, payroll.ErrBatchNotFound
		}
		return payroll.Batch{}, fmt.Errorf("failed to get payroll batch by period: %w", err)
	}

	return batch, nil
}

// UpdateBatchStatus moves a batch forward only when it is still in the
// expected state, so two concurrent approvals cannot both succeed.
func (r *payrollRepository) UpdateBatchStatus(ctx context.Context, id, companyID string, from, to payroll.PayrollStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_batches SET status = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, from, to).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrBatchNotDraft
		}
		return fmt.Errorf("failed to update batch status: %w", err)
	}

	return nil
}

const recordColumns = `pr.id, pr.batch_id, pr.company_id, pr.employee_id, pr.period_start, pr.period_end,
	pr.gross_pay, pr.allowances, pr.paye_tax, pr.employee_contribution, pr.employer_contribution,
	pr.other_deductions, pr.net_pay, pr.employer_cost, pr.status,
	pr.paid_at, pr.paid_by, pr.payment_method, pr.created_at, pr.updated_at,
	e.full_name, e.employee_code`

func scanRecord(row interface{ Scan(...interface{}) error }) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.BatchID, &rec.CompanyID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.GrossPay, &rec.Allowances, &rec.PAYETax, &rec.EmployeeContribution, &rec.EmployerContribution,
		&rec.OtherDeductions, &rec.NetPay, &rec.EmployerCost, &rec.Status,
		&rec.PaidAt, &rec.PaidBy, &rec.PaymentMethod, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	return rec, err
}

func (r *payrollRepository) CreateRecords(ctx context.Context, records []payroll.Record) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			batch_id, company_id, employee_id, period_start, period_end,
			gross_pay, allowances, paye_tax, employee_contribution, employer_contribution,
			other_deductions, net_pay, employer_cost, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, batch_id, company_id, employee_id, period_start, period_end,
			gross_pay, allowances, paye_tax, employee_contribution, employer_contribution,
			other_deductions, net_pay, employer_cost, status,
			paid_at, paid_by, payment_method, created_at, updated_at
	`

	created := make([]payroll.Record, 0, len(records))
	for _, rec := range records {
		row := q.QueryRow(ctx, query,
			rec.BatchID, rec.CompanyID, rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd,
			rec.GrossPay, rec.Allowances, rec.PAYETax, rec.EmployeeContribution, rec.EmployerContribution,
			rec.OtherDeductions, rec.NetPay, rec.EmployerCost, rec.Status,
		)
		var out payroll.Record
		err := row.Scan(
			&out.ID, &out.BatchID, &out.CompanyID, &out.EmployeeID, &out.PeriodStart, &out.PeriodEnd,
			&out.GrossPay, &out.Allowances, &out.PAYETax, &out.EmployeeContribution, &out.EmployerContribution,
			&out.OtherDeductions, &out.NetPay, &out.EmployerCost, &out.Status,
			&out.PaidAt, &out.PaidBy, &out.PaymentMethod, &out.CreatedAt, &out.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create payroll record: %w", err)
		}
		created = append(created, out)
	}

	return created, nil
}

func (r *payrollRepository) ListRecords(ctx context.Context, companyID string, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE pr.company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.BatchID != nil {
		where += fmt.Sprintf(" AND pr.batch_id = $%d", argIdx)
		args = append(args, *filter.BatchID)
		argIdx++
	}
	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.PeriodStart != nil {
		where += fmt.Sprintf(" AND pr.period_start >= $%d", argIdx)
		args = append(args, *filter.PeriodStart)
		argIdx++
	}
	if filter.PeriodEnd != nil {
		where += fmt.Sprintf(" AND pr.period_end <= $%d", argIdx)
		args = append(args, *filter.PeriodEnd)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payroll_records pr" + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := `
		SELECT ` + recordColumns + `
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
	` + where + " ORDER BY pr.period_start DESC, e.full_name"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

func (r *payrollRepository) GetRecordsByIDs(ctx context.Context, ids []string, companyID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.id = ANY($1) AND pr.company_id = $2
	`

	rows, err := q.Query(ctx, query, ids, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *payrollRepository) UpdateRecordsStatus(ctx context.Context, ids []string, companyID string, from, to payroll.PayrollStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records SET status = $4, updated_at = NOW()
		WHERE id = ANY($1) AND company_id = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, ids, companyID, from, to)
	if err != nil {
		return fmt.Errorf("failed to update record status: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return payroll.ErrRecordNotFound
	}

	return nil
}

func (r *payrollRepository) MarkRecordsPaid(ctx context.Context, ids []string, companyID string, paidBy string, paymentDate time.Time, method string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'paid', paid_at = $4, paid_by = $5, payment_method = $6, updated_at = NOW()
		WHERE id = ANY($1) AND company_id = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, ids, companyID, payroll.StatusApproved, paymentDate, paidBy, method)
	if err != nil {
		return fmt.Errorf("failed to mark records paid: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return payroll.ErrRecordNotApproved
	}

	return nil
}

func (r *payrollRepository) GetTaxTotals(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (payroll.TaxTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(gross_pay), 0),
			COALESCE(SUM(paye_tax), 0),
			COALESCE(SUM(employee_contribution), 0),
			COALESCE(SUM(employer_contribution), 0)
		FROM payroll_records
		WHERE company_id = $1 AND period_start >= $2 AND period_end <= $3
	`

	var totals payroll.TaxTotals
	err := q.QueryRow(ctx, query, companyID, periodStart, periodEnd).Scan(
		&totals.TotalGross, &totals.TotalPAYE, &totals.TotalEmployeeNSSF, &totals.TotalEmployerNSSF,
	)
	if err != nil {
		return payroll.TaxTotals{}, fmt.Errorf("failed to get payroll tax totals: %w", err)
	}

	return totals, nil
}
