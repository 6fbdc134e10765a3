package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type taxLiabilityRepository struct {
	db *database.DB
}

func NewTaxLiabilityRepository(db *database.DB) tax.LiabilityRepository {
	return &taxLiabilityRepository{db: db}
}

const liabilityColumns = `id, company_id, tax_type, rate, base_amount, amount,
	period_start, period_end, due_date, status, created_at, updated_at`

func scanLiability(row interface{ Scan(...interface{}) error }) (tax.Liability, error) {
	var l tax.Liability
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.TaxType, &l.Rate, &l.Base, &l.Amount,
		&l.PeriodStart, &l.PeriodEnd, &l.DueDate, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *taxLiabilityRepository) Create(ctx context.Context, liability tax.Liability) (tax.Liability, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_liabilities (
			company_id, tax_type, rate, base_amount, amount,
			period_start, period_end, due_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + liabilityColumns

	created, err := scanLiability(q.QueryRow(ctx, query,
		liability.CompanyID, liability.TaxType, liability.Rate, liability.Base, liability.Amount,
		liability.PeriodStart, liability.PeriodEnd, liability.DueDate, liability.Status,
	))
	if err != nil {
		return tax.Liability{}, fmt.Errorf("failed to create tax liability: %w", err)
	}

	return created, nil
}

func (r *taxLiabilityRepository) GetByID(ctx context.Context, id, companyID string) (tax.Liability, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + liabilityColumns + `
		FROM tax_liabilities
		WHERE id = $1 AND company_id = $2
	`

	liability, err := scanLiability(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return tax.Liability{}, tax.ErrLiabilityNotFound
		}
		return tax.Liability{}, fmt.Errorf("failed to get tax liability: %w", err)
	}

	return liability, nil
}

func (r *taxLiabilityRepository) ListByCompanyID(ctx context.Context, companyID string, status *tax.LiabilityStatus) ([]tax.Liability, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + liabilityColumns + `
		FROM tax_liabilities
		WHERE company_id = $1
	`
	args := []interface{}{companyID}

	if status != nil {
		query += " AND status = $2"
		args = append(args, *status)
	}

	query += " ORDER BY due_date, created_at"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax liabilities: %w", err)
	}
	defer rows.Close()

	var liabilities []tax.Liability
	for rows.Next() {
		l, err := scanLiability(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax liability: %w", err)
		}
		liabilities = append(liabilities, l)
	}

	return liabilities, nil
}

func (r *taxLiabilityRepository) SumPendingByType(ctx context.Context, companyID string) (map[tax.TaxType]decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tax_type, COALESCE(SUM(amount), 0)
		FROM tax_liabilities
		WHERE company_id = $1 AND status = 'pending'
		GROUP BY tax_type
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pending liabilities: %w", err)
	}
	defer rows.Close()

	sums := make(map[tax.TaxType]decimal.Decimal)
	for rows.Next() {
		var taxType tax.TaxType
		var total decimal.Decimal
		if err := rows.Scan(&taxType, &total); err != nil {
			return nil, fmt.Errorf("failed to scan liability sum: %w", err)
		}
		sums[taxType] = total
	}

	return sums, nil
}

func (r *taxLiabilityRepository) UpdateStatus(ctx context.Context, id, companyID string, status tax.LiabilityStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tax_liabilities SET status = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tax.ErrLiabilityNotFound
		}
		return fmt.Errorf("failed to update liability status: %w", err)
	}

	return nil
}
