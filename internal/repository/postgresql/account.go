package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, acc account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (company_id, code, name, type, sub_type, balance, is_active)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING id, company_id, code, name, type, sub_type, balance, is_active, created_at, updated_at
	`

	var created account.Account
	err := q.QueryRow(ctx, query,
		acc.CompanyID, acc.Code, acc.Name, acc.Type, acc.SubType, acc.IsActive,
	).Scan(
		&created.ID, &created.CompanyID, &created.Code, &created.Name, &created.Type,
		&created.SubType, &created.Balance, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_account_company_code") {
			return account.Account{}, account.ErrAccountCodeExists
		}
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return created, nil
}

func (r *accountRepository) GetByCode(ctx context.Context, companyID, code string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, code, name, type, sub_type, balance, is_active, created_at, updated_at
		FROM accounts
		WHERE company_id = $1 AND code = $2
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, companyID, code).Scan(
		&acc.ID, &acc.CompanyID, &acc.Code, &acc.Name, &acc.Type,
		&acc.SubType, &acc.Balance, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return acc, nil
}

func (r *accountRepository) GetByCodes(ctx context.Context, companyID string, codes []string) (map[string]account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, code, name, type, sub_type, balance, is_active, created_at, updated_at
		FROM accounts
		WHERE company_id = $1 AND code = ANY($2)
	`

	rows, err := q.Query(ctx, query, companyID, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts by codes: %w", err)
	}
	defer rows.Close()

	result := make(map[string]account.Account, len(codes))
	for rows.Next() {
		var acc account.Account
		if err := rows.Scan(
			&acc.ID, &acc.CompanyID, &acc.Code, &acc.Name, &acc.Type,
			&acc.SubType, &acc.Balance, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		result[acc.Code] = acc
	}

	return result, nil
}

func (r *accountRepository) ListByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, code, name, type, sub_type, balance, is_active, created_at, updated_at
		FROM accounts
		WHERE company_id = $1
	`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY type, code"

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		var acc account.Account
		if err := rows.Scan(
			&acc.ID, &acc.CompanyID, &acc.Code, &acc.Name, &acc.Type,
			&acc.SubType, &acc.Balance, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}

func (r *accountRepository) CountByCompanyID(ctx context.Context, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	return count, nil
}

// ApplyPosting is the single sanctioned balance mutation. The sign of the
// delta is resolved inside the UPDATE from the account's normal side, so
// the whole read-modify-write collapses into one atomic statement and
// concurrent postings serialize on the row without lost updates.
func (r *accountRepository) ApplyPosting(ctx context.Context, companyID, code string, amount decimal.Decimal, side account.Side) (decimal.Decimal, error) {
	if side != account.SideDebit && side != account.SideCredit {
		return decimal.Zero, account.ErrInvalidSide
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET balance = balance + CASE
				WHEN (type IN ('ASSET', 'EXPENSE')) = ($3 = 'debit') THEN $4::numeric
				ELSE -$4::numeric
			END,
			updated_at = NOW()
		WHERE company_id = $1 AND code = $2 AND is_active = true
		RETURNING balance
	`

	var balance decimal.Decimal
	err := q.QueryRow(ctx, query, companyID, code, string(side), amount).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, account.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to apply posting: %w", err)
	}

	return balance, nil
}

func (r *accountRepository) Deactivate(ctx context.Context, companyID, code string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts SET is_active = false, updated_at = NOW()
		WHERE company_id = $1 AND code = $2
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, companyID, code).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	return nil
}
