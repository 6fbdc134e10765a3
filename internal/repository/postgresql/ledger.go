package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepository{db: db}
}

const lineColumns = `id, company_id, date, transaction_type, reference_id, reference_number,
	debit_account, debit_amount, credit_account, credit_amount,
	description, created_by, approval_status, created_at`

func scanLine(row interface{ Scan(...interface{}) error }) (ledger.Line, error) {
	var l ledger.Line
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.Date, &l.TransactionType, &l.ReferenceID, &l.ReferenceNumber,
		&l.DebitAccount, &l.DebitAmount, &l.CreditAccount, &l.CreditAmount,
		&l.Description, &l.CreatedBy, &l.ApprovalStatus, &l.CreatedAt,
	)
	return l, err
}

func (r *ledgerRepository) InsertLines(ctx context.Context, lines []ledger.Line) ([]ledger.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ledger_lines (
			company_id, date, transaction_type, reference_id, reference_number,
			debit_account, debit_amount, credit_account, credit_amount,
			description, created_by, approval_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + lineColumns

	inserted := make([]ledger.Line, 0, len(lines))
	for _, l := range lines {
		row := q.QueryRow(ctx, query,
			l.CompanyID, l.Date, l.TransactionType, l.ReferenceID, l.ReferenceNumber,
			l.DebitAccount, l.DebitAmount, l.CreditAccount, l.CreditAmount,
			l.Description, l.CreatedBy, l.ApprovalStatus,
		)
		created, err := scanLine(row)
		if err != nil {
			return nil, fmt.Errorf("failed to insert ledger line: %w", err)
		}
		inserted = append(inserted, created)
	}

	return inserted, nil
}

func (r *ledgerRepository) GetByReferenceID(ctx context.Context, companyID, referenceID string) ([]ledger.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineColumns + `
		FROM ledger_lines
		WHERE company_id = $1 AND reference_id = $2
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, companyID, referenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction lines: %w", err)
	}
	defer rows.Close()

	var lines []ledger.Line
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		lines = append(lines, l)
	}

	if len(lines) == 0 {
		return nil, ledger.ErrTransactionNotFound
	}

	return lines, nil
}

func (r *ledgerRepository) ExistsByReferenceID(ctx context.Context, companyID, referenceID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM ledger_lines WHERE company_id = $1 AND reference_id = $2)`,
		companyID, referenceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}

	return exists, nil
}

func (r *ledgerRepository) Query(ctx context.Context, companyID string, filter ledger.LineFilter) ([]ledger.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineColumns + `
		FROM ledger_lines
		WHERE company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if !filter.From.IsZero() {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, filter.From)
		argIdx++
	}
	if !filter.To.IsZero() {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, filter.To)
		argIdx++
	}
	if filter.Type != nil {
		query += fmt.Sprintf(" AND transaction_type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines: %w", err)
	}
	defer rows.Close()

	var lines []ledger.Line
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, nil
}

func (r *ledgerRepository) InsertAuditRecord(ctx context.Context, record ledger.AuditRecord) error {
	q := GetQuerier(ctx, r.db)

	snapshotJSON, err := json.Marshal(record.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal audit snapshot: %w", err)
	}

	query := `
		INSERT INTO audit_records (company_id, reference_id, actor, snapshot)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, record.CompanyID, record.ReferenceID, record.Actor, snapshotJSON); err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}

	return nil
}
