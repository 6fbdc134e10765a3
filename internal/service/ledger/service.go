package ledger

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/jwt"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
	"github.com/kazi-suite/ledger-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type LedgerServiceImpl struct {
	db          *database.DB
	ledgerRepo  ledger.LedgerRepository
	accountRepo account.AccountRepository
}

func NewLedgerService(
	db *database.DB,
	ledgerRepo ledger.LedgerRepository,
	accountRepo account.AccountRepository,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		db:          db,
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

func (s *LedgerServiceImpl) PostTransaction(ctx context.Context, req ledger.PostTransactionRequest) (ledger.TransactionResponse, error) {
	companyID, userID, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return ledger.TransactionResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	lines, _, _, err := buildLines(
		companyID, userID,
		ledger.TransactionType(req.Type),
		req.ReferenceID, req.ReferenceNumber,
		date, req.Entries, req.Description,
	)
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	var posted []ledger.Line
	alreadyPosted := false

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.ledgerRepo.ExistsByReferenceID(txCtx, companyID, req.ReferenceID)
		if err != nil {
			return err
		}
		if exists {
			alreadyPosted = true
			posted, err = s.ledgerRepo.GetByReferenceID(txCtx, companyID, req.ReferenceID)
			return err
		}

		codes := make([]string, 0, len(lines))
		for _, l := range lines {
			codes = append(codes, l.Account())
		}
		accounts, err := s.accountRepo.GetByCodes(txCtx, companyID, codes)
		if err != nil {
			return err
		}
		for _, code := range codes {
			acc, ok := accounts[code]
			if !ok {
				return account.ErrAccountNotFound
			}
			if !acc.IsActive {
				return account.ErrAccountInactive
			}
		}

		posted, err = s.ledgerRepo.InsertLines(txCtx, lines)
		if err != nil {
			return err
		}

		for _, l := range posted {
			side := account.SideCredit
			if l.IsDebit() {
				side = account.SideDebit
			}
			if _, err := s.accountRepo.ApplyPosting(txCtx, companyID, l.Account(), l.Amount(), side); err != nil {
				return err
			}
		}

		return s.ledgerRepo.InsertAuditRecord(txCtx, ledger.AuditRecord{
			CompanyID:   companyID,
			ReferenceID: req.ReferenceID,
			Actor:       userID,
			Snapshot:    auditSnapshot(posted),
		})
	})
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	resp := toTransactionResponse(posted)
	resp.AlreadyPosted = alreadyPosted
	return resp, nil
}

func (s *LedgerServiceImpl) GetTransaction(ctx context.Context, referenceID string) (ledger.TransactionResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	lines, err := s.ledgerRepo.GetByReferenceID(ctx, companyID, referenceID)
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	return toTransactionResponse(lines), nil
}

func (s *LedgerServiceImpl) QueryLines(ctx context.Context, req ledger.QueryLinesRequest) ([]ledger.LineResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := s.ledgerRepo.Query(ctx, companyID, ledger.LineFilter{
		From: req.From,
		To:   req.To,
		Type: req.Type,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.LineResponse, 0, len(lines))
	for _, l := range lines {
		responses = append(responses, toLineResponse(l))
	}

	return responses, nil
}

func toLineResponse(l ledger.Line) ledger.LineResponse {
	return ledger.LineResponse{
		ID:              l.ID,
		Date:            l.Date.Format(time.DateOnly),
		TransactionType: string(l.TransactionType),
		ReferenceID:     l.ReferenceID,
		ReferenceNumber: l.ReferenceNumber,
		DebitAccount:    l.DebitAccount,
		DebitAmount:     l.DebitAmount,
		CreditAccount:   l.CreditAccount,
		CreditAmount:    l.CreditAmount,
		Description:     l.Description,
		CreatedBy:       l.CreatedBy,
		ApprovalStatus:  string(l.ApprovalStatus),
	}
}

func toTransactionResponse(lines []ledger.Line) ledger.TransactionResponse {
	resp := ledger.TransactionResponse{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	if len(lines) > 0 {
		first := lines[0]
		resp.ReferenceID = first.ReferenceID
		resp.ReferenceNumber = first.ReferenceNumber
		resp.Type = string(first.TransactionType)
		resp.Date = first.Date.Format(time.DateOnly)
	}

	for _, l := range lines {
		resp.Lines = append(resp.Lines, toLineResponse(l))
		resp.TotalDebit = resp.TotalDebit.Add(l.DebitAmount)
		resp.TotalCredit = resp.TotalCredit.Add(l.CreditAmount)
	}

	return resp
}
