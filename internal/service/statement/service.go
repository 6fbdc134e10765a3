package statement

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/statement"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/jwt"
)

type StatementServiceImpl struct {
	accountRepo account.AccountRepository
	ledgerRepo  ledger.LedgerRepository
	cacheRepo   statement.CacheRepository
	logger      *slog.Logger
}

func NewStatementService(
	accountRepo account.AccountRepository,
	ledgerRepo ledger.LedgerRepository,
	cacheRepo statement.CacheRepository,
	logger *slog.Logger,
) statement.StatementService {
	return &StatementServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

func (s *StatementServiceImpl) IncomeStatement(ctx context.Context, periodStart, periodEnd time.Time, refresh bool) (statement.IncomeStatement, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return statement.IncomeStatement{}, err
	}
	if periodEnd.Before(periodStart) {
		return statement.IncomeStatement{}, statement.ErrInvalidPeriod
	}

	if !refresh {
		var cached statement.IncomeStatement
		if ok := s.readCache(ctx, companyID, statement.TypeIncomeStatement, periodStart, periodEnd, &cached); ok {
			return cached, nil
		}
	}

	lines, err := s.ledgerRepo.Query(ctx, companyID, ledger.LineFilter{From: periodStart, To: periodEnd})
	if err != nil {
		return statement.IncomeStatement{}, err
	}

	accounts, err := s.accountMap(ctx, companyID)
	if err != nil {
		return statement.IncomeStatement{}, err
	}

	result := buildIncomeStatement(periodStart, periodEnd, lines, accounts)
	s.writeCache(ctx, companyID, statement.TypeIncomeStatement, periodStart, periodEnd, result)

	return result, nil
}

func (s *StatementServiceImpl) BalanceSheet(ctx context.Context, asOf time.Time) (statement.BalanceSheet, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return statement.BalanceSheet{}, err
	}

	accounts, err := s.accountRepo.ListByCompanyID(ctx, companyID, false)
	if err != nil {
		return statement.BalanceSheet{}, err
	}

	result := buildBalanceSheet(asOf, accounts)
	s.writeCache(ctx, companyID, statement.TypeBalanceSheet, asOf, asOf, result)

	return result, nil
}

func (s *StatementServiceImpl) GetCached(ctx context.Context, statementType statement.StatementType, periodStart, periodEnd time.Time) (statement.CachedStatementResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return statement.CachedStatementResponse{}, err
	}

	entry, err := s.cacheRepo.Get(ctx, companyID, statementType, periodStart, periodEnd)
	if err != nil {
		return statement.CachedStatementResponse{}, err
	}

	return statement.CachedStatementResponse{
		Type:        string(entry.Type),
		PeriodStart: entry.PeriodStart.Format(time.DateOnly),
		PeriodEnd:   entry.PeriodEnd.Format(time.DateOnly),
		GeneratedAt: entry.GeneratedAt.Format(time.RFC3339),
		Statement:   entry.Payload,
	}, nil
}

func (s *StatementServiceImpl) accountMap(ctx context.Context, companyID string) (map[string]account.Account, error) {
	accounts, err := s.accountRepo.ListByCompanyID(ctx, companyID, false)
	if err != nil {
		return nil, err
	}

	m := make(map[string]account.Account, len(accounts))
	for _, acc := range accounts {
		m[acc.Code] = acc
	}
	return m, nil
}

// readCache loads a cached snapshot into v. Any cache failure degrades to
// regeneration; the ledger is always the source of truth.
func (s *StatementServiceImpl) readCache(ctx context.Context, companyID string, t statement.StatementType, periodStart, periodEnd time.Time, v interface{}) bool {
	entry, err := s.cacheRepo.Get(ctx, companyID, t, periodStart, periodEnd)
	if err != nil {
		if !errors.Is(err, statement.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "statement cache read failed", "type", t, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(entry.Payload, v); err != nil {
		s.logger.WarnContext(ctx, "statement cache payload corrupt", "type", t, "error", err)
		return false
	}

	return true
}

// writeCache stores a generated snapshot. Failures are logged, never
// surfaced; the statement was already computed.
func (s *StatementServiceImpl) writeCache(ctx context.Context, companyID string, t statement.StatementType, periodStart, periodEnd time.Time, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.WarnContext(ctx, "statement cache marshal failed", "type", t, "error", err)
		return
	}

	err = s.cacheRepo.Upsert(ctx, statement.CacheEntry{
		CompanyID:   companyID,
		Type:        t,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Payload:     payload,
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "statement cache write failed", "type", t, "error", err)
	}
}
