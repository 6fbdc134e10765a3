package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/fixtures"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/jwt"
	"github.com/kazi-suite/ledger-backend-go/internal/repository/postgresql"
)

type AccountServiceImpl struct {
	db          *database.DB
	accountRepo account.AccountRepository
}

func NewAccountService(
	db *database.DB,
	accountRepo account.AccountRepository,
) account.AccountService {
	return &AccountServiceImpl{
		db:          db,
		accountRepo: accountRepo,
	}
}

func (s *AccountServiceImpl) InitializeChart(ctx context.Context) (account.InitializeChartResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return account.InitializeChartResponse{}, err
	}

	count, err := s.accountRepo.CountByCompanyID(ctx, companyID)
	if err != nil {
		return account.InitializeChartResponse{}, err
	}
	if count > 0 {
		return account.InitializeChartResponse{AlreadySeeded: true}, nil
	}

	defaults := fixtures.DefaultChartOfAccounts(companyID)

	created := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, acc := range defaults {
			if _, err := s.accountRepo.Create(txCtx, acc); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		// Another request seeded the same company first.
		if errors.Is(err, account.ErrAccountCodeExists) {
			return account.InitializeChartResponse{AlreadySeeded: true}, nil
		}
		return account.InitializeChartResponse{}, err
	}

	return account.InitializeChartResponse{AccountsCreated: created}, nil
}

func (s *AccountServiceImpl) CreateAccount(ctx context.Context, req account.CreateAccountRequest) (account.AccountResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return account.AccountResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return account.AccountResponse{}, err
	}

	created, err := s.accountRepo.Create(ctx, account.Account{
		CompanyID: companyID,
		Code:      req.Code,
		Name:      req.Name,
		Type:      account.AccountType(req.Type),
		SubType:   req.SubType,
		IsActive:  true,
	})
	if err != nil {
		return account.AccountResponse{}, err
	}

	return toAccountResponse(created), nil
}

func (s *AccountServiceImpl) GetBalance(ctx context.Context, code string) (account.BalanceResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return account.BalanceResponse{}, err
	}

	acc, err := s.accountRepo.GetByCode(ctx, companyID, code)
	if err != nil {
		return account.BalanceResponse{}, err
	}

	return account.BalanceResponse{Code: acc.Code, Balance: acc.Balance}, nil
}

func (s *AccountServiceImpl) ListAccounts(ctx context.Context, activeOnly bool) ([]account.AccountResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListByCompanyID(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]account.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, toAccountResponse(acc))
	}

	return responses, nil
}

func (s *AccountServiceImpl) DeactivateAccount(ctx context.Context, code string) error {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.accountRepo.Deactivate(ctx, companyID, code)
}

func toAccountResponse(acc account.Account) account.AccountResponse {
	return account.AccountResponse{
		ID:       acc.ID,
		Code:     acc.Code,
		Name:     acc.Name,
		Type:     string(acc.Type),
		SubType:  acc.SubType,
		Balance:  acc.Balance,
		IsActive: acc.IsActive,
	}
}
