package postgresql

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func accountTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func createTestCompany(t *testing.T, ctx context.Context) string {
	t.Helper()
	var companyID string
	name := fmt.Sprintf("test-co-%d", time.Now().UnixNano())
	err := testDB.QueryRow(ctx, `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, NOW(), NOW())
		RETURNING id
	`, name).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func createTestAccount(t *testing.T, ctx context.Context, repo account.AccountRepository, companyID, code string, typ account.AccountType, subType string) account.Account {
	t.Helper()
	created, err := repo.Create(ctx, account.Account{
		CompanyID: companyID,
		Code:      code,
		Name:      code,
		Type:      typ,
		SubType:   subType,
		IsActive:  true,
	})
	require.NoError(t, err)
	return created
}

func TestAccountRepository_Create_DuplicateCode(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx)
	repo := NewAccountRepository(testDB)

	createTestAccount(t, ctx, repo, companyID, "CASH", account.TypeAsset, account.SubTypeCurrentAsset)

	_, err := repo.Create(ctx, account.Account{
		CompanyID: companyID,
		Code:      "CASH",
		Name:      "Cash again",
		Type:      account.TypeAsset,
		SubType:   account.SubTypeCurrentAsset,
		IsActive:  true,
	})

	assert.ErrorIs(t, err, account.ErrAccountCodeExists)
}

func TestAccountRepository_ApplyPosting_NormalSides(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx)
	repo := NewAccountRepository(testDB)

	createTestAccount(t, ctx, repo, companyID, "CASH", account.TypeAsset, account.SubTypeCurrentAsset)
	createTestAccount(t, ctx, repo, companyID, "SALES", account.TypeIncome, account.SubTypeOperatingRevenue)

	// A debit grows an asset, a credit shrinks it.
	balance, err := repo.ApplyPosting(ctx, companyID, "CASH", decimal.NewFromInt(1000), account.SideDebit)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(1000)))

	balance, err = repo.ApplyPosting(ctx, companyID, "CASH", decimal.NewFromInt(300), account.SideCredit)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(700)))

	// Income moves the other way.
	balance, err = repo.ApplyPosting(ctx, companyID, "SALES", decimal.NewFromInt(1000), account.SideCredit)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(1000)))

	balance, err = repo.ApplyPosting(ctx, companyID, "SALES", decimal.NewFromInt(250), account.SideDebit)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(750)))
}

func TestAccountRepository_ApplyPosting_UnknownAccount(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx)
	repo := NewAccountRepository(testDB)

	_, err := repo.ApplyPosting(ctx, companyID, "NOPE", decimal.NewFromInt(100), account.SideDebit)

	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestAccountRepository_ApplyPosting_InactiveAccount(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx)
	repo := NewAccountRepository(testDB)

	createTestAccount(t, ctx, repo, companyID, "OLD_BANK", account.TypeAsset, account.SubTypeCurrentAsset)
	require.NoError(t, repo.Deactivate(ctx, companyID, "OLD_BANK"))

	_, err := repo.ApplyPosting(ctx, companyID, "OLD_BANK", decimal.NewFromInt(100), account.SideDebit)

	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestAccountRepository_ApplyPosting_InvalidSide(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	repo := NewAccountRepository(testDB)

	_, err := repo.ApplyPosting(ctx, "any", "CASH", decimal.NewFromInt(100), account.Side("sideways"))

	assert.ErrorIs(t, err, account.ErrInvalidSide)
}

func TestAccountRepository_TenantIsolation(t *testing.T) {
	accountTestInit(t)
	ctx := context.Background()
	repo := NewAccountRepository(testDB)

	companyA := createTestCompany(t, ctx)
	companyB := createTestCompany(t, ctx)
	createTestAccount(t, ctx, repo, companyA, "CASH", account.TypeAsset, account.SubTypeCurrentAsset)

	_, err := repo.GetByCode(ctx, companyB, "CASH")

	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}
