package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kazi-suite/ledger-backend-go/internal/config"
	"github.com/kazi-suite/ledger-backend-go/internal/fixtures"
	appHTTP "github.com/kazi-suite/ledger-backend-go/internal/handler/http"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/jwt"
	"github.com/kazi-suite/ledger-backend-go/internal/repository/postgresql"
	accountService "github.com/kazi-suite/ledger-backend-go/internal/service/account"
	ledgerService "github.com/kazi-suite/ledger-backend-go/internal/service/ledger"
	payrollService "github.com/kazi-suite/ledger-backend-go/internal/service/payroll"
	statementService "github.com/kazi-suite/ledger-backend-go/internal/service/statement"
	taxService "github.com/kazi-suite/ledger-backend-go/internal/service/tax"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	accountRepo := postgresql.NewAccountRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	statementCacheRepo := postgresql.NewStatementCacheRepository(db)
	taxLiabilityRepo := postgresql.NewTaxLiabilityRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	taxCfg := fixtures.TaxConfigFrom(cfg.Tax)

	accountSvc := accountService.NewAccountService(db, accountRepo)
	ledgerSvc := ledgerService.NewLedgerService(db, ledgerRepo, accountRepo)
	statementSvc := statementService.NewStatementService(accountRepo, ledgerRepo, statementCacheRepo, logger)
	taxSvc := taxService.NewTaxService(taxCfg, taxLiabilityRepo, ledgerRepo, payrollRepo, statementSvc, statementCacheRepo, logger)
	payrollSvc := payrollService.NewPayrollService(db, taxCfg, payrollRepo, employeeRepo, taxLiabilityRepo, ledgerSvc)

	accountHandler := appHTTP.NewAccountHandler(accountSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	statementHandler := appHTTP.NewStatementHandler(statementSvc)
	taxHandler := appHTTP.NewTaxHandler(taxSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtService,
		accountHandler,
		ledgerHandler,
		statementHandler,
		taxHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
