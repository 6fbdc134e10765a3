package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/handler/http/middleware"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	accountHandler AccountHandler,
	ledgerHandler LedgerHandler,
	statementHandler StatementHandler,
	taxHandler TaxHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kazi-ledger"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/initialize", accountHandler.InitializeChart)
				r.Post("/", accountHandler.Create)
				r.Get("/", accountHandler.List)
				r.Get("/{code}/balance", accountHandler.GetBalance)
				r.Delete("/{code}", accountHandler.Deactivate)
			})

			r.Route("/ledger", func(r chi.Router) {
				r.Post("/transactions", ledgerHandler.PostTransaction)
				r.Get("/transactions/{referenceID}", ledgerHandler.GetTransaction)
				r.Get("/lines", ledgerHandler.QueryLines)
				r.Post("/sales", ledgerHandler.RecordSale)
				r.Post("/purchases", ledgerHandler.RecordPurchase)
				r.Post("/expenses", ledgerHandler.RecordExpense)
			})

			r.Route("/statements", func(r chi.Router) {
				r.Get("/income", statementHandler.IncomeStatement)
				r.Get("/balance-sheet", statementHandler.BalanceSheet)
				r.Get("/cached", statementHandler.GetCached)
			})

			r.Route("/taxes", func(r chi.Router) {
				r.Get("/vat", taxHandler.CalculateVAT)
				r.Post("/vat", taxHandler.RecordVAT)
				r.Get("/payroll", taxHandler.PayrollTaxes)
				r.Get("/annual-return", taxHandler.AnnualReturn)
				r.Get("/summary", taxHandler.Summary)
				r.Get("/liabilities", taxHandler.ListLiabilities)
				r.Patch("/liabilities/{liabilityID}/status", taxHandler.UpdateLiabilityStatus)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/batches", payrollHandler.GenerateBatch)
				r.Get("/batches/{batchID}", payrollHandler.GetBatch)
				r.Post("/batches/{batchID}/process", payrollHandler.ProcessBatch)
				r.Post("/mark-paid", payrollHandler.MarkAsPaid)
				r.Get("/records", payrollHandler.History)
				r.Get("/summary", payrollHandler.Summary)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "route not found", http.StatusNotFound)
	})

	return r
}
