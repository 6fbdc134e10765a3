package http

import (
	"net/http"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/statement"
	"github.com/kazi-suite/ledger-backend-go/internal/handler/http/response"
)

type StatementHandler interface {
	IncomeStatement(w http.ResponseWriter, r *http.Request)
	BalanceSheet(w http.ResponseWriter, r *http.Request)
	GetCached(w http.ResponseWriter, r *http.Request)
}

type statementHandlerImpl struct {
	statementService statement.StatementService
}

func NewStatementHandler(statementService statement.StatementService) StatementHandler {
	return &statementHandlerImpl{statementService: statementService}
}

func (h *statementHandlerImpl) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	periodStart, err := time.Parse(time.DateOnly, q.Get("period_start"))
	if err != nil {
		response.BadRequest(w, "period_start must be YYYY-MM-DD", nil)
		return
	}
	periodEnd, err := time.Parse(time.DateOnly, q.Get("period_end"))
	if err != nil {
		response.BadRequest(w, "period_end must be YYYY-MM-DD", nil)
		return
	}
	refresh := q.Get("refresh") == "true"

	result, err := h.statementService.IncomeStatement(r.Context(), periodStart, periodEnd, refresh)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statementHandlerImpl) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now().UTC()
	if v := r.URL.Query().Get("as_of"); v != "" {
		parsed, err := time.Parse(time.DateOnly, v)
		if err != nil {
			response.BadRequest(w, "as_of must be YYYY-MM-DD", nil)
			return
		}
		asOf = parsed
	}

	result, err := h.statementService.BalanceSheet(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statementHandlerImpl) GetCached(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	statementType := statement.StatementType(q.Get("type"))
	if !statementType.Valid() {
		response.BadRequest(w, "type must be income_statement, balance_sheet or annual_tax_return", nil)
		return
	}
	periodStart, err := time.Parse(time.DateOnly, q.Get("period_start"))
	if err != nil {
		response.BadRequest(w, "period_start must be YYYY-MM-DD", nil)
		return
	}
	periodEnd, err := time.Parse(time.DateOnly, q.Get("period_end"))
	if err != nil {
		response.BadRequest(w, "period_end must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.statementService.GetCached(r.Context(), statementType, periodStart, periodEnd)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
