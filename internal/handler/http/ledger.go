package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	PostTransaction(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	QueryLines(w http.ResponseWriter, r *http.Request)
	RecordSale(w http.ResponseWriter, r *http.Request)
	RecordPurchase(w http.ResponseWriter, r *http.Request)
	RecordExpense(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{ledgerService: ledgerService}
}

func (h *ledgerHandlerImpl) PostTransaction(w http.ResponseWriter, r *http.Request) {
	var req ledger.PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.PostTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.AlreadyPosted {
		response.Success(w, result)
		return
	}
	response.Created(w, "Transaction posted", result)
}

func (h *ledgerHandlerImpl) GetTransaction(w http.ResponseWriter, r *http.Request) {
	referenceID := chi.URLParam(r, "referenceID")

	result, err := h.ledgerService.GetTransaction(r.Context(), referenceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) QueryLines(w http.ResponseWriter, r *http.Request) {
	var req ledger.QueryLinesRequest

	q := r.URL.Query()
	if v := q.Get("from"); v != "" {
		from, err := time.Parse(time.DateOnly, v)
		if err != nil {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return
		}
		req.From = from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(time.DateOnly, v)
		if err != nil {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return
		}
		req.To = to
	}
	if v := q.Get("type"); v != "" {
		t := ledger.TransactionType(v)
		if !t.Valid() {
			response.BadRequest(w, "unknown transaction type", nil)
			return
		}
		req.Type = &t
	}

	result, err := h.ledgerService.QueryLines(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req ledger.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.RecordSale(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale recorded", result)
}

func (h *ledgerHandlerImpl) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req ledger.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.RecordPurchase(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Purchase recorded", result)
}

func (h *ledgerHandlerImpl) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var req ledger.RecordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.RecordExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense recorded", result)
}
