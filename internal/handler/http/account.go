package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/handler/http/response"
)

type AccountHandler interface {
	InitializeChart(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type accountHandlerImpl struct {
	accountService account.AccountService
}

func NewAccountHandler(accountService account.AccountService) AccountHandler {
	return &accountHandlerImpl{accountService: accountService}
}

func (h *accountHandlerImpl) InitializeChart(w http.ResponseWriter, r *http.Request) {
	result, err := h.accountService.InitializeChart(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.AlreadySeeded {
		response.Success(w, result)
		return
	}
	response.Created(w, "Chart of accounts initialized", result)
}

func (h *accountHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req account.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.accountService.CreateAccount(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created", result)
}

func (h *accountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.accountService.ListAccounts(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *accountHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result, err := h.accountService.GetBalance(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *accountHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.accountService.DeactivateAccount(r.Context(), code); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deactivated", nil)
}
