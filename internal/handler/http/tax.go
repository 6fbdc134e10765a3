package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/kazi-suite/ledger-backend-go/internal/handler/http/response"
)

type TaxHandler interface {
	CalculateVAT(w http.ResponseWriter, r *http.Request)
	RecordVAT(w http.ResponseWriter, r *http.Request)
	PayrollTaxes(w http.ResponseWriter, r *http.Request)
	AnnualReturn(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ListLiabilities(w http.ResponseWriter, r *http.Request)
	UpdateLiabilityStatus(w http.ResponseWriter, r *http.Request)
}

type taxHandlerImpl struct {
	taxService tax.TaxService
}

func NewTaxHandler(taxService tax.TaxService) TaxHandler {
	return &taxHandlerImpl{taxService: taxService}
}

func parsePeriod(r *http.Request) (time.Time, time.Time, bool) {
	q := r.URL.Query()
	periodStart, errStart := time.Parse(time.DateOnly, q.Get("period_start"))
	periodEnd, errEnd := time.Parse(time.DateOnly, q.Get("period_end"))
	return periodStart, periodEnd, errStart == nil && errEnd == nil
}

func (h *taxHandlerImpl) CalculateVAT(w http.ResponseWriter, r *http.Request) {
	periodStart, periodEnd, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "period_start and period_end must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.taxService.CalculateVAT(r.Context(), periodStart, periodEnd, false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) RecordVAT(w http.ResponseWriter, r *http.Request) {
	periodStart, periodEnd, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "period_start and period_end must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.taxService.CalculateVAT(r.Context(), periodStart, periodEnd, true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "VAT return recorded", result)
}

func (h *taxHandlerImpl) PayrollTaxes(w http.ResponseWriter, r *http.Request) {
	periodStart, periodEnd, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "period_start and period_end must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.taxService.CalculatePayrollTaxes(r.Context(), periodStart, periodEnd)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) AnnualReturn(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "year must be a four-digit year", nil)
		return
	}

	result, err := h.taxService.AnnualReturn(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.taxService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) ListLiabilities(w http.ResponseWriter, r *http.Request) {
	var status *tax.LiabilityStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := tax.LiabilityStatus(v)
		switch s {
		case tax.StatusPending, tax.StatusFiled, tax.StatusPaid:
			status = &s
		default:
			response.BadRequest(w, "status must be pending, filed or paid", nil)
			return
		}
	}

	result, err := h.taxService.ListLiabilities(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) UpdateLiabilityStatus(w http.ResponseWriter, r *http.Request) {
	var req tax.UpdateLiabilityStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "liabilityID")

	result, err := h.taxService.UpdateLiabilityStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
