package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/kazi-suite/ledger-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GenerateBatch(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ProcessBatch(w http.ResponseWriter, r *http.Request)
	MarkAsPaid(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GenerateBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll batch generated", result)
}

func (h *payrollHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")

	result, err := h.payrollService.GetBatch(r.Context(), batchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")

	result, err := h.payrollService.ProcessBatch(r.Context(), batchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll batch processed", result)
}

func (h *payrollHandlerImpl) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	var req payroll.MarkAsPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	count, err := h.payrollService.MarkAsPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll records marked as paid", map[string]int{"updated": count})
}

func (h *payrollHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	var filter payroll.RecordFilter

	q := r.URL.Query()
	if v := q.Get("batch_id"); v != "" {
		filter.BatchID = &v
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		s := payroll.PayrollStatus(v)
		switch s {
		case payroll.StatusDraft, payroll.StatusApproved, payroll.StatusPaid:
			filter.Status = &s
		default:
			response.BadRequest(w, "status must be draft, approved or paid", nil)
			return
		}
	}
	if v := q.Get("period_start"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			response.BadRequest(w, "period_start must be YYYY-MM-DD", nil)
			return
		}
		filter.PeriodStart = &t
	}
	if v := q.Get("period_end"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			response.BadRequest(w, "period_end must be YYYY-MM-DD", nil)
			return
		}
		filter.PeriodEnd = &t
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.payrollService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	periodStart, periodEnd, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "period_start and period_end must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.payrollService.Summary(r.Context(), periodStart, periodEnd)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
