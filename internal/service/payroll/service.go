package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/employee"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/database"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/jwt"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
	"github.com/kazi-suite/ledger-backend-go/internal/repository/postgresql"
	taxcalc "github.com/kazi-suite/ledger-backend-go/internal/service/tax"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db            *database.DB
	taxCfg        tax.Config
	payrollRepo   payroll.PayrollRepository
	employeeRepo  employee.EmployeeRepository
	liabilityRepo tax.LiabilityRepository
	ledgerSvc     ledger.LedgerService
}

func NewPayrollService(
	db *database.DB,
	taxCfg tax.Config,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	liabilityRepo tax.LiabilityRepository,
	ledgerSvc ledger.LedgerService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:            db,
		taxCfg:        taxCfg,
		payrollRepo:   payrollRepo,
		employeeRepo:  employeeRepo,
		liabilityRepo: liabilityRepo,
		ledgerSvc:     ledgerSvc,
	}
}

func (s *PayrollServiceImpl) GenerateBatch(ctx context.Context, req payroll.GenerateBatchRequest) (payroll.BatchResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payroll.BatchResponse{}, err
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)

	if _, err := s.payrollRepo.GetBatchByPeriod(ctx, companyID, periodStart, periodEnd); err == nil {
		return payroll.BatchResponse{}, payroll.ErrBatchAlreadyExists
	} else if !errors.Is(err, payroll.ErrBatchNotFound) {
		return payroll.BatchResponse{}, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	adjustments := make(map[string]payroll.EmployeeAdjustment, len(req.Adjustments))
	for _, adj := range req.Adjustments {
		adjustments[adj.EmployeeID] = adj
	}

	var calcs []payroll.Calculation
	for _, emp := range employees {
		if emp.BaseSalary == nil || !emp.BaseSalary.IsPositive() {
			continue
		}
		adj := adjustments[emp.ID]
		calc, err := calculateEmployeePayroll(emp, adj.Allowances, adj.OtherDeductions, s.taxCfg)
		if err != nil {
			return payroll.BatchResponse{}, fmt.Errorf("payroll for employee %s: %w", emp.ID, err)
		}
		calcs = append(calcs, calc)
	}
	if len(calcs) == 0 {
		return payroll.BatchResponse{}, payroll.ErrNoPayableEmployees
	}

	batch := payroll.Batch{
		CompanyID:         companyID,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		EmployeeCount:     len(calcs),
		TotalGross:        decimal.Zero,
		TotalPAYE:         decimal.Zero,
		TotalEmployeeNSSF: decimal.Zero,
		TotalEmployerNSSF: decimal.Zero,
		TotalDeductions:   decimal.Zero,
		TotalNet:          decimal.Zero,
		TotalEmployerCost: decimal.Zero,
		Status:            payroll.StatusDraft,
	}
	for _, c := range calcs {
		batch.TotalGross = batch.TotalGross.Add(c.GrossPay)
		batch.TotalPAYE = batch.TotalPAYE.Add(c.PAYETax)
		batch.TotalEmployeeNSSF = batch.TotalEmployeeNSSF.Add(c.EmployeeContribution)
		batch.TotalEmployerNSSF = batch.TotalEmployerNSSF.Add(c.EmployerContribution)
		batch.TotalDeductions = batch.TotalDeductions.Add(c.PAYETax).Add(c.EmployeeContribution).Add(c.OtherDeductions)
		batch.TotalNet = batch.TotalNet.Add(c.NetPay)
		batch.TotalEmployerCost = batch.TotalEmployerCost.Add(c.EmployerCost)
	}

	var createdBatch payroll.Batch
	var createdRecords []payroll.Record

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdBatch, err = s.payrollRepo.CreateBatch(txCtx, batch)
		if err != nil {
			return err
		}

		records := make([]payroll.Record, 0, len(calcs))
		for _, c := range calcs {
			records = append(records, payroll.Record{
				BatchID:              createdBatch.ID,
				CompanyID:            companyID,
				EmployeeID:           c.EmployeeID,
				PeriodStart:          periodStart,
				PeriodEnd:            periodEnd,
				GrossPay:             c.GrossPay,
				Allowances:           c.Allowances,
				PAYETax:              c.PAYETax,
				EmployeeContribution: c.EmployeeContribution,
				EmployerContribution: c.EmployerContribution,
				OtherDeductions:      c.OtherDeductions,
				NetPay:               c.NetPay,
				EmployerCost:         c.EmployerCost,
				Status:               payroll.StatusDraft,
			})
		}

		createdRecords, err = s.payrollRepo.CreateRecords(txCtx, records)
		return err
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return toBatchResponse(createdBatch, createdRecords), nil
}

func (s *PayrollServiceImpl) GetBatch(ctx context.Context, batchID string) (payroll.BatchResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	batch, err := s.payrollRepo.GetBatchByID(ctx, batchID, companyID)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	records, _, err := s.payrollRepo.ListRecords(ctx, companyID, payroll.RecordFilter{BatchID: &batchID})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return toBatchResponse(batch, records), nil
}

// ProcessBatch approves a draft batch in one atomic unit: record and
// batch statuses move to approved, the payroll transaction posts to the
// ledger and the PAYE and NSSF liabilities are recognized.
func (s *PayrollServiceImpl) ProcessBatch(ctx context.Context, batchID string) (payroll.BatchResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	batch, err := s.payrollRepo.GetBatchByID(ctx, batchID, companyID)
	if err != nil {
		return payroll.BatchResponse{}, err
	}
	if batch.Status != payroll.StatusDraft {
		return payroll.BatchResponse{}, payroll.ErrBatchNotDraft
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.payrollRepo.UpdateBatchStatus(txCtx, batchID, companyID, payroll.StatusDraft, payroll.StatusApproved); err != nil {
			return err
		}

		records, _, err := s.payrollRepo.ListRecords(txCtx, companyID, payroll.RecordFilter{BatchID: &batchID})
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(records))
		for _, rec := range records {
			ids = append(ids, rec.ID)
		}
		if err := s.payrollRepo.UpdateRecordsStatus(txCtx, ids, companyID, payroll.StatusDraft, payroll.StatusApproved); err != nil {
			return err
		}

		otherDeductions := batch.TotalDeductions.Sub(batch.TotalPAYE).Sub(batch.TotalEmployeeNSSF)
		_, err = s.ledgerSvc.RecordPayroll(txCtx, ledger.RecordPayrollRequest{
			ID:              "payroll-" + batchID,
			Date:            batch.PeriodEnd.Format(time.DateOnly),
			GrossPay:        batch.TotalGross,
			PAYE:            batch.TotalPAYE,
			EmployeeNSSF:    batch.TotalEmployeeNSSF,
			EmployerNSSF:    batch.TotalEmployerNSSF,
			OtherDeductions: otherDeductions,
			Description:     fmt.Sprintf("Payroll %s to %s", batch.PeriodStart.Format(time.DateOnly), batch.PeriodEnd.Format(time.DateOnly)),
		})
		if err != nil {
			return err
		}

		dueDate := taxcalc.FilingDueDate(batch.PeriodEnd)
		if batch.TotalPAYE.IsPositive() {
			if _, err := s.liabilityRepo.Create(txCtx, tax.Liability{
				CompanyID:   companyID,
				TaxType:     tax.TypePAYE,
				Base:        batch.TotalGross,
				Amount:      batch.TotalPAYE,
				PeriodStart: batch.PeriodStart,
				PeriodEnd:   batch.PeriodEnd,
				DueDate:     dueDate,
				Status:      tax.StatusPending,
			}); err != nil {
				return err
			}
		}
		totalNSSF := batch.TotalEmployeeNSSF.Add(batch.TotalEmployerNSSF)
		if totalNSSF.IsPositive() {
			if _, err := s.liabilityRepo.Create(txCtx, tax.Liability{
				CompanyID:   companyID,
				TaxType:     tax.TypeNSSF,
				Base:        batch.TotalGross,
				Amount:      totalNSSF,
				PeriodStart: batch.PeriodStart,
				PeriodEnd:   batch.PeriodEnd,
				DueDate:     dueDate,
				Status:      tax.StatusPending,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return s.GetBatch(ctx, batchID)
}

func (s *PayrollServiceImpl) MarkAsPaid(ctx context.Context, req payroll.MarkAsPaidRequest) (int, error) {
	companyID, userID, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return 0, err
	}

	if err := req.Validate(); err != nil {
		return 0, err
	}

	paymentDate, _ := validator.IsValidDate(req.PaymentDate)

	// One transaction around check and update: the update's approved-only
	// filter re-checks the status, and a count mismatch rolls the whole
	// selection back rather than paying a subset.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		records, err := s.payrollRepo.GetRecordsByIDs(txCtx, req.PayrollIDs, companyID)
		if err != nil {
			return err
		}
		if len(records) != len(req.PayrollIDs) {
			return payroll.ErrRecordNotFound
		}
		for _, rec := range records {
			if rec.Status != payroll.StatusApproved {
				return payroll.ErrRecordNotApproved
			}
		}

		return s.payrollRepo.MarkRecordsPaid(txCtx, req.PayrollIDs, companyID, userID, paymentDate, req.PaymentMethod)
	})
	if err != nil {
		return 0, err
	}

	return len(req.PayrollIDs), nil
}

func (s *PayrollServiceImpl) History(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordsResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListRecordsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.payrollRepo.ListRecords(ctx, companyID, filter)
	if err != nil {
		return payroll.ListRecordsResponse{}, err
	}

	data := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toRecordResponse(rec))
	}

	return payroll.ListRecordsResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) Summary(ctx context.Context, periodStart, periodEnd time.Time) (payroll.SummaryResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	if periodEnd.Before(periodStart) {
		return payroll.SummaryResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	records, _, err := s.payrollRepo.ListRecords(ctx, companyID, payroll.RecordFilter{
		PeriodStart: &periodStart,
		PeriodEnd:   &periodEnd,
	})
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary := payroll.SummaryResponse{
		PeriodStart:       periodStart.Format(time.DateOnly),
		PeriodEnd:         periodEnd.Format(time.DateOnly),
		EmployeeCount:     len(records),
		TotalGross:        decimal.Zero,
		TotalPAYE:         decimal.Zero,
		TotalNSSF:         decimal.Zero,
		TotalNet:          decimal.Zero,
		TotalEmployerCost: decimal.Zero,
	}
	for _, rec := range records {
		summary.TotalGross = summary.TotalGross.Add(rec.GrossPay)
		summary.TotalPAYE = summary.TotalPAYE.Add(rec.PAYETax)
		summary.TotalNSSF = summary.TotalNSSF.Add(rec.EmployeeContribution).Add(rec.EmployerContribution)
		summary.TotalNet = summary.TotalNet.Add(rec.NetPay)
		summary.TotalEmployerCost = summary.TotalEmployerCost.Add(rec.EmployerCost)

		switch rec.Status {
		case payroll.StatusDraft:
			summary.DraftCount++
		case payroll.StatusApproved:
			summary.ApprovedCount++
		case payroll.StatusPaid:
			summary.PaidCount++
		}
	}

	return summary, nil
}

func toRecordResponse(rec payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:                   rec.ID,
		BatchID:              rec.BatchID,
		EmployeeID:           rec.EmployeeID,
		PeriodStart:          rec.PeriodStart.Format(time.DateOnly),
		PeriodEnd:            rec.PeriodEnd.Format(time.DateOnly),
		GrossPay:             rec.GrossPay,
		Allowances:           rec.Allowances,
		PAYETax:              rec.PAYETax,
		EmployeeContribution: rec.EmployeeContribution,
		EmployerContribution: rec.EmployerContribution,
		OtherDeductions:      rec.OtherDeductions,
		NetPay:               rec.NetPay,
		EmployerCost:         rec.EmployerCost,
		Status:               string(rec.Status),
		PaymentMethod:        rec.PaymentMethod,
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.EmployeeCode != nil {
		resp.EmployeeCode = *rec.EmployeeCode
	}
	if rec.PaidAt != nil {
		paidAt := rec.PaidAt.Format(time.DateOnly)
		resp.PaidAt = &paidAt
	}
	return resp
}

func toBatchResponse(batch payroll.Batch, records []payroll.Record) payroll.BatchResponse {
	resp := payroll.BatchResponse{
		ID:                batch.ID,
		PeriodStart:       batch.PeriodStart.Format(time.DateOnly),
		PeriodEnd:         batch.PeriodEnd.Format(time.DateOnly),
		EmployeeCount:     batch.EmployeeCount,
		TotalGross:        batch.TotalGross,
		TotalPAYE:         batch.TotalPAYE,
		TotalEmployeeNSSF: batch.TotalEmployeeNSSF,
		TotalEmployerNSSF: batch.TotalEmployerNSSF,
		TotalDeductions:   batch.TotalDeductions,
		TotalNet:          batch.TotalNet,
		TotalEmployerCost: batch.TotalEmployerCost,
		Status:            string(batch.Status),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	return resp
}
