package tax

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/statement"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
)

type TaxServiceImpl struct {
	cfg           tax.Config
	liabilityRepo tax.LiabilityRepository
	ledgerRepo    ledger.LedgerRepository
	payrollRepo   payroll.PayrollRepository
	statementSvc  statement.StatementService
	cacheRepo     statement.CacheRepository
	logger        *slog.Logger
}

func NewTaxService(
	cfg tax.Config,
	liabilityRepo tax.LiabilityRepository,
	ledgerRepo ledger.LedgerRepository,
	payrollRepo payroll.PayrollRepository,
	statementSvc statement.StatementService,
	cacheRepo statement.CacheRepository,
	logger *slog.Logger,
) tax.TaxService {
	return &TaxServiceImpl{
		cfg:           cfg,
		liabilityRepo: liabilityRepo,
		ledgerRepo:    ledgerRepo,
		payrollRepo:   payrollRepo,
		statementSvc:  statementSvc,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

func (s *TaxServiceImpl) CalculateVAT(ctx context.Context, periodStart, periodEnd time.Time, record bool) (tax.VATReturnResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return tax.VATReturnResponse{}, err
	}
	if periodEnd.Before(periodStart) {
		return tax.VATReturnResponse{}, tax.ErrInvalidPeriod
	}

	salesInclVAT, err := s.sumLines(ctx, companyID, periodStart, periodEnd, ledger.TypeSale, account.CodeSales, false)
	if err != nil {
		return tax.VATReturnResponse{}, err
	}
	purchInclVAT, err := s.sumLines(ctx, companyID, periodStart, periodEnd, ledger.TypePurchase, account.CodeInventory, true)
	if err != nil {
		return tax.VATReturnResponse{}, err
	}

	collected := ExtractVAT(salesInclVAT, s.cfg.VATRate).Tax
	paid := ExtractVAT(purchInclVAT, s.cfg.VATRate).Tax
	netPayable := collected.Sub(paid)
	dueDate := FilingDueDate(periodEnd)

	resp := tax.VATReturnResponse{
		PeriodStart:  periodStart.Format(time.DateOnly),
		PeriodEnd:    periodEnd.Format(time.DateOnly),
		Rate:         s.cfg.VATRate,
		SalesInclVAT: salesInclVAT,
		VATCollected: collected,
		PurchInclVAT: purchInclVAT,
		VATPaid:      paid,
		NetPayable:   netPayable,
		DueDate:      dueDate.Format(time.DateOnly),
	}

	if record && netPayable.IsPositive() {
		liability, err := s.liabilityRepo.Create(ctx, tax.Liability{
			CompanyID:   companyID,
			TaxType:     tax.TypeVAT,
			Rate:        s.cfg.VATRate,
			Base:        salesInclVAT,
			Amount:      netPayable,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			DueDate:     dueDate,
			Status:      tax.StatusPending,
		})
		if err != nil {
			return tax.VATReturnResponse{}, fmt.Errorf("failed to record VAT liability: %w", err)
		}
		resp.LiabilityID = &liability.ID
	}

	return resp, nil
}

// sumLines totals one side of one account over the period's lines of the
// given transaction type.
func (s *TaxServiceImpl) sumLines(ctx context.Context, companyID string, from, to time.Time, txType ledger.TransactionType, code string, debitSide bool) (decimal.Decimal, error) {
	lines, err := s.ledgerRepo.Query(ctx, companyID, ledger.LineFilter{From: from, To: to, Type: &txType})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, l := range lines {
		if l.IsDebit() != debitSide || l.Account() != code {
			continue
		}
		total = total.Add(l.Amount())
	}

	return total, nil
}

func (s *TaxServiceImpl) CalculatePayrollTaxes(ctx context.Context, periodStart, periodEnd time.Time) (tax.PayrollTaxesResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return tax.PayrollTaxesResponse{}, err
	}
	if periodEnd.Before(periodStart) {
		return tax.PayrollTaxesResponse{}, tax.ErrInvalidPeriod
	}

	totals, err := s.payrollRepo.GetTaxTotals(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return tax.PayrollTaxesResponse{}, err
	}

	return tax.PayrollTaxesResponse{
		PeriodStart:  periodStart.Format(time.DateOnly),
		PeriodEnd:    periodEnd.Format(time.DateOnly),
		TotalGross:   totals.TotalGross,
		TotalPAYE:    totals.TotalPAYE,
		EmployeeNSSF: totals.TotalEmployeeNSSF,
		EmployerNSSF: totals.TotalEmployerNSSF,
		TotalNSSF:    totals.TotalEmployeeNSSF.Add(totals.TotalEmployerNSSF),
		DueDate:      FilingDueDate(periodEnd).Format(time.DateOnly),
	}, nil
}

func (s *TaxServiceImpl) AnnualReturn(ctx context.Context, year int) (tax.AnnualReturnResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return tax.AnnualReturnResponse{}, err
	}

	periodStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	if entry, err := s.cacheRepo.Get(ctx, companyID, statement.TypeAnnualTaxReturn, periodStart, periodEnd); err == nil {
		var cached tax.AnnualReturnResponse
		if uerr := json.Unmarshal(entry.Payload, &cached); uerr == nil {
			return cached, nil
		} else {
			s.logger.WarnContext(ctx, "annual return cache payload corrupt", "year", year, "error", uerr)
		}
	} else if !errors.Is(err, statement.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "annual return cache read failed", "year", year, "error", err)
	}

	income, err := s.statementSvc.IncomeStatement(ctx, periodStart, periodEnd, false)
	if err != nil {
		return tax.AnnualReturnResponse{}, err
	}

	var deductions []tax.DeductionDetail
	totalDeductions := decimal.Zero
	addDeduction := func(code string, amount decimal.Decimal) {
		if !amount.IsPositive() {
			return
		}
		deductions = append(deductions, tax.DeductionDetail{Account: code, Amount: amount})
		totalDeductions = totalDeductions.Add(amount)
	}

	addDeduction(account.CodeCOGS, income.CostOfGoodsSold)
	for _, item := range income.OperatingExpenseDetail {
		addDeduction(item.Code, item.Amount)
	}
	addDeduction(account.OtherExpensesLabel, income.OtherExpenses)

	taxDue := CorporateTax(income.NetProfit, s.cfg.CorporateRate)
	quarterly := taxDue.DivRound(decimal.NewFromInt(4), 0)

	resp := tax.AnnualReturnResponse{
		Year:            year,
		Revenue:         income.Revenue,
		Deductions:      deductions,
		TotalDeductions: totalDeductions,
		NetProfit:       income.NetProfit,
		CorporateRate:   s.cfg.CorporateRate,
		TaxDue:          taxDue,
		QuarterlyEstimates: []decimal.Decimal{
			quarterly, quarterly, quarterly, quarterly,
		},
	}

	if payload, err := json.Marshal(resp); err == nil {
		err = s.cacheRepo.Upsert(ctx, statement.CacheEntry{
			CompanyID:   companyID,
			Type:        statement.TypeAnnualTaxReturn,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			Payload:     payload,
			GeneratedAt: time.Now().UTC(),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "annual return cache write failed", "year", year, "error", err)
		}
	}

	return resp, nil
}

func (s *TaxServiceImpl) Summary(ctx context.Context) (tax.SummaryResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return tax.SummaryResponse{}, err
	}

	sums, err := s.liabilityRepo.SumPendingByType(ctx, companyID)
	if err != nil {
		return tax.SummaryResponse{}, err
	}

	get := func(t tax.TaxType) decimal.Decimal {
		if v, ok := sums[t]; ok {
			return v
		}
		return decimal.Zero
	}

	vat := get(tax.TypeVAT)
	paye := get(tax.TypePAYE)
	nssf := get(tax.TypeNSSF)

	return tax.SummaryResponse{
		VATDue:   vat,
		PAYEDue:  paye,
		NSSFDue:  nssf,
		TotalDue: vat.Add(paye).Add(nssf),
	}, nil
}

func (s *TaxServiceImpl) ListLiabilities(ctx context.Context, status *tax.LiabilityStatus) ([]tax.LiabilityResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	liabilities, err := s.liabilityRepo.ListByCompanyID(ctx, companyID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]tax.LiabilityResponse, 0, len(liabilities))
	for _, l := range liabilities {
		responses = append(responses, toLiabilityResponse(l))
	}

	return responses, nil
}

func (s *TaxServiceImpl) UpdateLiabilityStatus(ctx context.Context, req tax.UpdateLiabilityStatusRequest) (tax.LiabilityResponse, error) {
	companyID, _, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return tax.LiabilityResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return tax.LiabilityResponse{}, err
	}

	liability, err := s.liabilityRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return tax.LiabilityResponse{}, err
	}

	next := tax.LiabilityStatus(req.Status)
	if !liability.Status.CanTransitionTo(next) {
		return tax.LiabilityResponse{}, tax.ErrInvalidTransition
	}

	if err := s.liabilityRepo.UpdateStatus(ctx, req.ID, companyID, next); err != nil {
		return tax.LiabilityResponse{}, err
	}

	liability.Status = next
	return toLiabilityResponse(liability), nil
}

func toLiabilityResponse(l tax.Liability) tax.LiabilityResponse {
	return tax.LiabilityResponse{
		ID:          l.ID,
		TaxType:     string(l.TaxType),
		Rate:        l.Rate,
		Base:        l.Base,
		Amount:      l.Amount,
		PeriodStart: l.PeriodStart.Format(time.DateOnly),
		PeriodEnd:   l.PeriodEnd.Format(time.DateOnly),
		DueDate:     l.DueDate.Format(time.DateOnly),
		Status:      string(l.Status),
	}
}
