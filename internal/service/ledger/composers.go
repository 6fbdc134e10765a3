package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// paymentAccount maps a payment method onto the account the money moves
// through.
func paymentAccount(method string) (string, error) {
	switch method {
	case "cash":
		return account.CodeCash, nil
	case "bank":
		return account.CodeBank, nil
	case "credit":
		return account.CodeAccountsPayable, nil
	}
	return "", ledger.ErrUnknownPaymentMethod
}

func debit(code string, amount decimal.Decimal) ledger.Entry {
	return ledger.Entry{Account: code, Debit: &amount}
}

func credit(code string, amount decimal.Decimal) ledger.Entry {
	return ledger.Entry{Account: code, Credit: &amount}
}

func (s *LedgerServiceImpl) RecordSale(ctx context.Context, req ledger.RecordSaleRequest) (ledger.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.TransactionResponse{}, err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	payment, err := paymentAccount(req.PaymentMethod)
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	entries := []ledger.Entry{
		debit(payment, req.TotalAmount),
		credit(account.CodeSales, req.TotalAmount),
	}
	if req.CostOfGoods.IsPositive() {
		entries = append(entries,
			debit(account.CodeCOGS, req.CostOfGoods),
			credit(account.CodeInventory, req.CostOfGoods),
		)
	}

	return s.PostTransaction(ctx, ledger.PostTransactionRequest{
		Type:            string(ledger.TypeSale),
		ReferenceID:     req.ID,
		ReferenceNumber: req.InvoiceNumber,
		Date:            req.Date,
		Entries:         entries,
		Description:     "Sale " + req.InvoiceNumber,
	})
}

func (s *LedgerServiceImpl) RecordPurchase(ctx context.Context, req ledger.RecordPurchaseRequest) (ledger.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.TransactionResponse{}, err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	payment, err := paymentAccount(req.PaymentMethod)
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	return s.PostTransaction(ctx, ledger.PostTransactionRequest{
		Type:            string(ledger.TypePurchase),
		ReferenceID:     req.ID,
		ReferenceNumber: req.ReferenceNumber,
		Date:            req.Date,
		Entries: []ledger.Entry{
			debit(account.CodeInventory, req.TotalAmount),
			credit(payment, req.TotalAmount),
		},
		Description: "Inventory purchase " + req.ReferenceNumber,
	})
}

func (s *LedgerServiceImpl) RecordExpense(ctx context.Context, req ledger.RecordExpenseRequest) (ledger.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.TransactionResponse{}, err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	payment, err := paymentAccount(req.PaymentMethod)
	if err != nil {
		return ledger.TransactionResponse{}, err
	}

	expenseAccount := account.ExpenseAccountForCategory(req.Category)

	return s.PostTransaction(ctx, ledger.PostTransactionRequest{
		Type:        string(ledger.TypeExpense),
		ReferenceID: req.ID,
		Date:        req.Date,
		Entries: []ledger.Entry{
			debit(expenseAccount, req.Amount),
			credit(payment, req.Amount),
		},
		Description: req.Description,
	})
}

// RecordPayroll posts one approved payroll run. Salary expense carries the
// employer cost; the withheld PAYE and both NSSF shares sit on their
// payable accounts until remitted, other withholdings on accounts payable.
func (s *LedgerServiceImpl) RecordPayroll(ctx context.Context, req ledger.RecordPayrollRequest) (ledger.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.TransactionResponse{}, err
	}

	netPay := req.GrossPay.Sub(req.PAYE).Sub(req.EmployeeNSSF).Sub(req.OtherDeductions)
	totalNSSF := req.EmployeeNSSF.Add(req.EmployerNSSF)

	entries := []ledger.Entry{
		debit(account.CodeSalaryExpense, req.GrossPay.Add(req.EmployerNSSF)),
	}
	if netPay.IsPositive() {
		entries = append(entries, credit(account.CodeCash, netPay))
	}
	if req.PAYE.IsPositive() {
		entries = append(entries, credit(account.CodePAYEPayable, req.PAYE))
	}
	if totalNSSF.IsPositive() {
		entries = append(entries, credit(account.CodeNSSFPayable, totalNSSF))
	}
	if req.OtherDeductions.IsPositive() {
		entries = append(entries, credit(account.CodeAccountsPayable, req.OtherDeductions))
	}

	return s.PostTransaction(ctx, ledger.PostTransactionRequest{
		Type:        string(ledger.TypePayroll),
		ReferenceID: req.ID,
		Date:        req.Date,
		Entries:     entries,
		Description: req.Description,
	})
}
