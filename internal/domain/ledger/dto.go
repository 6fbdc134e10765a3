package ledger

import (
	"time"

	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Entry is one caller-supplied debit or credit before validation.
type Entry struct {
	Account string           `json:"account"`
	Debit   *decimal.Decimal `json:"debit,omitempty"`
	Credit  *decimal.Decimal `json:"credit,omitempty"`
}

type PostTransactionRequest struct {
	Type            string  `json:"type"`
	ReferenceID     string  `json:"reference_id"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	Date            string  `json:"date"`
	Entries         []Entry `json:"entries"`
	Description     string  `json:"description,omitempty"`
}

func (r *PostTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !TransactionType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown transaction type"})
	}
	if validator.IsEmpty(r.ReferenceID) {
		errs = append(errs, validator.ValidationError{Field: "reference_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordSaleRequest's ID becomes the transaction reference; when the
// caller omits it the service assigns one.
type RecordSaleRequest struct {
	ID            string          `json:"id,omitempty"`
	Date          string          `json:"date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	CostOfGoods   decimal.Decimal `json:"cost_of_goods,omitempty"`
}

func (r *RecordSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !r.TotalAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be positive"})
	}
	if r.CostOfGoods.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "cost_of_goods", Message: "must be non-negative"})
	}
	if !validator.IsInSlice(r.PaymentMethod, []string{"cash", "bank"}) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be cash or bank"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordPurchaseRequest struct {
	ID              string          `json:"id,omitempty"`
	Date            string          `json:"date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
}

func (r *RecordPurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !r.TotalAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be positive"})
	}
	if !validator.IsInSlice(r.PaymentMethod, []string{"cash", "bank", "credit"}) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be cash, bank or credit"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordExpenseRequest struct {
	ID            string          `json:"id,omitempty"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description,omitempty"`
}

func (r *RecordExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !validator.IsInSlice(r.PaymentMethod, []string{"cash", "bank"}) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be cash or bank"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordPayrollRequest carries an approved payroll run's totals for
// posting. Net pay leaves the bank; PAYE and NSSF land on their payable
// accounts until remitted, other withholdings on accounts payable.
type RecordPayrollRequest struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	PAYE            decimal.Decimal `json:"paye"`
	EmployeeNSSF    decimal.Decimal `json:"employee_nssf"`
	EmployerNSSF    decimal.Decimal `json:"employer_nssf"`
	OtherDeductions decimal.Decimal `json:"other_deductions,omitempty"`
	Description     string          `json:"description,omitempty"`
}

func (r *RecordPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !r.GrossPay.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "gross_pay", Message: "must be positive"})
	}
	if r.PAYE.IsNegative() || r.EmployeeNSSF.IsNegative() || r.EmployerNSSF.IsNegative() || r.OtherDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}
	if r.PAYE.Add(r.EmployeeNSSF).Add(r.OtherDeductions).GreaterThan(r.GrossPay) {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must not exceed gross pay"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	TransactionType string          `json:"transaction_type"`
	ReferenceID     string          `json:"reference_id"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	DebitAccount    *string         `json:"debit_account,omitempty"`
	DebitAmount     decimal.Decimal `json:"debit_amount"`
	CreditAccount   *string         `json:"credit_account,omitempty"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	Description     string          `json:"description,omitempty"`
	CreatedBy       string          `json:"created_by"`
	ApprovalStatus  string          `json:"approval_status"`
}

type TransactionResponse struct {
	ReferenceID     string          `json:"reference_id"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Type            string          `json:"type"`
	Date            string          `json:"date"`
	TotalDebit      decimal.Decimal `json:"total_debit"`
	TotalCredit     decimal.Decimal `json:"total_credit"`
	Lines           []LineResponse  `json:"lines"`
	AlreadyPosted   bool            `json:"already_posted,omitempty"`
}

// QueryLinesRequest carries the parsed query parameters of the read path.
type QueryLinesRequest struct {
	From time.Time
	To   time.Time
	Type *TransactionType
}
