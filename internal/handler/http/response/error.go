package response

import (
	"errors"
	"net/http"

	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/employee"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/ledger"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/statement"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrAccountCodeExists):
		Conflict(w, "Account code already exists")
	case errors.Is(err, account.ErrAccountInactive):
		BadRequest(w, "Account is inactive", nil)
	case errors.Is(err, account.ErrInvalidSide):
		BadRequest(w, "Posting side must be debit or credit", nil)

	// Ledger domain errors
	case errors.Is(err, ledger.ErrUnbalancedTransaction):
		BadRequest(w, "Debits and credits must balance", nil)
	case errors.Is(err, ledger.ErrEmptyTransaction):
		BadRequest(w, "Transaction has no entries", nil)
	case errors.Is(err, ledger.ErrLineBothSides):
		BadRequest(w, "Each entry must carry exactly one side", nil)
	case errors.Is(err, ledger.ErrNonPositiveAmount):
		BadRequest(w, "Amounts must be positive", nil)
	case errors.Is(err, ledger.ErrUnknownPaymentMethod):
		BadRequest(w, "Unknown payment method", nil)
	case errors.Is(err, ledger.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")

	// Statement domain errors
	case errors.Is(err, statement.ErrInvalidPeriod):
		BadRequest(w, "Period end must not precede period start", nil)
	case errors.Is(err, statement.ErrCacheMiss):
		NotFound(w, "No cached statement for this period")

	// Tax domain errors
	case errors.Is(err, tax.ErrLiabilityNotFound):
		NotFound(w, "Tax liability not found")
	case errors.Is(err, tax.ErrInvalidTransition):
		Conflict(w, "Liability status cannot move backwards")
	case errors.Is(err, tax.ErrInvalidPeriod):
		BadRequest(w, "Period end must not precede period start", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrBatchNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrBatchAlreadyExists):
		Conflict(w, "A payroll batch already exists for this period")
	case errors.Is(err, payroll.ErrBatchNotDraft):
		Conflict(w, "Payroll batch is not in draft status")
	case errors.Is(err, payroll.ErrRecordNotApproved):
		Conflict(w, "Payroll record is not approved")
	case errors.Is(err, payroll.ErrNoPayableEmployees):
		BadRequest(w, "No active employees with a base salary", nil)
	case errors.Is(err, payroll.ErrInvalidPayrollPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNegativeNetPay):
		BadRequest(w, "Deductions exceed gross pay", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
