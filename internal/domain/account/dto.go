package account

import (
	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	SubType string `json:"sub_type"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidAccountCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be upper snake case, e.g. DELIVERY_VANS"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !AccountType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of ASSET, LIABILITY, EQUITY, INCOME, EXPENSE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AccountResponse struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	SubType  string          `json:"sub_type"`
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"is_active"`
}

type BalanceResponse struct {
	Code    string          `json:"code"`
	Balance decimal.Decimal `json:"balance"`
}

type InitializeChartResponse struct {
	AccountsCreated int  `json:"accounts_created"`
	AlreadySeeded   bool `json:"already_seeded"`
}
