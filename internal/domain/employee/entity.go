package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee carries what payroll needs: identity, salary and payment
// details. The HR modules own the rest of the profile.
type Employee struct {
	ID                string
	CompanyID         string
	EmployeeCode      string
	FullName          string
	BaseSalary        *decimal.Decimal
	BankName          *string
	BankAccountNumber *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
