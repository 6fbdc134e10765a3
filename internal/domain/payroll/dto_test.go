package payroll

import (
	"testing"

	"github.com/kazi-suite/ledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBatchRequestValidate(t *testing.T) {
	req := GenerateBatchRequest{
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-30",
		Adjustments: []EmployeeAdjustment{
			{EmployeeID: "emp-1", Allowances: decimal.NewFromInt(100000)},
			{EmployeeID: "emp-2", OtherDeductions: decimal.NewFromInt(25000)},
		},
	}

	assert.NoError(t, req.Validate())
}

func TestGenerateBatchRequestValidate_BadAdjustments(t *testing.T) {
	req := GenerateBatchRequest{
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-30",
		Adjustments: []EmployeeAdjustment{
			{EmployeeID: "", Allowances: decimal.NewFromInt(-1), OtherDeductions: decimal.NewFromInt(-5)},
		},
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "adjustments[0].employee_id")
	assert.Contains(t, fields, "adjustments[0].allowances")
	assert.Contains(t, fields, "adjustments[0].other_deductions")
}

func TestGenerateBatchRequestValidate_InvertedPeriod(t *testing.T) {
	req := GenerateBatchRequest{
		PeriodStart: "2025-06-30",
		PeriodEnd:   "2025-06-01",
	}

	assert.Error(t, req.Validate())
}
