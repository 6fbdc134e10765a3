package payroll

import (
	"testing"

	"github.com/kazi-suite/ledger-backend-go/internal/config"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/employee"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/kazi-suite/ledger-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStatutoryRates() config.TaxConfig {
	return config.TaxConfig{
		VATRate:          decimal.RequireFromString("0.18"),
		NSSFEmployeeRate: decimal.RequireFromString("0.05"),
		NSSFEmployerRate: decimal.RequireFromString("0.10"),
		CorporateRate:    decimal.RequireFromString("0.30"),
	}
}

func salariedEmployee(salary int64) employee.Employee {
	base := decimal.NewFromInt(salary)
	return employee.Employee{
		ID:         "emp-1",
		CompanyID:  "co-1",
		FullName:   "Akello Grace",
		BaseSalary: &base,
		IsActive:   true,
	}
}

func TestCalculateEmployeePayroll(t *testing.T) {
	cfg := fixtures.TaxConfigFrom(testStatutoryRates())

	calc, err := calculateEmployeePayroll(salariedEmployee(1000000), decimal.Zero, decimal.Zero, cfg)

	require.NoError(t, err)
	assert.True(t, calc.GrossPay.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, calc.PAYETax.Equal(decimal.NewFromInt(202000)), "paye: %s", calc.PAYETax)
	assert.True(t, calc.EmployeeContribution.Equal(decimal.NewFromInt(50000)), "employee nssf: %s", calc.EmployeeContribution)
	assert.True(t, calc.EmployerContribution.Equal(decimal.NewFromInt(100000)), "employer nssf: %s", calc.EmployerContribution)
	assert.True(t, calc.NetPay.Equal(decimal.NewFromInt(748000)), "net: %s", calc.NetPay)
	assert.True(t, calc.EmployerCost.Equal(decimal.NewFromInt(1100000)), "employer cost: %s", calc.EmployerCost)
}

func TestCalculateEmployeePayrollWithAdjustments(t *testing.T) {
	cfg := fixtures.TaxConfigFrom(testStatutoryRates())

	allowances := decimal.NewFromInt(200000)
	otherDeductions := decimal.NewFromInt(30000)

	calc, err := calculateEmployeePayroll(salariedEmployee(800000), allowances, otherDeductions, cfg)

	require.NoError(t, err)
	// Allowances raise gross before tax, so statutory amounts match a
	// 1,000,000 gross.
	assert.True(t, calc.GrossPay.Equal(decimal.NewFromInt(1000000)), "gross: %s", calc.GrossPay)
	assert.True(t, calc.Allowances.Equal(allowances))
	assert.True(t, calc.PAYETax.Equal(decimal.NewFromInt(202000)), "paye: %s", calc.PAYETax)
	assert.True(t, calc.EmployeeContribution.Equal(decimal.NewFromInt(50000)))
	assert.True(t, calc.OtherDeductions.Equal(otherDeductions))
	assert.True(t, calc.NetPay.Equal(decimal.NewFromInt(718000)), "net: %s", calc.NetPay)
	assert.True(t, calc.EmployerCost.Equal(decimal.NewFromInt(1100000)))
}

func TestCalculateEmployeePayrollDeductionsExceedNet(t *testing.T) {
	cfg := fixtures.TaxConfigFrom(testStatutoryRates())

	// 100,000 gross leaves 95,000 after NSSF; a 96,000 deduction overdraws.
	_, err := calculateEmployeePayroll(salariedEmployee(100000), decimal.Zero, decimal.NewFromInt(96000), cfg)

	assert.ErrorIs(t, err, payroll.ErrNegativeNetPay)
}

func TestCalculateEmployeePayrollBelowPAYEThreshold(t *testing.T) {
	cfg := fixtures.TaxConfigFrom(testStatutoryRates())

	calc, err := calculateEmployeePayroll(salariedEmployee(200000), decimal.Zero, decimal.Zero, cfg)

	require.NoError(t, err)
	assert.True(t, calc.PAYETax.IsZero())
	assert.True(t, calc.EmployeeContribution.Equal(decimal.NewFromInt(10000)))
	assert.True(t, calc.NetPay.Equal(decimal.NewFromInt(190000)))
}

func TestCalculateEmployeePayrollNilSalary(t *testing.T) {
	cfg := fixtures.TaxConfigFrom(testStatutoryRates())
	emp := salariedEmployee(0)
	emp.BaseSalary = nil

	calc, err := calculateEmployeePayroll(emp, decimal.Zero, decimal.Zero, cfg)

	require.NoError(t, err)
	assert.True(t, calc.GrossPay.IsZero())
	assert.True(t, calc.NetPay.IsZero())
}

func TestCalculateEmployeePayrollNetIdentity(t *testing.T) {
	cfg := fixtures.TaxConfigFrom(testStatutoryRates())

	allowances := decimal.NewFromInt(50000)
	otherDeductions := decimal.NewFromInt(20000)

	for _, salary := range []int64{250000, 500000, 1500000, 12000000} {
		calc, err := calculateEmployeePayroll(salariedEmployee(salary), allowances, otherDeductions, cfg)
		require.NoError(t, err)

		rebuilt := calc.NetPay.Add(calc.PAYETax).Add(calc.EmployeeContribution).Add(calc.OtherDeductions)
		assert.True(t, rebuilt.Equal(calc.GrossPay), "net identity broken at salary %d", salary)
		assert.False(t, calc.NetPay.IsNegative())
	}
}
