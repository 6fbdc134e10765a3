package payroll

import (
	"github.com/kazi-suite/ledger-backend-go/internal/domain/employee"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/payroll"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	taxcalc "github.com/kazi-suite/ledger-backend-go/internal/service/tax"
	"github.com/shopspring/decimal"
)

// calculateEmployeePayroll derives one employee's payroll figures from
// their base salary, per-period adjustments and the statutory rates.
// Gross is base plus allowances; PAYE and NSSF are computed on gross.
// Pure; no I/O.
func calculateEmployeePayroll(emp employee.Employee, allowances, otherDeductions decimal.Decimal, cfg tax.Config) (payroll.Calculation, error) {
	base := decimal.Zero
	if emp.BaseSalary != nil {
		base = *emp.BaseSalary
	}
	gross := base.Add(allowances)

	paye, err := taxcalc.PAYE(gross, cfg.PAYEBrackets)
	if err != nil {
		return payroll.Calculation{}, err
	}
	nssf := taxcalc.NSSF(gross, cfg.NSSFEmployeeRate, cfg.NSSFEmployerRate)

	netPay := gross.Sub(paye.Tax).Sub(nssf.Employee).Sub(otherDeductions)
	if netPay.IsNegative() {
		return payroll.Calculation{}, payroll.ErrNegativeNetPay
	}

	return payroll.Calculation{
		EmployeeID:           emp.ID,
		EmployeeName:         emp.FullName,
		GrossPay:             gross,
		Allowances:           allowances,
		PAYETax:              paye.Tax,
		EmployeeContribution: nssf.Employee,
		EmployerContribution: nssf.Employer,
		OtherDeductions:      otherDeductions,
		NetPay:               netPay,
		EmployerCost:         gross.Add(nssf.Employer),
	}, nil
}
