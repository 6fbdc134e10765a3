package payroll

import "errors"

var (
	ErrBatchNotFound        = errors.New("payroll batch not found")
	ErrRecordNotFound       = errors.New("payroll record not found")
	ErrBatchAlreadyExists   = errors.New("payroll batch already exists for this period")
	ErrBatchNotDraft        = errors.New("payroll batch is no longer a draft")
	ErrRecordNotApproved    = errors.New("payroll record must be approved before payment")
	ErrNoPayableEmployees   = errors.New("no active employees with a positive base salary")
	ErrInvalidPayrollPeriod = errors.New("payroll period start must not be after period end")
	ErrNegativeNetPay       = errors.New("deductions exceed gross pay")
)
