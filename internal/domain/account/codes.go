package account

// Well-known account codes shared by the posting composers, the statement
// aggregator and the tax calculator. Composers must reference these
// constants, never raw strings, so renames stay in one place.
const (
	// Assets
	CodeCash                    = "CASH"
	CodeBank                    = "BANK"
	CodeAccountsReceivable      = "ACCOUNTS_RECEIVABLE"
	CodeInventory               = "INVENTORY"
	CodePrepaidExpenses         = "PREPAID_EXPENSES"
	CodeEquipment               = "EQUIPMENT"
	CodeFurnitureFittings       = "FURNITURE_FITTINGS"
	CodeVehicles                = "VEHICLES"
	CodeAccumulatedDepreciation = "ACCUMULATED_DEPRECIATION"

	// Liabilities
	CodeAccountsPayable = "ACCOUNTS_PAYABLE"
	CodeVATPayable      = "VAT_PAYABLE"
	CodePAYEPayable     = "PAYE_PAYABLE"
	CodeNSSFPayable     = "NSSF_PAYABLE"
	CodeLoansPayable    = "LOANS_PAYABLE"

	// Equity
	CodeOwnersCapital    = "OWNERS_CAPITAL"
	CodeOwnersDrawings   = "OWNERS_DRAWINGS"
	CodeRetainedEarnings = "RETAINED_EARNINGS"

	// Income
	CodeSales          = "SALES"
	CodeServiceIncome  = "SERVICE_INCOME"
	CodeOtherIncome    = "OTHER_INCOME"
	CodeSalesDiscounts = "SALES_DISCOUNTS"
	CodeSalesReturns   = "SALES_RETURNS"

	// Expenses
	CodeCOGS                = "COGS"
	CodeRentExpense         = "RENT_EXPENSE"
	CodeUtilitiesExpense    = "UTILITIES_EXPENSE"
	CodeSalaryExpense       = "SALARY_EXPENSE"
	CodeTransportExpense    = "TRANSPORT_EXPENSE"
	CodeMarketingExpense    = "MARKETING_EXPENSE"
	CodeRepairsExpense      = "REPAIRS_EXPENSE"
	CodeInsuranceExpense    = "INSURANCE_EXPENSE"
	CodeProfessionalFees    = "PROFESSIONAL_FEES"
	CodeLicensesExpense     = "LICENSES_EXPENSE"
	CodeOfficeSupplies      = "OFFICE_SUPPLIES"
	CodeCommunication       = "COMMUNICATION_EXPENSE"
	CodeDepreciationExpense = "DEPRECIATION_EXPENSE"
	CodeMiscExpense         = "MISC_EXPENSE"
	CodeBankCharges         = "BANK_CHARGES"
	CodeInterestExpense     = "INTEREST_EXPENSE"
)

// OtherExpensesLabel names the grouped bank-charges and interest figure
// on statements and tax deductions. It is a reporting label, not a
// postable account code.
const OtherExpensesLabel = "OTHER_EXPENSES"

// OperatingExpenseCodes is the fixed set the income statement sums into
// operating expenses. Bank charges and interest are reported separately
// under other expenses.
var OperatingExpenseCodes = []string{
	CodeRentExpense,
	CodeUtilitiesExpense,
	CodeSalaryExpense,
	CodeTransportExpense,
	CodeMarketingExpense,
	CodeRepairsExpense,
	CodeInsuranceExpense,
	CodeProfessionalFees,
	CodeLicensesExpense,
	CodeOfficeSupplies,
	CodeCommunication,
	CodeDepreciationExpense,
	CodeMiscExpense,
}

// ExpenseCategoryAccounts maps the expense categories accepted from the
// expense module to their ledger accounts. Unknown categories post to
// MISC_EXPENSE.
var ExpenseCategoryAccounts = map[string]string{
	"rent":         CodeRentExpense,
	"utilities":    CodeUtilitiesExpense,
	"salaries":     CodeSalaryExpense,
	"transport":    CodeTransportExpense,
	"marketing":    CodeMarketingExpense,
	"repairs":      CodeRepairsExpense,
	"insurance":    CodeInsuranceExpense,
	"professional": CodeProfessionalFees,
	"licenses":     CodeLicensesExpense,
	"supplies":     CodeOfficeSupplies,
	"internet":     CodeCommunication,
	"bank_charges": CodeBankCharges,
	"interest":     CodeInterestExpense,
}

// ExpenseAccountForCategory resolves a category to an account code.
func ExpenseAccountForCategory(category string) string {
	if code, ok := ExpenseCategoryAccounts[category]; ok {
		return code
	}
	return CodeMiscExpense
}
