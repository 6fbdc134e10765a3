package fixtures

import (
	"github.com/kazi-suite/ledger-backend-go/internal/domain/account"
)

// DefaultChartOfAccounts returns the chart every new company is seeded
// with. Codes come from the shared registry in the account domain so the
// posting composers and statement aggregator always find their accounts.
func DefaultChartOfAccounts(companyID string) []account.Account {
	defs := []struct {
		code    string
		name    string
		typ     account.AccountType
		subType string
	}{
		// Assets
		{account.CodeCash, "Cash on Hand", account.TypeAsset, account.SubTypeCurrentAsset},
		{account.CodeBank, "Bank Account", account.TypeAsset, account.SubTypeCurrentAsset},
		{account.CodeAccountsReceivable, "Accounts Receivable", account.TypeAsset, account.SubTypeCurrentAsset},
		{account.CodeInventory, "Inventory", account.TypeAsset, account.SubTypeCurrentAsset},
		{account.CodePrepaidExpenses, "Prepaid Expenses", account.TypeAsset, account.SubTypeCurrentAsset},
		{account.CodeEquipment, "Equipment", account.TypeAsset, account.SubTypeFixedAsset},
		{account.CodeFurnitureFittings, "Furniture & Fittings", account.TypeAsset, account.SubTypeFixedAsset},
		{account.CodeVehicles, "Motor Vehicles", account.TypeAsset, account.SubTypeFixedAsset},
		{account.CodeAccumulatedDepreciation, "Accumulated Depreciation", account.TypeAsset, account.SubTypeFixedAsset},

		// Liabilities
		{account.CodeAccountsPayable, "Accounts Payable", account.TypeLiability, account.SubTypeCurrentLiability},
		{account.CodeVATPayable, "VAT Payable", account.TypeLiability, account.SubTypeCurrentLiability},
		{account.CodePAYEPayable, "PAYE Payable", account.TypeLiability, account.SubTypeCurrentLiability},
		{account.CodeNSSFPayable, "NSSF Payable", account.TypeLiability, account.SubTypeCurrentLiability},
		{account.CodeLoansPayable, "Loans Payable", account.TypeLiability, account.SubTypeLongTermLiability},

		// Equity
		{account.CodeOwnersCapital, "Owner's Capital", account.TypeEquity, account.SubTypeCapital},
		{account.CodeOwnersDrawings, "Owner's Drawings", account.TypeEquity, account.SubTypeDrawings},
		{account.CodeRetainedEarnings, "Retained Earnings", account.TypeEquity, account.SubTypeRetainedEarnings},

		// Income
		{account.CodeSales, "Sales Revenue", account.TypeIncome, account.SubTypeOperatingRevenue},
		{account.CodeServiceIncome, "Service Income", account.TypeIncome, account.SubTypeOperatingRevenue},
		{account.CodeOtherIncome, "Other Income", account.TypeIncome, account.SubTypeOperatingRevenue},
		{account.CodeSalesDiscounts, "Sales Discounts", account.TypeIncome, account.SubTypeContraRevenue},
		{account.CodeSalesReturns, "Sales Returns", account.TypeIncome, account.SubTypeContraRevenue},

		// Expenses
		{account.CodeCOGS, "Cost of Goods Sold", account.TypeExpense, account.SubTypeCostOfSales},
		{account.CodeRentExpense, "Rent", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeUtilitiesExpense, "Utilities", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeSalaryExpense, "Salaries & Wages", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeTransportExpense, "Transport", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeMarketingExpense, "Marketing & Advertising", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeRepairsExpense, "Repairs & Maintenance", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeInsuranceExpense, "Insurance", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeProfessionalFees, "Professional Fees", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeLicensesExpense, "Licenses & Permits", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeOfficeSupplies, "Office Supplies", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeCommunication, "Communication & Internet", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeDepreciationExpense, "Depreciation", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeMiscExpense, "Miscellaneous Expense", account.TypeExpense, account.SubTypeOperatingExpense},
		{account.CodeBankCharges, "Bank Charges", account.TypeExpense, account.SubTypeFinanceExpense},
		{account.CodeInterestExpense, "Interest Expense", account.TypeExpense, account.SubTypeFinanceExpense},
	}

	accounts := make([]account.Account, 0, len(defs))
	for _, d := range defs {
		accounts = append(accounts, account.Account{
			CompanyID: companyID,
			Code:      d.code,
			Name:      d.name,
			Type:      d.typ,
			SubType:   d.subType,
			IsActive:  true,
		})
	}
	return accounts
}
