package domain

// ChartAccount is a template row of the standard chart of accounts.
type ChartAccount struct {
	Code             string
	Name             string
	AccountType      AccountType
	IsCash           bool
	CashFlowCategory CashFlowCategory
	Description      string
}

// StandardChart returns the canonical small-business chart, ordered by code.
func StandardChart() []ChartAccount {
	return []ChartAccount{
		{Code: "1010", Name: "Cash", AccountType: Asset, IsCash: true, CashFlowCategory: Operating, Description: "Cash on hand and till"},
		{Code: "1020", Name: "Bank Account", AccountType: Asset, IsCash: true, CashFlowCategory: Operating, Description: "Main operating bank account"},
		{Code: "1030", Name: "Mobile Money", AccountType: Asset, IsCash: true, CashFlowCategory: Operating, Description: "Mobile money wallet"},
		{Code: "1100", Name: "Accounts Receivable", AccountType: Asset, CashFlowCategory: Operating, Description: "Amounts owed by customers"},
		{Code: "1150", Name: "Installment Receivables", AccountType: Asset, CashFlowCategory: Operating, Description: "Outstanding installment sale balances"},
		{Code: "1200", Name: "Inventory", AccountType: Asset, CashFlowCategory: Operating, Description: "Goods held for sale"},
		{Code: "1500", Name: "Equipment", AccountType: Asset, CashFlowCategory: Investing, Description: "Furniture, fixtures and equipment"},
		{Code: "2000", Name: "Accounts Payable", AccountType: Liability, CashFlowCategory: Operating, Description: "Amounts owed to suppliers"},
		{Code: "2100", Name: "Customer Deposits (Layaway)", AccountType: Liability, CashFlowCategory: Operating, Description: "Deposits on layaway plans"},
		{Code: "2200", Name: "Taxes Payable", AccountType: Liability, CashFlowCategory: Operating, Description: "Sales and other taxes due"},
		{Code: "2500", Name: "Loans Payable", AccountType: Liability, CashFlowCategory: Financing, Description: "Bank and other loans"},
		{Code: "3000", Name: "Owner's Capital", AccountType: Equity, CashFlowCategory: Financing, Description: "Owner contributions and drawings"},
		{Code: "3100", Name: "Retained Earnings", AccountType: Equity, CashFlowCategory: Financing, Description: "Accumulated prior-period earnings"},
		{Code: "4000", Name: "Sales Revenue", AccountType: Income, CashFlowCategory: Operating, Description: "Revenue from sales"},
		{Code: "4100", Name: "Installment Interest Income", AccountType: Income, CashFlowCategory: Operating, Description: "Interest and fees on installment plans"},
		{Code: "4200", Name: "Other Income", AccountType: Income, CashFlowCategory: Operating, Description: "Miscellaneous income"},
		{Code: "5000", Name: "Cost of Goods Sold", AccountType: Expense, CashFlowCategory: Operating, Description: "Cost of inventory sold"},
		{Code: "5100", Name: "Rent Expense", AccountType: Expense, CashFlowCategory: Operating, Description: "Premises rent"},
		{Code: "5200", Name: "Salaries Expense", AccountType: Expense, CashFlowCategory: Operating, Description: "Staff salaries and wages"},
		{Code: "5300", Name: "Utilities Expense", AccountType: Expense, CashFlowCategory: Operating, Description: "Power, water and internet"},
		{Code: "5400", Name: "Bank Fees", AccountType: Expense, CashFlowCategory: Operating, Description: "Bank and mobile money charges"},
		{Code: "5900", Name: "Miscellaneous Expense", AccountType: Expense, CashFlowCategory: Operating, Description: "Other operating expenses"},
	}
}
