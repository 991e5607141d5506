package dto

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AsOfQuery selects a point-in-time report. A blank date means today.
type AsOfQuery struct {
	AsOfDate string `form:"as_of_date" binding:"omitempty,datetime=2006-01-02"`
}

// PeriodQuery selects a period report. Both bounds are required and inclusive.
type PeriodQuery struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID     string          `json:"account_id"`
	AccountCode   string          `json:"account_code"`
	AccountName   string          `json:"account_name"`
	AccountType   string          `json:"account_type"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOfDate     string                    `json:"as_of_date"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  decimal.Decimal           `json:"total_debits"`
	TotalCredits decimal.Decimal           `json:"total_credits"`
	IsBalanced   bool                      `json:"is_balanced"`
}

// StatementItemResponse is one account line in a statement section.
type StatementItemResponse struct {
	AccountID   string          `json:"account_id,omitempty"`
	AccountCode string          `json:"account_code,omitempty"`
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

// StatementSectionResponse is a statement section with its total.
type StatementSectionResponse struct {
	Items []StatementItemResponse `json:"items"`
	Total decimal.Decimal         `json:"total"`
}

// IncomeStatementResponse represents the income statement response.
type IncomeStatementResponse struct {
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Revenue   StatementSectionResponse `json:"revenue"`
	Expenses  StatementSectionResponse `json:"expenses"`
	NetIncome decimal.Decimal          `json:"net_income"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOfDate                  string                   `json:"as_of_date"`
	Assets                    StatementSectionResponse `json:"assets"`
	Liabilities               StatementSectionResponse `json:"liabilities"`
	Equity                    StatementSectionResponse `json:"equity"`
	TotalLiabilitiesAndEquity decimal.Decimal          `json:"total_liabilities_and_equity"`
}

// CashFlowResponse represents the cash flow statement response.
type CashFlowResponse struct {
	StartDate           string                   `json:"start_date"`
	EndDate             string                   `json:"end_date"`
	OperatingActivities StatementSectionResponse `json:"operating_activities"`
	InvestingActivities StatementSectionResponse `json:"investing_activities"`
	FinancingActivities StatementSectionResponse `json:"financing_activities"`
	NetChangeInCash     decimal.Decimal          `json:"net_change_in_cash"`
	OpeningCash         decimal.Decimal          `json:"opening_cash"`
	ClosingCash         decimal.Decimal          `json:"closing_cash"`
}

func toSectionResponse(s domain.StatementSection) StatementSectionResponse {
	items := make([]StatementItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = StatementItemResponse{
			AccountID:   it.AccountID,
			AccountCode: it.AccountCode,
			AccountName: it.AccountName,
			Amount:      it.Amount,
		}
	}
	return StatementSectionResponse{Items: items, Total: s.Total}
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, r := range tb.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:     r.AccountID,
			AccountCode:   r.AccountCode,
			AccountName:   r.AccountName,
			AccountType:   string(r.AccountType),
			DebitBalance:  r.DebitBalance,
			CreditBalance: r.CreditBalance,
		}
	}
	return TrialBalanceResponse{
		AsOfDate:     FormatDate(tb.AsOfDate),
		Rows:         rows,
		TotalDebits:  tb.TotalDebits,
		TotalCredits: tb.TotalCredits,
		IsBalanced:   tb.IsBalanced,
	}
}

// ToIncomeStatementResponse converts a domain income statement.
func ToIncomeStatementResponse(is *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		StartDate: FormatDate(is.StartDate),
		EndDate:   FormatDate(is.EndDate),
		Revenue:   toSectionResponse(is.Revenue),
		Expenses:  toSectionResponse(is.Expenses),
		NetIncome: is.NetIncome,
	}
}

// ToBalanceSheetResponse converts a domain balance sheet.
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOfDate:                  FormatDate(bs.AsOfDate),
		Assets:                    toSectionResponse(bs.Assets),
		Liabilities:               toSectionResponse(bs.Liabilities),
		Equity:                    toSectionResponse(bs.Equity),
		TotalLiabilitiesAndEquity: bs.TotalLiabilitiesAndEquity,
	}
}

// ToCashFlowResponse converts a domain cash flow statement.
func ToCashFlowResponse(cf *domain.CashFlowStatement) CashFlowResponse {
	return CashFlowResponse{
		StartDate:           FormatDate(cf.StartDate),
		EndDate:             FormatDate(cf.EndDate),
		OperatingActivities: toSectionResponse(cf.OperatingActivities),
		InvestingActivities: toSectionResponse(cf.InvestingActivities),
		FinancingActivities: toSectionResponse(cf.FinancingActivities),
		NetChangeInCash:     cf.NetChangeInCash,
		OpeningCash:         cf.OpeningCash,
		ClosingCash:         cf.ClosingCash,
	}
}
