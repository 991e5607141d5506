package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
// Exactly one of DebitBalance/CreditBalance is nonzero.
type TrialBalanceRow struct {
	AccountID     string
	AccountCode   string
	AccountName   string
	AccountType   AccountType
	DebitBalance  decimal.Decimal
	CreditBalance decimal.Decimal
}

// TrialBalance lists nonzero balances as of a date.
type TrialBalance struct {
	AsOfDate     time.Time
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	IsBalanced   bool
}

// StatementItem is one account line in a financial statement section.
type StatementItem struct {
	AccountID   string
	AccountCode string
	AccountName string
	Amount      decimal.Decimal
}

// StatementSection groups items with their total.
type StatementSection struct {
	Items []StatementItem
	Total decimal.Decimal
}

// Add appends an item and accumulates the total.
func (s *StatementSection) Add(item StatementItem) {
	s.Items = append(s.Items, item)
	s.Total = s.Total.Add(item.Amount)
}

// IncomeStatement covers activity strictly within [StartDate, EndDate].
type IncomeStatement struct {
	StartDate time.Time
	EndDate   time.Time
	Revenue   StatementSection
	Expenses  StatementSection
	NetIncome decimal.Decimal
}

// BalanceSheet reports cumulative positions as of a date.
type BalanceSheet struct {
	AsOfDate                  time.Time
	Assets                    StatementSection
	Liabilities               StatementSection
	Equity                    StatementSection
	TotalLiabilitiesAndEquity decimal.Decimal
}

// CashFlowStatement classifies cash movements by the counter-account's tag.
type CashFlowStatement struct {
	StartDate           time.Time
	EndDate             time.Time
	OperatingActivities StatementSection
	InvestingActivities StatementSection
	FinancingActivities StatementSection
	NetChangeInCash     decimal.Decimal
	OpeningCash         decimal.Decimal
	ClosingCash         decimal.Decimal
}
