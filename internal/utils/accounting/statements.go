package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrentEarningsName labels the computed equity line on the balance sheet.
const CurrentEarningsName = "Current Earnings"

func sortedAccounts(snapshot domain.LedgerSnapshot) []domain.Account {
	accounts := make([]domain.Account, len(snapshot.Accounts))
	copy(accounts, snapshot.Accounts)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts
}

func newSection() domain.StatementSection {
	return domain.StatementSection{Items: []domain.StatementItem{}, Total: decimal.Zero}
}

func itemFor(acc domain.Account, amount decimal.Decimal) domain.StatementItem {
	return domain.StatementItem{
		AccountID:   acc.AccountID,
		AccountCode: acc.Code,
		AccountName: acc.Name,
		Amount:      amount,
	}
}

// BuildTrialBalance lists every nonzero balance as of asOf. A positive balance
// sits on the account's normal side and a negative one on the opposite side.
func BuildTrialBalance(snapshot domain.LedgerSnapshot, asOf time.Time) domain.TrialBalance {
	balances := Balances(snapshot, OnOrBefore(asOf))
	tb := domain.TrialBalance{
		AsOfDate:     asOf,
		Rows:         []domain.TrialBalanceRow{},
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, acc := range sortedAccounts(snapshot) {
		bal := balances[acc.AccountID]
		if bal.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:     acc.AccountID,
			AccountCode:   acc.Code,
			AccountName:   acc.Name,
			AccountType:   acc.AccountType,
			DebitBalance:  decimal.Zero,
			CreditBalance: decimal.Zero,
		}
		onDebitSide := (acc.NormalBalance == domain.Debit) == bal.IsPositive()
		if onDebitSide {
			row.DebitBalance = bal.Abs()
		} else {
			row.CreditBalance = bal.Abs()
		}
		tb.TotalDebits = tb.TotalDebits.Add(row.DebitBalance)
		tb.TotalCredits = tb.TotalCredits.Add(row.CreditBalance)
		tb.Rows = append(tb.Rows, row)
	}
	tb.IsBalanced = tb.TotalDebits.Equal(tb.TotalCredits)
	return tb
}

// BuildIncomeStatement reports Income and Expense activity within [start, end].
func BuildIncomeStatement(snapshot domain.LedgerSnapshot, start, end time.Time) domain.IncomeStatement {
	activity := Balances(snapshot, Within(start, end))
	is := domain.IncomeStatement{
		StartDate: start,
		EndDate:   end,
		Revenue:   newSection(),
		Expenses:  newSection(),
	}
	for _, acc := range sortedAccounts(snapshot) {
		amount := activity[acc.AccountID]
		if amount.IsZero() {
			continue
		}
		switch acc.AccountType {
		case domain.Income:
			is.Revenue.Add(itemFor(acc, amount))
		case domain.Expense:
			is.Expenses.Add(itemFor(acc, amount))
		}
	}
	is.NetIncome = is.Revenue.Total.Sub(is.Expenses.Total)
	return is
}

// BuildBalanceSheet reports cumulative positions as of asOf. Income less
// Expense to date appears under equity as current earnings.
func BuildBalanceSheet(snapshot domain.LedgerSnapshot, asOf time.Time) domain.BalanceSheet {
	balances := Balances(snapshot, OnOrBefore(asOf))
	bs := domain.BalanceSheet{
		AsOfDate:    asOf,
		Assets:      newSection(),
		Liabilities: newSection(),
		Equity:      newSection(),
	}
	earnings := decimal.Zero
	for _, acc := range sortedAccounts(snapshot) {
		bal := balances[acc.AccountID]
		switch acc.AccountType {
		case domain.Income:
			earnings = earnings.Add(bal)
			continue
		case domain.Expense:
			earnings = earnings.Sub(bal)
			continue
		}
		if bal.IsZero() {
			continue
		}
		switch acc.AccountType {
		case domain.Asset:
			bs.Assets.Add(itemFor(acc, bal))
		case domain.Liability:
			bs.Liabilities.Add(itemFor(acc, bal))
		case domain.Equity:
			bs.Equity.Add(itemFor(acc, bal))
		}
	}
	if !earnings.IsZero() {
		bs.Equity.Add(domain.StatementItem{AccountName: CurrentEarningsName, Amount: earnings})
	}
	bs.TotalLiabilitiesAndEquity = bs.Liabilities.Total.Add(bs.Equity.Total)
	return bs
}

// BuildCashFlow classifies cash movements within [start, end]. For every entry
// touching a cash account, each non-cash line contributes credit minus debit
// to its account's category. Entries moving cash between two cash accounts
// contribute nothing.
func BuildCashFlow(snapshot domain.LedgerSnapshot, start, end time.Time) domain.CashFlowStatement {
	accounts := snapshot.AccountByID()
	cf := domain.CashFlowStatement{
		StartDate:           start,
		EndDate:             end,
		OperatingActivities: newSection(),
		InvestingActivities: newSection(),
		FinancingActivities: newSection(),
		OpeningCash:         decimal.Zero,
	}

	touchesCash := make(map[string]bool)
	for _, l := range snapshot.Lines {
		if accounts[l.AccountID].IsCash {
			touchesCash[l.TransactionGroup] = true
		}
	}

	inRange := Within(start, end)
	contributions := make(map[string]decimal.Decimal)
	for _, l := range snapshot.Lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			continue
		}
		if acc.IsCash {
			if l.Date.Before(start) {
				cf.OpeningCash = cf.OpeningCash.Add(SignedDelta(acc.NormalBalance, l.DebitAmount, l.CreditAmount))
			}
			continue
		}
		if !inRange(l) || !touchesCash[l.TransactionGroup] {
			continue
		}
		contributions[l.AccountID] = contributions[l.AccountID].Add(l.CreditAmount.Sub(l.DebitAmount))
	}

	for _, acc := range sortedAccounts(snapshot) {
		amount, ok := contributions[acc.AccountID]
		if !ok || amount.IsZero() {
			continue
		}
		switch acc.CashFlowCategory {
		case domain.Investing:
			cf.InvestingActivities.Add(itemFor(acc, amount))
		case domain.Financing:
			cf.FinancingActivities.Add(itemFor(acc, amount))
		default:
			cf.OperatingActivities.Add(itemFor(acc, amount))
		}
	}

	cf.NetChangeInCash = cf.OperatingActivities.Total.
		Add(cf.InvestingActivities.Total).
		Add(cf.FinancingActivities.Total)
	cf.ClosingCash = cf.OpeningCash.Add(cf.NetChangeInCash)
	return cf
}

// CashBalance sums the balances of all cash accounts over lines accepted by keep.
func CashBalance(snapshot domain.LedgerSnapshot, keep func(domain.PostedLine) bool) decimal.Decimal {
	total := decimal.Zero
	balances := Balances(snapshot, keep)
	for _, acc := range snapshot.Accounts {
		if acc.IsCash {
			total = total.Add(balances[acc.AccountID])
		}
	}
	return total
}
