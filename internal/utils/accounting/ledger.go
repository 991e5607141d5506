package accounting

import (
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunningLedger replays an account's lines in (date, entry_number, line_no)
// order. Lines before start only move the opening balance; lines after end
// are ignored. A nil bound is open.
func RunningLedger(account domain.Account, lines []domain.PostedLine, start, end *time.Time) domain.AccountLedger {
	ledger := domain.AccountLedger{
		Account:        account,
		StartDate:      start,
		EndDate:        end,
		OpeningBalance: decimal.Zero,
		Rows:           []domain.LedgerRow{},
	}

	balance := decimal.Zero
	for _, l := range lines {
		if l.AccountID != account.AccountID {
			continue
		}
		if end != nil && l.Date.After(*end) {
			continue
		}
		balance = balance.Add(SignedDelta(account.NormalBalance, l.DebitAmount, l.CreditAmount))
		if start != nil && l.Date.Before(*start) {
			ledger.OpeningBalance = balance
			continue
		}
		description := l.Description
		if description == "" {
			description = l.EntryDescription
		}
		ledger.Rows = append(ledger.Rows, domain.LedgerRow{
			Date:             l.Date,
			EntryNumber:      l.EntryNumber,
			TransactionGroup: l.TransactionGroup,
			ReferenceType:    l.ReferenceType,
			Description:      description,
			DebitAmount:      l.DebitAmount,
			CreditAmount:     l.CreditAmount,
			RunningBalance:   balance,
		})
	}

	ledger.EndingBalance = ledger.OpeningBalance
	if n := len(ledger.Rows); n > 0 {
		ledger.EndingBalance = ledger.Rows[n-1].RunningBalance
	}
	return ledger
}

// Balances sums signed deltas per account for lines accepted by keep.
func Balances(snapshot domain.LedgerSnapshot, keep func(domain.PostedLine) bool) map[string]decimal.Decimal {
	accounts := snapshot.AccountByID()
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, l := range snapshot.Lines {
		if keep != nil && !keep(l) {
			continue
		}
		acc, ok := accounts[l.AccountID]
		if !ok {
			continue
		}
		balances[l.AccountID] = balances[l.AccountID].Add(SignedDelta(acc.NormalBalance, l.DebitAmount, l.CreditAmount))
	}
	return balances
}

// OnOrBefore keeps lines dated no later than t.
func OnOrBefore(t time.Time) func(domain.PostedLine) bool {
	return func(l domain.PostedLine) bool { return !l.Date.After(t) }
}

// Within keeps lines dated in [start, end].
func Within(start, end time.Time) func(domain.PostedLine) bool {
	return func(l domain.PostedLine) bool { return !l.Date.Before(start) && !l.Date.After(end) }
}
