package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_NormalBalance(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        domain.NormalBalance
	}{
		{domain.Asset, domain.Debit},
		{domain.Expense, domain.Debit},
		{domain.Liability, domain.Credit},
		{domain.Equity, domain.Credit},
		{domain.Income, domain.Credit},
	}
	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.accountType.NormalBalance())
		})
	}
}

func TestParseAccountType(t *testing.T) {
	got, ok := domain.ParseAccountType("ASSET")
	assert.True(t, ok)
	assert.Equal(t, domain.Asset, got)

	got, ok = domain.ParseAccountType(" income ")
	assert.True(t, ok)
	assert.Equal(t, domain.Income, got)

	_, ok = domain.ParseAccountType("Revenue")
	assert.False(t, ok)
}

func TestParseReferenceType_DefaultsToManual(t *testing.T) {
	got, ok := domain.ParseReferenceType("")
	assert.True(t, ok)
	assert.Equal(t, domain.RefManual, got)

	_, ok = domain.ParseReferenceType("gift")
	assert.False(t, ok)
}

func TestReconciliation_Compute(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      bool
	}{
		{name: "matching statement", statement: "1015", want: true},
		{name: "statement off by one", statement: "1016", want: false},
		{name: "statement off by half a cent", statement: "1015.005", want: true},
		{name: "statement off by exactly one cent", statement: "1015.01", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.Reconciliation{
				BookBalance:          decimal.NewFromInt(1000),
				OutstandingDeposits:  decimal.NewFromInt(50),
				OutstandingChecks:    decimal.NewFromInt(30),
				BankFees:             decimal.NewFromInt(5),
				BankStatementBalance: decimal.RequireFromString(tt.statement),
			}
			r.Compute()
			assert.True(t, decimal.NewFromInt(1015).Equal(r.ReconciledBalance))
			assert.Equal(t, tt.want, r.IsReconciled)
		})
	}
}

func TestEntryFilter_Matches(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	start, end := day(5), day(10)

	f := domain.EntryFilter{StartDate: &start, EndDate: &end}
	assert.True(t, f.Matches(day(5), 1), "start date is inclusive")
	assert.True(t, f.Matches(day(10), 1), "end date is inclusive")
	assert.False(t, f.Matches(day(4), 1))
	assert.False(t, f.Matches(day(11), 1))

	f.After = &domain.EntryCursor{Date: day(6), EntryNumber: 7}
	assert.False(t, f.Matches(day(6), 7))
	assert.True(t, f.Matches(day(6), 8))
	assert.False(t, f.Matches(day(5), 9))
	assert.True(t, f.Matches(day(7), 1))
}

func TestJournalEntry_TotalsAndAccounts(t *testing.T) {
	e := domain.JournalEntry{Lines: []domain.JournalLine{
		{AccountID: "a", DebitAmount: decimal.NewFromInt(70)},
		{AccountID: "b", CreditAmount: decimal.NewFromInt(50)},
		{AccountID: "a", DebitAmount: decimal.NewFromInt(-20)},
		{AccountID: "c", CreditAmount: decimal.NewFromInt(0)},
	}}
	debits, credits := e.Totals()
	assert.True(t, decimal.NewFromInt(50).Equal(debits))
	assert.True(t, decimal.NewFromInt(50).Equal(credits))
	assert.Equal(t, []string{"a", "b", "c"}, e.AccountIDs())
}

func TestStandardChart_IsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, acc := range domain.StandardChart() {
		assert.False(t, seen[acc.Code], "duplicate code %s", acc.Code)
		seen[acc.Code] = true
		if acc.IsCash {
			assert.Equal(t, domain.Asset, acc.AccountType, "cash account %s must be an asset", acc.Code)
		}
		assert.NotEmpty(t, acc.CashFlowCategory)
	}
}
