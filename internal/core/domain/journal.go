package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceType records what business event produced a journal entry.
type ReferenceType string

const (
	RefManual      ReferenceType = "manual"
	RefSale        ReferenceType = "sale"
	RefPurchase    ReferenceType = "purchase"
	RefExpense     ReferenceType = "expense"
	RefPayment     ReferenceType = "payment"
	RefInstallment ReferenceType = "installment"
	RefLayaway     ReferenceType = "layaway"
	RefTransfer    ReferenceType = "transfer"
	RefAdjustment  ReferenceType = "adjustment"
	RefReversal    ReferenceType = "reversal"
)

var referenceTypes = []ReferenceType{
	RefManual, RefSale, RefPurchase, RefExpense, RefPayment,
	RefInstallment, RefLayaway, RefTransfer, RefAdjustment, RefReversal,
}

// ParseReferenceType maps blank input to RefManual.
func ParseReferenceType(s string) (ReferenceType, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RefManual, true
	}
	for _, r := range referenceTypes {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// JournalEntry is one balanced transaction group. Entries are immutable once
// posted; corrections are new entries with ReversalOf set.
type JournalEntry struct {
	TransactionGroup string
	EntryNumber      int64
	Date             time.Time
	Description      string
	ReferenceType    ReferenceType
	ReferenceID      string
	ReversalOf       *string
	Lines            []JournalLine
	CreatedAt        time.Time
	CreatedBy        string
}

// Totals sums both sides of the entry.
func (e JournalEntry) Totals() (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debits = debits.Add(l.DebitAmount)
		credits = credits.Add(l.CreditAmount)
	}
	return debits, credits
}

// AccountIDs returns the distinct accounts touched, in first-seen order.
func (e JournalEntry) AccountIDs() []string {
	seen := make(map[string]struct{}, len(e.Lines))
	ids := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}

// JournalLine is a single debit or credit against one account.
type JournalLine struct {
	LineID           string
	TransactionGroup string
	LineNo           int
	AccountID        string
	Description      string
	DebitAmount      decimal.Decimal
	CreditAmount     decimal.Decimal
}

// EntryCursor is the keyset position of an entry in (date, entry_number) order.
type EntryCursor struct {
	Date        time.Time
	EntryNumber int64
}

// EntryFilter narrows listEntries. Dates are inclusive; Limit 0 means no limit.
type EntryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	After     *EntryCursor
	Limit     int
}

// Matches reports whether an entry header passes the filter.
func (f EntryFilter) Matches(date time.Time, entryNumber int64) bool {
	if f.StartDate != nil && date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && date.After(*f.EndDate) {
		return false
	}
	if f.After != nil {
		if date.Before(f.After.Date) {
			return false
		}
		if date.Equal(f.After.Date) && entryNumber <= f.After.EntryNumber {
			return false
		}
	}
	return true
}
