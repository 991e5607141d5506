package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostedLine is a journal line joined with the header fields that order it.
type PostedLine struct {
	JournalLine
	Date             time.Time
	EntryNumber      int64
	EntryDescription string
	ReferenceType    ReferenceType
}

// Before orders posted lines by (date, entry_number, line_no).
func (p PostedLine) Before(o PostedLine) bool {
	if !p.Date.Equal(o.Date) {
		return p.Date.Before(o.Date)
	}
	if p.EntryNumber != o.EntryNumber {
		return p.EntryNumber < o.EntryNumber
	}
	return p.LineNo < o.LineNo
}

// LedgerSnapshot is a consistent read of the chart and of every posted line
// up to some date. Lines are ordered by (date, entry_number, line_no).
type LedgerSnapshot struct {
	Accounts []Account
	Lines    []PostedLine
}

// AccountByID indexes the snapshot's accounts.
func (s LedgerSnapshot) AccountByID() map[string]Account {
	m := make(map[string]Account, len(s.Accounts))
	for _, a := range s.Accounts {
		m[a.AccountID] = a
	}
	return m
}

// LedgerRow is one line of an account's running ledger.
type LedgerRow struct {
	Date             time.Time
	EntryNumber      int64
	TransactionGroup string
	ReferenceType    ReferenceType
	Description      string
	DebitAmount      decimal.Decimal
	CreditAmount     decimal.Decimal
	RunningBalance   decimal.Decimal
}

// AccountLedger is the windowed ledger of a single account.
type AccountLedger struct {
	Account        Account
	StartDate      *time.Time
	EndDate        *time.Time
	OpeningBalance decimal.Decimal
	Rows           []LedgerRow
	EndingBalance  decimal.Decimal
}
