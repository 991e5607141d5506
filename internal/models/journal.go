package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	TransactionGroup string    `db:"transaction_group"`
	EntryNumber      int64     `db:"entry_number"`
	EntryDate        time.Time `db:"entry_date"`
	Description      string    `db:"description"`
	ReferenceType    string    `db:"reference_type"`
	ReferenceID      *string   `db:"reference_id"`
	ReversalOf       *string   `db:"reversal_of"`
	CreatedAt        time.Time `db:"created_at"`
	CreatedBy        string    `db:"created_by"`
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID           string          `db:"line_id"`
	TransactionGroup string          `db:"transaction_group"`
	LineNo           int             `db:"line_no"`
	AccountID        string          `db:"account_id"`
	Description      string          `db:"description"`
	DebitAmount      decimal.Decimal `db:"debit_amount"`
	CreditAmount     decimal.Decimal `db:"credit_amount"`
}

// PostedLine is a journal line joined with its entry header.
type PostedLine struct {
	JournalLine
	EntryDate        time.Time `db:"entry_date"`
	EntryNumber      int64     `db:"entry_number"`
	EntryDescription string    `db:"entry_description"`
	ReferenceType    string    `db:"reference_type"`
}
