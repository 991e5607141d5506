package dto

import (
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one submitted line. Exactly one of the amounts must be
// nonzero; that rule is enforced by the journal service, not by binding.
type JournalLineRequest struct {
	AccountID    string          `json:"account_id" binding:"required"`
	Description  string          `json:"description" binding:"max=500"`
	DebitAmount  decimal.Decimal `json:"debit_amount" binding:"money"`
	CreditAmount decimal.Decimal `json:"credit_amount" binding:"money"`
}

// PostEntryRequest defines the data needed to post a journal entry.
type PostEntryRequest struct {
	Date          string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string               `json:"description" binding:"max=500"`
	ReferenceType string               `json:"reference_type"`
	ReferenceID   string               `json:"reference_id" binding:"max=100"`
	Entries       []JournalLineRequest `json:"entries" binding:"dive"`
}

// ReverseEntryRequest optionally overrides the reversing entry's date and
// description. Both default from the original entry.
type ReverseEntryRequest struct {
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string `json:"description" binding:"max=500"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken string `form:"next_token"`
}

// JournalLineResponse is one posted line.
type JournalLineResponse struct {
	LineID       string          `json:"line_id"`
	LineNo       int             `json:"line_no"`
	AccountID    string          `json:"account_id"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
}

// JournalEntryResponse is a posted entry with its lines.
type JournalEntryResponse struct {
	TransactionGroup string                `json:"transaction_group"`
	EntryNumber      int64                 `json:"entry_number"`
	Date             string                `json:"date"`
	Description      string                `json:"description"`
	ReferenceType    string                `json:"reference_type"`
	ReferenceID      string                `json:"reference_id,omitempty"`
	ReversalOf       *string               `json:"reversal_of,omitempty"`
	TotalDebit       decimal.Decimal       `json:"total_debit"`
	TotalCredit      decimal.Decimal       `json:"total_credit"`
	Lines            []JournalLineResponse `json:"entries"`
	CreatedAt        time.Time             `json:"created_at"`
	CreatedBy        string                `json:"created_by"`
}

// ListEntriesResponse is a page of journal entries.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"journal_entries"`
	NextToken *string                `json:"next_token,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	debits, credits := e.Totals()
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:       l.LineID,
			LineNo:       l.LineNo,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		}
	}
	return JournalEntryResponse{
		TransactionGroup: e.TransactionGroup,
		EntryNumber:      e.EntryNumber,
		Date:             FormatDate(e.Date),
		Description:      e.Description,
		ReferenceType:    string(e.ReferenceType),
		ReferenceID:      e.ReferenceID,
		ReversalOf:       e.ReversalOf,
		TotalDebit:       debits,
		TotalCredit:      credits,
		Lines:            lines,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
	}
}

// ToListEntriesResponse converts a page of entries.
func ToListEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListEntriesResponse {
	res := ListEntriesResponse{
		Entries:   make([]JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		res.Entries[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}
