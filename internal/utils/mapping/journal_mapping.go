package mapping

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to its row
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		TransactionGroup: d.TransactionGroup,
		EntryNumber:      d.EntryNumber,
		EntryDate:        d.Date,
		Description:      d.Description,
		ReferenceType:    string(d.ReferenceType),
		ReferenceID:      optionalString(d.ReferenceID),
		ReversalOf:       d.ReversalOf,
		CreatedAt:        d.CreatedAt,
		CreatedBy:        d.CreatedBy,
	}
}

// ToDomainJournalEntry combines a header row with its line rows
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	d := domain.JournalEntry{
		TransactionGroup: m.TransactionGroup,
		EntryNumber:      m.EntryNumber,
		Date:             m.EntryDate.UTC(),
		Description:      m.Description,
		ReferenceType:    domain.ReferenceType(m.ReferenceType),
		ReferenceID:      derefString(m.ReferenceID),
		ReversalOf:       m.ReversalOf,
		Lines:            make([]domain.JournalLine, len(lines)),
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
	for i, l := range lines {
		d.Lines[i] = ToDomainJournalLine(l)
	}
	return d
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:           d.LineID,
		TransactionGroup: d.TransactionGroup,
		LineNo:           d.LineNo,
		AccountID:        d.AccountID,
		Description:      d.Description,
		DebitAmount:      d.DebitAmount,
		CreditAmount:     d.CreditAmount,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:           m.LineID,
		TransactionGroup: m.TransactionGroup,
		LineNo:           m.LineNo,
		AccountID:        m.AccountID,
		Description:      m.Description,
		DebitAmount:      m.DebitAmount,
		CreditAmount:     m.CreditAmount,
	}
}

// ToDomainPostedLines converts joined line rows
func ToDomainPostedLines(ms []models.PostedLine) []domain.PostedLine {
	ds := make([]domain.PostedLine, len(ms))
	for i, m := range ms {
		ds[i] = domain.PostedLine{
			JournalLine:      ToDomainJournalLine(m.JournalLine),
			Date:             m.EntryDate.UTC(),
			EntryNumber:      m.EntryNumber,
			EntryDescription: m.EntryDescription,
			ReferenceType:    domain.ReferenceType(m.ReferenceType),
		}
	}
	return ds
}
