package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntry retrieves one entry by transaction group.
	GetEntry(ctx context.Context, transactionGroup string) (*domain.JournalEntry, error)

	// ListEntries returns entries ordered by (date, entry_number) and, when
	// params.Limit is set, a token for the next page.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostEntry validates and atomically posts a balanced entry.
	PostEntry(ctx context.Context, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error)

	// ReverseEntry posts a new entry that swaps every line of an existing one.
	ReverseEntry(ctx context.Context, transactionGroup string, req dto.ReverseEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
