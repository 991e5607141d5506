package repositories

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByGroup retrieves an entry and its lines. Returns
	// apperrors.ErrNotFound when absent.
	FindEntryByGroup(ctx context.Context, transactionGroup string) (*domain.JournalEntry, error)

	// ListEntries returns entries ordered by (date, entry_number) with lines
	// ordered by line_no.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveEntry persists an entry with its lines and applies balanceChanges to
	// the affected accounts in one atomic unit. It locks the affected accounts,
	// re-checks they are active (apperrors.ErrUnknownAccount otherwise) and
	// assigns entry.EntryNumber. A second reversal of the same group yields
	// apperrors.ErrConflict.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
