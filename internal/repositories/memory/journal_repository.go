package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveEntry validates account state, assigns the entry number and applies
// balance changes under the write lock.
func (s *Store) SaveEntry(ctx context.Context, entry *domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range balanceChanges {
		acc, ok := s.accounts[id]
		if !ok || !acc.IsActive {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, id)
		}
	}
	if _, exists := s.groups[entry.TransactionGroup]; exists {
		return fmt.Errorf("%w: transaction group %s", apperrors.ErrDuplicate, entry.TransactionGroup)
	}
	if entry.ReversalOf != nil {
		if by, reversed := s.reversedBy[*entry.ReversalOf]; reversed {
			return fmt.Errorf("%w: entry %s already reversed by %s", apperrors.ErrConflict, *entry.ReversalOf, by)
		}
	}

	s.lastEntryNumber++
	entry.EntryNumber = s.lastEntryNumber

	for id, delta := range balanceChanges {
		acc := s.accounts[id]
		acc.CurrentBalance = acc.CurrentBalance.Add(delta)
		acc.LastUpdatedAt = entry.CreatedAt
		acc.LastUpdatedBy = entry.CreatedBy
		s.accounts[id] = acc
	}

	s.groups[entry.TransactionGroup] = len(s.entries)
	s.entries = append(s.entries, copyEntry(*entry))
	if entry.ReversalOf != nil {
		s.reversedBy[*entry.ReversalOf] = entry.TransactionGroup
	}
	return nil
}

// FindEntryByGroup retrieves an entry and its lines.
func (s *Store) FindEntryByGroup(ctx context.Context, transactionGroup string) (*domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.groups[transactionGroup]
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, transactionGroup)
	}
	entry := copyEntry(s.entries[idx])
	return &entry, nil
}

// ListEntries returns entries passing filter in (date, entry_number) order.
func (s *Store) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.JournalEntry, 0)
	for _, e := range s.entries {
		if filter.Matches(e.Date, e.EntryNumber) {
			entries = append(entries, copyEntry(e))
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].EntryNumber < entries[j].EntryNumber
	})
	if filter.Limit > 0 && len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
	}
	return entries, nil
}
