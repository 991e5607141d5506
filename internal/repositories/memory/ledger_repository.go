package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// LoadSnapshot returns all accounts and the lines dated on or before through.
func (s *Store) LoadSnapshot(ctx context.Context, through *time.Time) (domain.LedgerSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.LedgerSnapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.LedgerSnapshot{
		Accounts: s.sortedAccounts(domain.AccountFilter{IncludeInactive: true}),
		Lines:    s.postedLines("", through),
	}, nil
}

// LoadAccountLines returns one account and its lines dated on or before through.
func (s *Store) LoadAccountLines(ctx context.Context, accountID string, through *time.Time) (*domain.Account, []domain.PostedLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acc, s.postedLines(accountID, through), nil
}

// postedLines flattens entries into ordered lines. Callers hold the read lock.
func (s *Store) postedLines(accountID string, through *time.Time) []domain.PostedLine {
	lines := make([]domain.PostedLine, 0)
	for _, e := range s.entries {
		if through != nil && e.Date.After(*through) {
			continue
		}
		for _, l := range e.Lines {
			if accountID != "" && l.AccountID != accountID {
				continue
			}
			lines = append(lines, domain.PostedLine{
				JournalLine:      l,
				Date:             e.Date,
				EntryNumber:      e.EntryNumber,
				EntryDescription: e.Description,
				ReferenceType:    e.ReferenceType,
			})
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Before(lines[j]) })
	return lines
}
