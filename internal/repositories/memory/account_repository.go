package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// FindAccountByID retrieves an account by id.
func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acc, nil
}

// FindAccountsByIDs returns the accounts that exist among accountIDs.
func (s *Store) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := s.accounts[id]; ok {
			found[id] = acc
		}
	}
	return found, nil
}

// ListAccounts returns accounts passing filter, sorted by code.
func (s *Store) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedAccounts(filter), nil
}

func (s *Store) sortedAccounts(filter domain.AccountFilter) []domain.Account {
	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		if filter.Matches(acc) {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts
}

// CountAccounts returns the number of stored accounts.
func (s *Store) CountAccounts(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts), nil
}

// SaveAccount persists a new account.
func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	return s.SaveAccounts(ctx, []domain.Account{account})
}

// SaveAccounts persists all accounts or none.
func (s *Store) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		if _, taken := s.codes[acc.Code]; taken || pending[acc.Code] {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, acc.Code)
		}
		if _, taken := s.accounts[acc.AccountID]; taken {
			return fmt.Errorf("%w: account id %s", apperrors.ErrDuplicate, acc.AccountID)
		}
		pending[acc.Code] = true
	}
	for _, acc := range accounts {
		s.accounts[acc.AccountID] = acc
		s.codes[acc.Code] = acc.AccountID
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (s *Store) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	acc.IsActive = false
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	s.accounts[accountID] = acc
	return nil
}
