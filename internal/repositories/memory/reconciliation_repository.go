package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// SaveReconciliation appends a record.
func (s *Store) SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconciliations = append(s.reconciliations, rec)
	return nil
}

// ListReconciliations returns records newest first. Records saved later win
// ties on (date, created_at).
func (s *Store) ListReconciliations(ctx context.Context, bankAccountID *string) ([]domain.Reconciliation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]domain.Reconciliation, 0, len(s.reconciliations))
	for i := len(s.reconciliations) - 1; i >= 0; i-- {
		r := s.reconciliations[i]
		if bankAccountID != nil && r.BankAccountID != *bankAccountID {
			continue
		}
		recs = append(recs, r)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if !recs[i].ReconciliationDate.Equal(recs[j].ReconciliationDate) {
			return recs[i].ReconciliationDate.After(recs[j].ReconciliationDate)
		}
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	return recs, nil
}
