package repositories

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// ReconciliationRepository stores bank reconciliation sessions.
type ReconciliationRepository interface {
	// SaveReconciliation appends a record. Existing records are never updated.
	SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error

	// ListReconciliations returns records newest first by
	// (reconciliation_date desc, created_at desc). A nil bankAccountID lists all.
	ListReconciliations(ctx context.Context, bankAccountID *string) ([]domain.Reconciliation, error)
}
