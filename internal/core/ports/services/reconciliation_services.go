package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/dto"
)

// ReconciliationSvc records bank reconciliations.
type ReconciliationSvc interface {
	// SaveReconciliation validates inputs, recomputes derived fields and stores
	// a new record.
	SaveReconciliation(ctx context.Context, req dto.SaveReconciliationRequest, userID string) (*domain.Reconciliation, error)

	// ListReconciliations returns records newest first.
	ListReconciliations(ctx context.Context, bankAccountID *string) ([]domain.Reconciliation, error)
}
