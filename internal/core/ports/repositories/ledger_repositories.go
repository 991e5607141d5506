package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// LedgerReader loads consistent snapshots for projections and statements.
// Each call observes a single committed state of the ledger.
type LedgerReader interface {
	// LoadSnapshot returns every account and every posted line dated on or
	// before through (all lines when nil).
	LoadSnapshot(ctx context.Context, through *time.Time) (domain.LedgerSnapshot, error)

	// LoadAccountLines returns one account and its posted lines dated on or
	// before through. Returns apperrors.ErrNotFound for an unknown account.
	LoadAccountLines(ctx context.Context, accountID string, through *time.Time) (*domain.Account, []domain.PostedLine, error)
}
