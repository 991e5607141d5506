package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/models"
	"github.com/SscSPs/general_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

func newPgxReconciliationRepository(pool *pgxpool.Pool) *PgxReconciliationRepository {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReconciliationRepository = (*PgxReconciliationRepository)(nil)

// SaveReconciliation inserts a new reconciliation record.
func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error {
	m := mapping.ToModelReconciliation(rec)
	query := `
		INSERT INTO reconciliations (
			reconciliation_id, bank_account_id, reconciliation_date, bank_statement_balance, book_balance,
			outstanding_deposits, outstanding_checks, bank_fees, reconciled_balance, is_reconciled,
			notes, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReconciliationID, m.BankAccountID, m.ReconciliationDate, m.BankStatementBalance, m.BookBalance,
		m.OutstandingDeposits, m.OutstandingChecks, m.BankFees, m.ReconciledBalance, m.IsReconciled,
		m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reconciliation %s: %w", m.ReconciliationID, err)
	}
	return nil
}

// ListReconciliations returns records newest first, optionally for one bank account.
func (r *PgxReconciliationRepository) ListReconciliations(ctx context.Context, bankAccountID *string) ([]domain.Reconciliation, error) {
	query := `
		SELECT r.reconciliation_id, r.bank_account_id, a.code AS bank_account_code, a.name AS bank_account_name,
		       r.reconciliation_date, r.bank_statement_balance, r.book_balance, r.outstanding_deposits,
		       r.outstanding_checks, r.bank_fees, r.reconciled_balance, r.is_reconciled, r.notes,
		       r.created_at, r.created_by
		FROM reconciliations r
		JOIN accounts a ON a.account_id = r.bank_account_id
		WHERE ($1::text IS NULL OR r.bank_account_id = $1)
		ORDER BY r.reconciliation_date DESC, r.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliations: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reconciliation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan reconciliations: %w", err)
	}
	recs := make([]domain.Reconciliation, len(ms))
	for i, m := range ms {
		recs[i] = mapping.ToDomainReconciliation(m)
	}
	return recs, nil
}
