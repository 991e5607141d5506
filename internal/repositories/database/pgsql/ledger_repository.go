package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/models"
	"github.com/SscSPs/general_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postedLineQuery = `
	SELECT l.line_id, l.transaction_group, l.line_no, l.account_id, l.description,
	       l.debit_amount, l.credit_amount,
	       e.entry_date, e.entry_number, e.description AS entry_description, e.reference_type
	FROM journal_lines l
	JOIN journal_entries e ON e.transaction_group = l.transaction_group
	WHERE ($1::date IS NULL OR e.entry_date <= $1)
	  AND ($2::text IS NULL OR l.account_id = $2)
	ORDER BY e.entry_date, e.entry_number, l.line_no;
`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// LoadSnapshot reads the chart and the posted lines within one snapshot transaction.
func (r *PgxLedgerRepository) LoadSnapshot(ctx context.Context, through *time.Time) (domain.LedgerSnapshot, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return domain.LedgerSnapshot{}, err
	}
	defer r.Rollback(ctx, tx)

	accounts, err := listAccounts(ctx, tx, domain.AccountFilter{IncludeInactive: true})
	if err != nil {
		return domain.LedgerSnapshot{}, err
	}
	lines, err := postedLines(ctx, tx, through, nil)
	if err != nil {
		return domain.LedgerSnapshot{}, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return domain.LedgerSnapshot{}, err
	}
	return domain.LedgerSnapshot{Accounts: accounts, Lines: lines}, nil
}

// LoadAccountLines reads one account and its posted lines within one snapshot transaction.
func (r *PgxLedgerRepository) LoadAccountLines(ctx context.Context, accountID string, through *time.Time) (*domain.Account, []domain.PostedLine, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	acc, err := findAccount(ctx, tx, accountID)
	if err != nil {
		return nil, nil, err
	}
	lines, err := postedLines(ctx, tx, through, &accountID)
	if err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return acc, lines, nil
}

func postedLines(ctx context.Context, q querier, through *time.Time, accountID *string) ([]domain.PostedLine, error) {
	rows, err := q.Query(ctx, postedLineQuery, through, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posted lines: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PostedLine])
	if err != nil {
		return nil, fmt.Errorf("failed to scan posted lines: %w", err)
	}
	return mapping.ToDomainPostedLines(ms), nil
}
